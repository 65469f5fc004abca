package component

// Faction identifies which side an entity or bullet belongs to.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Opponent returns the faction a bullet fired by f is tested against.
func (f Faction) Opponent() Faction {
	if f == FactionPlayer {
		return FactionEnemy
	}
	return FactionPlayer
}

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventDamageApplied CombatEventType = "damage_applied"
	EventDeath         CombatEventType = "death"
	EventFactionDown   CombatEventType = "faction_down"
)

// CombatEvent is emitted during combat resolution.
type CombatEvent struct {
	Type       CombatEventType
	Faction    Faction
	AttackerID int
	TargetID   int
	Damage     uint32
	Health     uint32
	PosX       float64
	PosY       float64
}
