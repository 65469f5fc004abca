package system

import (
	"github.com/milk9111/danmaku/component"
	"github.com/milk9111/danmaku/ecs"
)

// DeathSystem removes dead entities from factions that took damage this tick,
// leaving four particles where each one died. When a faction empties the
// terminal message is queued and the outcome is fixed.
type DeathSystem struct{}

func NewDeathSystem() *DeathSystem { return &DeathSystem{} }

func (s *DeathSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	if w.DeathCheckDue(playerFaction) {
		w.Players = removeDead(w, w.Players)
		if len(w.Players) == 0 {
			factionDown(w, playerFaction, ecs.OutcomeLost, ecs.MessageLost)
		}
	}

	if w.DeathCheckDue(enemyFaction) {
		w.Enemies = removeDead(w, w.Enemies)
		if len(w.Enemies) == 0 {
			factionDown(w, enemyFaction, ecs.OutcomeWon, ecs.MessageWon)
		}
	}
}

func removeDead[T component.Target](w *ecs.World, roster []T) []T {
	alive := roster[:0]
	for _, t := range roster {
		if t.HealthComponent().IsAlive() {
			alive = append(alive, t)
			continue
		}
		w.SpawnDeathParticles(t.Position())
	}
	var zero T
	for i := len(alive); i < len(roster); i++ {
		roster[i] = zero
	}
	return alive
}

// factionDown records the first terminal outcome; a later one in the same run
// only adds its message.
func factionDown(w *ecs.World, f component.Faction, outcome ecs.Outcome, msg string) {
	w.Messages = append(w.Messages, msg)
	if w.Outcome == ecs.OutcomeNone {
		w.Outcome = outcome
	}
	w.Events().Push(component.CombatEvent{Type: component.EventFactionDown, Faction: f})
}
