package component

import "github.com/jakecoffman/cp"

// HealthComponent exposes health operations for combat systems.
type HealthComponent interface {
	IsAlive() bool
	TakeDamage(amount uint32) HealthChange
	CurrentHP() uint32
	MaxHP() uint32
	Percentage() float64
}

// Target is anything a bullet can be tested against.
type Target interface {
	ID() int
	Position() cp.Vector
	HitboxRadius() float64
	HealthComponent() HealthComponent
}
