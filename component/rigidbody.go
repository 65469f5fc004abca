package component

import (
	"math"

	"github.com/jakecoffman/cp"
)

// RigidBody is a position plus a per-tick velocity. It does not clamp to the
// play area; bounds are the simulation's concern.
type RigidBody struct {
	Position cp.Vector
	Velocity cp.Vector
}

// Speed is the larger velocity component, which for axis-aligned movers is the
// distance covered per tick.
func (b *RigidBody) Speed() float64 {
	if b == nil {
		return 0
	}
	return math.Max(math.Abs(b.Velocity.X), math.Abs(b.Velocity.Y))
}

func (b *RigidBody) SetPosition(p cp.Vector) {
	if b == nil {
		return
	}
	b.Position = p
}

// MoveBy displaces the body by d.
func (b *RigidBody) MoveBy(d cp.Vector) {
	if b == nil {
		return
	}
	b.Position = b.Position.Add(d)
}

// Step moves the body by its own velocity.
func (b *RigidBody) Step() {
	if b == nil {
		return
	}
	b.Position = b.Position.Add(b.Velocity)
}

func (b *RigidBody) X() float64 { return b.Position.X }
func (b *RigidBody) Y() float64 { return b.Position.Y }
