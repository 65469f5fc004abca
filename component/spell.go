package component

import (
	"time"

	"github.com/jakecoffman/cp"
)

// Bullet is one slot of a Spell. Hidden slots are free for reuse.
type Bullet struct {
	Body    RigidBody
	Visible bool
}

// Collided reports whether the bullet is strictly closer than hitbox to p.
func (b *Bullet) Collided(p cp.Vector, hitbox float64) bool {
	if b == nil {
		return false
	}
	return b.Body.Position.Distance(p) < hitbox
}

// Spell is a fixed-capacity bullet pool with a fire-rate timer. Its length is
// set at construction and never changes.
type Spell struct {
	Bullets   []Bullet
	ShotTimer Timer
}

// NewSpell creates a pool of size hidden bullets sharing velocity, firing at
// most once every delay seconds.
func NewSpell(velocity cp.Vector, size int, delay float64) *Spell {
	if size < 0 {
		size = 0
	}
	bullets := make([]Bullet, size)
	for i := range bullets {
		bullets[i].Body.Velocity = velocity
	}
	return &Spell{
		Bullets:   bullets,
		ShotTimer: NewTimer(delay),
	}
}

// Spawn advances the shot timer and, when it fires, activates the first hidden
// slot at origin. It returns the activated slot index, or -1 when the timer is
// not ready or every slot is in flight.
func (s *Spell) Spawn(delta time.Duration, origin cp.Vector) int {
	if s == nil || !s.ShotTimer.Advance(delta) {
		return -1
	}
	return s.Activate(origin)
}

// Activate makes the first hidden slot visible at origin, ignoring the timer.
func (s *Spell) Activate(origin cp.Vector) int {
	if s == nil {
		return -1
	}
	for i := range s.Bullets {
		if s.Bullets[i].Visible {
			continue
		}
		s.Bullets[i].Body.SetPosition(origin)
		s.Bullets[i].Visible = true
		return i
	}
	return -1
}

// AdvanceVisible calls f on every visible slot in pool order. f may hide the
// slot it is given.
func (s *Spell) AdvanceVisible(f func(i int, b *Bullet)) {
	if s == nil || f == nil {
		return
	}
	for i := range s.Bullets {
		if s.Bullets[i].Visible {
			f(i, &s.Bullets[i])
		}
	}
}

// ForEachVisible is the read-only counterpart of AdvanceVisible.
func (s *Spell) ForEachVisible(f func(i int, b Bullet)) {
	if s == nil || f == nil {
		return
	}
	for i, b := range s.Bullets {
		if b.Visible {
			f(i, b)
		}
	}
}

func (s *Spell) VisibleCount() int {
	n := 0
	s.ForEachVisible(func(int, Bullet) { n++ })
	return n
}

func (s *Spell) Cap() int {
	if s == nil {
		return 0
	}
	return len(s.Bullets)
}
