package component

import (
	"time"

	"github.com/jakecoffman/cp"
)

// Particle is a visual-only bullet that lives until its TTL timer fires.
type Particle struct {
	Bullet Bullet
	TTL    Timer
}

// NewParticle creates a visible particle at position drifting by velocity.
func NewParticle(position, velocity cp.Vector, ttl float64) Particle {
	return Particle{
		Bullet: Bullet{
			Body:    RigidBody{Position: position, Velocity: velocity},
			Visible: true,
		},
		TTL: NewTimer(ttl),
	}
}

// Update ages the particle by delta and moves it while it is still alive.
// It returns false once the particle has expired.
func (p *Particle) Update(delta time.Duration) bool {
	if p == nil || !p.Bullet.Visible {
		return false
	}
	if p.TTL.Advance(delta) {
		p.Bullet.Visible = false
		return false
	}
	p.Bullet.Body.Step()
	return true
}

func (p *Particle) Alive() bool {
	return p != nil && p.Bullet.Visible
}
