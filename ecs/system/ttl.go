package system

import "github.com/milk9111/danmaku/ecs"

// TTLSystem ages particles by the frame delta and drops the expired ones.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil || len(w.Particles) == 0 {
		return
	}

	dt := w.Delta()
	alive := w.Particles[:0]
	for i := range w.Particles {
		p := w.Particles[i]
		if p.Update(dt) {
			alive = append(alive, p)
		}
	}
	w.Particles = alive
}
