package ecs

import "github.com/milk9111/danmaku/component"

// BodyView is a read-only copy of an entity for renderers.
type BodyView struct {
	ID        int
	Faction   component.Faction
	X, Y      float64
	HP, MaxHP uint32
	// Health is the fraction of MaxHP remaining.
	Health float64
}

type BulletView struct {
	Faction component.Faction
	X, Y    float64
}

type ParticleView struct {
	X, Y float64
	// Age is the fraction of the particle's lifetime already spent.
	Age float64
}

// Snapshot is everything a renderer needs for one frame. It shares no memory
// with the world.
type Snapshot struct {
	Bodies    []BodyView
	Bullets   []BulletView
	Particles []ParticleView
	Messages  []string
	Outcome   Outcome
	Width     float64
	Height    float64
}

func (w *World) Snapshot() Snapshot {
	if w == nil {
		return Snapshot{}
	}
	s := Snapshot{
		Messages: append([]string(nil), w.Messages...),
		Outcome:  w.Outcome,
		Width:    w.Screen.Width,
		Height:   w.Screen.Height,
	}

	addBullets := func(f component.Faction, spell *component.Spell) {
		spell.ForEachVisible(func(_ int, b component.Bullet) {
			s.Bullets = append(s.Bullets, BulletView{Faction: f, X: b.Body.X(), Y: b.Body.Y()})
		})
	}

	for _, p := range w.Players {
		s.Bodies = append(s.Bodies, bodyView(p.ID(), component.FactionPlayer, p.Body.X(), p.Body.Y(), p.Health))
		addBullets(component.FactionPlayer, p.Spell)
	}
	for _, e := range w.Enemies {
		s.Bodies = append(s.Bodies, bodyView(e.ID(), component.FactionEnemy, e.Body.X(), e.Body.Y(), e.Health))
		addBullets(component.FactionEnemy, e.Spell)
	}
	for _, p := range w.Particles {
		if !p.Alive() {
			continue
		}
		s.Particles = append(s.Particles, ParticleView{X: p.Bullet.Body.X(), Y: p.Bullet.Body.Y(), Age: p.TTL.Progress()})
	}
	return s
}

func bodyView(id int, f component.Faction, x, y float64, h component.HealthComponent) BodyView {
	return BodyView{
		ID:      id,
		Faction: f,
		X:       x,
		Y:       y,
		Health:  h.Percentage(),
		HP:      h.CurrentHP(),
		MaxHP:   h.MaxHP(),
	}
}
