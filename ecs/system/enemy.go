package system

import "github.com/milk9111/danmaku/ecs"

// EnemySystem runs, per enemy: pattern movement, its bullets against the
// players, then a spawn attempt at its new position.
type EnemySystem struct{}

func NewEnemySystem() *EnemySystem { return &EnemySystem{} }

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	for _, enemy := range w.Enemies {
		enemy.MoveAuto(dt)
		resolveVolley(w, enemy.ID(), enemyFaction, enemy.Spell, w.Players)
		enemy.Spell.Spawn(dt, enemy.Position())
	}
}
