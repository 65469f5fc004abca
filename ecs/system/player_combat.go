package system

import (
	"github.com/milk9111/danmaku/component"
	"github.com/milk9111/danmaku/ecs"
)

const (
	playerFaction = component.FactionPlayer
	enemyFaction  = component.FactionEnemy
)

// PlayerCombatSystem advances player bullets against the enemies and lets
// each player fire.
type PlayerCombatSystem struct{}

func NewPlayerCombatSystem() *PlayerCombatSystem { return &PlayerCombatSystem{} }

func (s *PlayerCombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	for _, player := range w.Players {
		resolveVolley(w, player.ID(), playerFaction, player.Spell, w.Enemies)
		player.Spell.Spawn(dt, player.Position())
	}
}
