package system

import (
	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/entity"
	"github.com/milk9111/danmaku/prefabs"
)

// Install appends the combat systems to w in tick order: player movement,
// enemies (pattern, bullets vs players, spawn), players (bullets vs enemies,
// spawn), death removal, particle aging.
func Install(w *ecs.World) {
	w.AddSystem(NewPlayerControllerSystem())
	w.AddSystem(NewEnemySystem())
	w.AddSystem(NewPlayerCombatSystem())
	w.AddSystem(NewDeathSystem())
	w.AddSystem(NewTTLSystem())
}

// NewCombatWorld builds a fully populated world from configuration values.
func NewCombatWorld(v prefabs.Values, screen common.Screen) *ecs.World {
	w := ecs.NewWorld(screen)
	w.ParticleTTL = v.Positive("particle.ttl", entity.DefaultParticleTTL)
	w.ParticleSpeed = v.Float("particle.speed", entity.DefaultParticleSpeed)

	if p, ok := entity.NewPlayer(w.NextID(), v); ok {
		w.AddPlayer(p)
	}
	if e, ok := entity.NewEnemy(w.NextID(), v); ok {
		w.AddEnemy(e)
	}

	Install(w)
	return w
}
