package system

import (
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/entity"
	"github.com/milk9111/danmaku/prefabs"
)

// secondEnemy builds a second enemy identical to the default one, with a fresh id.
func secondEnemy(w *ecs.World) (*entity.Enemy, bool) {
	return entity.NewEnemy(w.NextID(), prefabs.Values{
		"enemy": map[string]any{}, "enemy.pattern": []any{0}, "enemy.bullet.delay": 1000,
	})
}
