package entity

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/component"
	"github.com/milk9111/danmaku/prefabs"
)

// Enemy drifts horizontally following a scripted pattern and fires downwards.
type Enemy struct {
	id        int
	Body      component.RigidBody
	Health    *component.Health
	Spell     *component.Spell
	Hitbox    float64
	MoveTimer component.Timer
	Pattern   component.MovementPattern
}

func (e *Enemy) ID() int                                    { return e.id }
func (e *Enemy) Position() cp.Vector                        { return e.Body.Position }
func (e *Enemy) HitboxRadius() float64                      { return e.Hitbox }
func (e *Enemy) HealthComponent() component.HealthComponent { return e.Health }

// MoveAuto advances the pattern when the move timer fires, then shifts the
// enemy by front(pattern) * speed along x.
func (e *Enemy) MoveAuto(delta time.Duration) {
	if e.MoveTimer.Advance(delta) {
		e.Pattern.Rotate()
	}
	e.Body.MoveBy(cp.Vector{X: e.Pattern.Front() * e.Body.Speed()})
}

// NewEnemy builds the enemy from the "enemy" section of v. It reports false
// when the section is absent.
func NewEnemy(id int, v prefabs.Values) (*Enemy, bool) {
	if !v.Has("enemy") {
		return nil, false
	}

	bulletSpeed := v.Float("enemy.bullet.speed", DefaultEnemyBulletSpeed)

	return &Enemy{
		id: id,
		Body: component.RigidBody{
			Position: cp.Vector{
				X: v.Float("enemy.x", DefaultEnemyX),
				Y: v.Float("enemy.y", DefaultEnemyY),
			},
			Velocity: cp.Vector{X: v.Float("enemy.speed", DefaultEnemySpeed)},
		},
		Health: component.NewHealth(v.Uint("enemy.health", DefaultEnemyHealth)),
		Spell: component.NewSpell(
			common.DirDown.Mult(bulletSpeed),
			poolSize(v, "enemy.bullet.amount", DefaultEnemyBulletAmount),
			v.Positive("enemy.bullet.delay", DefaultEnemyBulletDelay),
		),
		Hitbox:    v.Positive("enemy.hitbox", DefaultEnemyHitbox),
		MoveTimer: component.NewTimer(v.Positive("enemy.move.delay", DefaultEnemyMoveDelay)),
		Pattern:   component.NewMovementPattern(v.Floats("enemy.pattern", DefaultEnemyPattern)),
	}, true
}
