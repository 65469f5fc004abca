package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/component"
	"github.com/milk9111/danmaku/prefabs"
)

// Player is the input-driven entity. Enemy bullets test against it with a
// small hitbox.
type Player struct {
	id     int
	Body   component.RigidBody
	Health *component.Health
	Spell  *component.Spell
	Hitbox float64
}

func (p *Player) ID() int                                    { return p.id }
func (p *Player) Position() cp.Vector                        { return p.Body.Position }
func (p *Player) HitboxRadius() float64                      { return p.Hitbox }
func (p *Player) HealthComponent() component.HealthComponent { return p.Health }

// Move displaces the player one step in dir at its own speed.
func (p *Player) Move(dir cp.Vector) {
	p.Body.MoveBy(dir.Mult(p.Body.Speed()))
}

// NewPlayer builds the player from the "player" section of v. It reports false
// when the section is absent.
func NewPlayer(id int, v prefabs.Values) (*Player, bool) {
	if !v.Has("player") {
		return nil, false
	}

	speed := v.Float("player.speed", DefaultPlayerSpeed)
	bulletSpeed := v.Float("player.bullet.speed", DefaultPlayerBulletSpeed)

	return &Player{
		id: id,
		Body: component.RigidBody{
			Position: cp.Vector{
				X: v.Float("player.x", DefaultPlayerX),
				Y: v.Float("player.y", DefaultPlayerY),
			},
			Velocity: cp.Vector{X: speed, Y: speed},
		},
		Health: component.NewHealth(v.Uint("player.health", DefaultPlayerHealth)),
		Spell: component.NewSpell(
			common.DirUp.Mult(bulletSpeed),
			poolSize(v, "player.bullet.amount", DefaultPlayerBulletAmount),
			v.Positive("player.bullet.delay", DefaultPlayerBulletDelay),
		),
		Hitbox: v.Positive("player.hitbox", DefaultPlayerHitbox),
	}, true
}

// poolSize reads a bullet amount, rejecting values outside [0, MaxSpellSize].
func poolSize(v prefabs.Values, key string, def int) int {
	n := v.Int(key, def)
	if n < 0 || n > MaxSpellSize {
		return def
	}
	return n
}
