package system

import (
	"github.com/milk9111/danmaku/component"
	"github.com/milk9111/danmaku/ecs"
)

// resolveVolley advances every visible bullet of spell by its velocity, tests
// it against the living targets and retires it on the first hit or when it
// leaves the play area vertically. Each hit deals one point of damage.
func resolveVolley[T component.Target](w *ecs.World, shooterID int, faction component.Faction, spell *component.Spell, targets []T) {
	spell.AdvanceVisible(func(_ int, b *component.Bullet) {
		b.Body.Step()

		for _, t := range targets {
			health := t.HealthComponent()
			if !health.IsAlive() {
				continue
			}
			pos := t.Position()
			if !b.Collided(pos, t.HitboxRadius()) {
				continue
			}

			change := health.TakeDamage(1)
			b.Visible = false
			w.MarkDeathCheck(faction.Opponent())
			w.Events().Push(component.CombatEvent{
				Type:       component.EventDamageApplied,
				Faction:    faction.Opponent(),
				AttackerID: shooterID,
				TargetID:   t.ID(),
				Damage:     change.Previous - change.Current,
				Health:     change.Current,
				PosX:       pos.X,
				PosY:       pos.Y,
			})
			if change.Died {
				w.Events().Push(component.CombatEvent{
					Type:       component.EventDeath,
					Faction:    faction.Opponent(),
					AttackerID: shooterID,
					TargetID:   t.ID(),
					PosX:       pos.X,
					PosY:       pos.Y,
				})
			}
			break
		}

		if w.Screen.OutOfBoundsY(b.Body.Y()) {
			b.Visible = false
		}
	})
}
