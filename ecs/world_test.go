package ecs

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/component"
	"github.com/milk9111/danmaku/ecs/entity"
	"github.com/milk9111/danmaku/input"
	"github.com/milk9111/danmaku/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordSystem struct {
	name string
	log  *[]string
}

func (s recordSystem) Update(w *World) {
	*s.log = append(*s.log, s.name)
}

func TestWorldRunsSystemsInOrder(t *testing.T) {
	var log []string
	w := NewWorld(common.DefaultScreen())
	w.AddSystem(recordSystem{"a", &log})
	w.AddSystem(nil)
	w.AddSystem(recordSystem{"b", &log})
	w.AddSystem(recordSystem{"c", &log})

	w.Update(time.Millisecond, input.Input{})
	w.Update(time.Millisecond, input.Input{})

	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, log)
}

type pushSystem struct{}

func (pushSystem) Update(w *World) {
	w.Events().Push(component.CombatEvent{Type: component.EventDamageApplied})
	w.MarkDeathCheck(component.FactionEnemy)
}

func TestWorldUpdateResetsPerTickState(t *testing.T) {
	w := NewWorld(common.DefaultScreen())
	w.AddSystem(pushSystem{})

	w.Update(16*time.Millisecond, input.Input{Up: true})
	assert.Equal(t, 1, w.Events().Len())
	assert.True(t, w.DeathCheckDue(component.FactionEnemy))
	assert.False(t, w.DeathCheckDue(component.FactionPlayer))
	assert.Equal(t, 16*time.Millisecond, w.Delta())
	assert.True(t, w.Input().Up)

	w.Update(time.Millisecond, input.Input{})
	events := w.Events().Drain()
	assert.Len(t, events, 1, "undrained events do not pile up across ticks")
	assert.Nil(t, w.Events().Drain())
}

func TestWorldSpawnDeathParticles(t *testing.T) {
	w := NewWorld(common.DefaultScreen())
	w.ParticleSpeed = 5
	w.SpawnDeathParticles(cp.Vector{X: 10, Y: 20})

	require.Len(t, w.Particles, 4)
	want := []cp.Vector{{X: 0, Y: -5}, {X: 0, Y: 5}, {X: -5, Y: 0}, {X: 5, Y: 0}}
	for i, p := range w.Particles {
		assert.Equal(t, cp.Vector{X: 10, Y: 20}, p.Bullet.Body.Position)
		assert.Equal(t, want[i], p.Bullet.Body.Velocity)
		assert.True(t, p.Alive())
	}
}

func TestWorldResizeKeepsState(t *testing.T) {
	w := NewWorld(common.DefaultScreen())
	p, _ := entity.NewPlayer(w.NextID(), prefabs.Values{"player": map[string]any{}})
	w.AddPlayer(p)

	w.Resize(1024, 600)
	assert.Equal(t, common.Screen{Width: 1024, Height: 600}, w.Screen)
	require.Len(t, w.Players, 1)
	assert.Same(t, p, w.Players[0])
}

func TestWorldSnapshotIsACopy(t *testing.T) {
	w := NewWorld(common.DefaultScreen())
	v := prefabs.Values{"player": map[string]any{}, "enemy": map[string]any{}}
	p, _ := entity.NewPlayer(w.NextID(), v)
	e, _ := entity.NewEnemy(w.NextID(), v)
	w.AddPlayer(p)
	w.AddEnemy(e)
	p.Spell.Activate(p.Position())
	e.Health.TakeDamage(50)
	w.Messages = append(w.Messages, "hello")

	s := w.Snapshot()
	require.Len(t, s.Bodies, 2)
	assert.Equal(t, component.FactionPlayer, s.Bodies[0].Faction)
	assert.Equal(t, 0.75, s.Bodies[1].Health)
	assert.Equal(t, uint32(150), s.Bodies[1].HP)
	assert.Equal(t, uint32(200), s.Bodies[1].MaxHP)
	require.Len(t, s.Bullets, 1)
	assert.Equal(t, 350.0, s.Bullets[0].Y)

	s.Messages[0] = "changed"
	assert.Equal(t, "hello", w.Messages[0])
	assert.NotEqual(t, p.ID(), e.ID())
}
