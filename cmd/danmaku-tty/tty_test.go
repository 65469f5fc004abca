package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/danmaku/component"
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/session"
	"github.com/milk9111/danmaku/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestKeyboardHoldsDirectionsBriefly(t *testing.T) {
	var k keyboard
	now := time.Now()
	k.handle(key(tcell.KeyUp, 0), now)
	k.handle(key(tcell.KeyRune, 'd'), now)

	in := k.input(now.Add(50 * time.Millisecond))
	assert.True(t, in.Up)
	assert.True(t, in.Right)
	assert.False(t, in.Left)

	in = k.input(now.Add(keyTimeout))
	assert.False(t, in.Moving())
}

func TestKeyboardPressesAreOneShot(t *testing.T) {
	var k keyboard
	now := time.Now()
	k.handle(key(tcell.KeyEnter, 0), now)
	k.handle(key(tcell.KeyEscape, 0), now)
	k.handle(key(tcell.KeyRune, 'r'), now)
	k.handle(key(tcell.KeyRune, 'q'), now)

	in := k.input(now)
	assert.True(t, in.ConfirmPressed)
	assert.True(t, in.MenuPressed)
	assert.True(t, in.RestartPressed)
	assert.True(t, in.QuitPressed)

	assert.Equal(t, k.input(now), k.input(now))
	assert.False(t, k.input(now).ConfirmPressed)
}

func TestCellProjection(t *testing.T) {
	c, r, ok := cell(400, 200, 800, 800, 80, 40)
	require.True(t, ok)
	assert.Equal(t, 40, c)
	assert.Equal(t, 10, r)

	_, _, ok = cell(-1, 10, 800, 800, 80, 40)
	assert.False(t, ok)
	_, _, ok = cell(10, 800, 800, 800, 80, 40)
	assert.False(t, ok)
}

func TestDrawSnapshot(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(80, 40)

	draw(s, session.Snapshot{
		Snapshot: ecs.Snapshot{
			Bodies: []ecs.BodyView{
				{Faction: component.FactionPlayer, X: 400, Y: 600, Health: 1},
				{Faction: component.FactionEnemy, X: 400, Y: 100, Health: 0.5, HP: 100, MaxHP: 200},
			},
			Bullets:  []ecs.BulletView{{Faction: component.FactionEnemy, X: 200, Y: 400}},
			Messages: []string{ecs.MessageWon},
			Width:    800,
			Height:   800,
		},
		State: state.Combat,
	})

	r, _, _, _ := s.GetContent(40, 30)
	assert.Equal(t, '@', r)
	r, _, _, _ = s.GetContent(40, 5)
	assert.Equal(t, 'W', r)
	r, _, _, _ = s.GetContent(20, 20)
	assert.Equal(t, '*', r)
	r, _, _, _ = s.GetContent(0, 0)
	assert.Equal(t, '[', r)

	var hud []rune
	for x := 0; x < 40; x++ {
		r, _, _, _ = s.GetContent(x, 0)
		hud = append(hud, r)
	}
	assert.Contains(t, string(hud), "100/200")
}
