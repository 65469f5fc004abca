package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/input"
	"github.com/milk9111/danmaku/prefabs"
	"github.com/milk9111/danmaku/session/mocks"
	"github.com/milk9111/danmaku/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const tick = 100 * time.Millisecond

func duelValues() prefabs.Values {
	return prefabs.Values{
		"story":  []any{"one", "two"},
		"player": map[string]any{}, "player.y": 150, "player.health": 10000,
		"enemy": map[string]any{}, "enemy.health": 1, "enemy.pattern": []any{0}, "enemy.bullet.delay": 1000,
		"background": "sky",
	}
}

func newSession(t *testing.T, v prefabs.Values) (*Session, *mocks.MockLoader, *observer.ObservedLogs) {
	t.Helper()
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)
	loader.EXPECT().Load().Return(v, nil)

	core, logs := observer.New(zapcore.DebugLevel)
	s, err := New(loader, zap.New(core), common.DefaultScreen())
	require.NoError(t, err)
	return s, loader, logs
}

func confirm(s *Session, n int) {
	for i := 0; i < n; i++ {
		s.HandleInput(input.Input{ConfirmPressed: true})
	}
}

func TestNewFailsWhenConfigCannotLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)
	boom := errors.New("boom")
	loader.EXPECT().Load().Return(nil, boom)

	_, err := New(loader, zap.NewNop(), common.DefaultScreen())
	require.ErrorIs(t, err, boom)
}

func TestSimulationRunsOnlyInCombat(t *testing.T) {
	s, _, _ := newSession(t, duelValues())
	player := s.World().Players[0]

	s.Tick(tick)
	assert.Zero(t, player.Spell.VisibleCount(), "cinematic is inert")

	confirm(s, 2)
	require.Equal(t, state.Combat, s.State())
	s.Tick(tick)
	assert.Equal(t, 1, player.Spell.VisibleCount())

	s.Pause()
	require.Equal(t, state.Paused, s.State())
	s.Tick(tick)
	assert.Equal(t, 1, player.Spell.VisibleCount(), "paused is inert")

	s.Resume()
	assert.Equal(t, state.Combat, s.State())
}

func TestHeldInputMovesPlayerDuringTick(t *testing.T) {
	s, _, _ := newSession(t, duelValues())
	confirm(s, 2)

	s.HandleInput(input.Input{Right: true})
	s.Tick(tick)
	assert.Equal(t, 355.0, s.World().Players[0].Body.X())
}

func TestRestartKeyRebuildsFromConfig(t *testing.T) {
	s, loader, _ := newSession(t, duelValues())
	loader.EXPECT().Load().Return(duelValues(), nil)
	firstRun := s.RunID()
	confirm(s, 2)
	s.Tick(tick)
	s.Tick(tick)
	require.Empty(t, s.World().Enemies)

	s.HandleInput(input.Input{RestartPressed: true})

	assert.Equal(t, state.Cinematic, s.State())
	assert.NotEqual(t, firstRun, s.RunID())
	require.Len(t, s.World().Enemies, 1)
	assert.Equal(t, ecs.OutcomeNone, s.World().Outcome)
}

func TestRestartFallsBackToDefaults(t *testing.T) {
	s, loader, logs := newSession(t, duelValues())
	loader.EXPECT().Load().Return(nil, errors.New("prefabs: parse game.yaml: bad indent"))

	s.Restart()

	require.Len(t, s.World().Enemies, 1)
	assert.Equal(t, uint32(200), s.World().Enemies[0].Health.Max)
	assert.Equal(t, []string{"prefabs: parse game.yaml: bad indent"}, s.World().Messages)
	assert.Equal(t, 1, logs.FilterMessage("config reload failed, using defaults").Len())
}

func TestOversizedBulletPoolFallsBackToDefault(t *testing.T) {
	v := duelValues()
	v["player.bullet.amount"] = 1e13
	s, _, _ := newSession(t, v)

	assert.Equal(t, 8, s.World().Players[0].Spell.Cap())
}

func TestEventsAreLogged(t *testing.T) {
	s, _, logs := newSession(t, duelValues())
	confirm(s, 2)
	s.Tick(tick)
	s.Tick(tick)

	assert.Equal(t, 1, logs.FilterMessage("enemy health").Len())
	assert.Equal(t, 1, logs.FilterMessage("entity died").Len())
	finished := logs.FilterMessage("run finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, "won", finished[0].ContextMap()["outcome"])
	assert.Equal(t, s.RunID(), finished[0].ContextMap()["run"])
}

func TestSnapshot(t *testing.T) {
	s, _, _ := newSession(t, duelValues())

	snap := s.Snapshot()
	assert.Equal(t, state.Cinematic, snap.State)
	require.True(t, snap.HasLine)
	assert.Equal(t, "one", snap.Line.Text)
	assert.Equal(t, "sky", snap.Background)
	assert.Len(t, snap.Bodies, 2)

	confirm(s, 2)
	assert.False(t, s.Snapshot().HasLine)
}

func TestResizeKeepsState(t *testing.T) {
	s, _, _ := newSession(t, duelValues())
	confirm(s, 2)
	s.Tick(tick)

	s.Resize(640, 480)
	assert.Equal(t, common.Screen{Width: 640, Height: 480}, s.World().Screen)
	assert.Equal(t, state.Combat, s.State())
	assert.Equal(t, 1, s.World().Players[0].Spell.VisibleCount())
}

func TestQuitIsNotATransition(t *testing.T) {
	s, _, _ := newSession(t, duelValues())
	s.HandleInput(input.Input{QuitPressed: true})
	assert.True(t, s.Quitting())
	assert.Equal(t, state.Cinematic, s.State())
}

func TestConfigEditRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemy:\n  health: 5\n"), 0o644))

	s, err := New(FileLoader{Name: path}, zap.NewNop(), common.DefaultScreen())
	require.NoError(t, err)
	require.NoError(t, s.WatchConfig(path))
	t.Cleanup(func() { _ = s.Close() })
	firstRun := s.RunID()

	require.NoError(t, os.WriteFile(path, []byte("enemy:\n  health: 7\n"), 0o644))
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))

	require.Eventually(t, s.PollReload, 2*time.Second, 20*time.Millisecond)
	assert.NotEqual(t, firstRun, s.RunID())
	require.Len(t, s.World().Enemies, 1)
	assert.Equal(t, uint32(7), s.World().Enemies[0].Health.Max)
	assert.Empty(t, s.World().Players)
}
