// Package session ties the configuration source, the state machine and the
// combat world together. Both hosts drive the game through it.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/component"
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/system"
	"github.com/milk9111/danmaku/input"
	"github.com/milk9111/danmaku/prefabs"
	"github.com/milk9111/danmaku/state"
	"go.uber.org/zap"
)

//go:generate go tool mockgen -destination=./mocks/loader_mock.go -package=mocks . Loader

// Loader supplies configuration values at start and on every restart.
type Loader interface {
	Load() (prefabs.Values, error)
}

// FileLoader reads a configuration file from disk, or the embedded copy.
type FileLoader struct {
	Name string
}

func (l FileLoader) Load() (prefabs.Values, error) {
	return prefabs.LoadValues(l.Name)
}

type Session struct {
	loader Loader
	base   *zap.Logger
	log    *zap.Logger
	screen common.Screen

	runID   uuid.UUID
	values  prefabs.Values
	world   *ecs.World
	machine *state.Machine
	input   input.Input
	quit    bool

	watcher   *prefabs.Watcher
	watchPath string
	lastMod   time.Time
}

// New loads the configuration and builds the first run. A load failure here
// is returned; there is no valid state to fall back to yet.
func New(loader Loader, logger *zap.Logger, screen common.Screen) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	values, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("session: load config: %w", err)
	}

	s := &Session{loader: loader, base: logger, screen: screen}
	s.build(values)
	return s, nil
}

func (s *Session) build(values prefabs.Values) {
	s.runID = uuid.New()
	s.log = s.base.With(zap.String("run", s.runID.String()))
	s.values = values
	s.world = system.NewCombatWorld(values, s.screen)
	s.machine = state.NewMachine(state.LinesFromValues(values))
	s.input = input.Input{}

	s.log.Info("run started",
		zap.Int("players", len(s.world.Players)),
		zap.Int("enemies", len(s.world.Enemies)),
		zap.Int("story", s.machine.Story().Len()),
	)
}

// Restart rebuilds every entity, pool and timer from a fresh load. When the
// configuration cannot be loaded the built-in defaults are used and the error
// is shown as a message.
func (s *Session) Restart() {
	values, err := s.loader.Load()
	if err != nil {
		s.log.Warn("config reload failed, using defaults", zap.Error(err))
		values = prefabs.Defaults()
	}
	s.build(values)
	if err != nil {
		s.world.Messages = append(s.world.Messages, err.Error())
	}
}

// HandleInput records held keys for the next tick and turns discrete presses
// into state-machine events.
func (s *Session) HandleInput(in input.Input) {
	s.input = in
	if in.QuitPressed {
		s.quit = true
	}
	if in.ConfirmPressed {
		s.fire(state.Confirm)
	}
	if in.MenuPressed {
		s.fire(state.Menu)
	}
	if in.RestartPressed {
		s.fire(state.Restart)
	}
}

func (s *Session) fire(e state.Event) {
	from := s.machine.State()
	effect := s.machine.Fire(e)
	s.log.Debug("state event",
		zap.Stringer("event", e),
		zap.Stringer("from", from),
		zap.Stringer("to", s.machine.State()),
	)
	if effect == state.EffectRebuild {
		s.Restart()
	}
}

// Tick advances the simulation by dt. Outside Combat it does nothing.
func (s *Session) Tick(dt time.Duration) {
	if s.machine.State() != state.Combat {
		return
	}
	s.world.Update(dt, s.input)
	for _, ev := range s.world.Events().Drain() {
		s.logEvent(ev)
	}
}

func (s *Session) logEvent(ev component.CombatEvent) {
	switch ev.Type {
	case component.EventDamageApplied:
		s.log.Debug(ev.Faction.String()+" health",
			zap.Int("target", ev.TargetID),
			zap.Int("attacker", ev.AttackerID),
			zap.Uint32("health", ev.Health),
		)
	case component.EventDeath:
		s.log.Info("entity died",
			zap.Stringer("faction", ev.Faction),
			zap.Int("target", ev.TargetID),
			zap.Float64("x", ev.PosX),
			zap.Float64("y", ev.PosY),
		)
	case component.EventFactionDown:
		s.log.Info("run finished",
			zap.Stringer("faction", ev.Faction),
			zap.Stringer("outcome", s.world.Outcome),
		)
	}
}

func (s *Session) Pause()  { s.fire(state.Menu) }
func (s *Session) Resume() { s.fire(state.Resume) }

// Quit asks the host to stop. It is not a state transition.
func (s *Session) Quit() { s.quit = true }

func (s *Session) Quitting() bool { return s.quit }

// Resize only updates the play-area bounds.
func (s *Session) Resize(width, height float64) {
	s.screen = common.Screen{Width: width, Height: height}
	s.world.Resize(width, height)
}

func (s *Session) State() state.State { return s.machine.State() }

func (s *Session) RunID() string { return s.runID.String() }

func (s *Session) World() *ecs.World { return s.world }
