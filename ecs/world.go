package ecs

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/component"
	"github.com/milk9111/danmaku/ecs/entity"
	"github.com/milk9111/danmaku/input"
)

// Outcome is the terminal result of a match.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLost
	OutcomeWon
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLost:
		return "lost"
	case OutcomeWon:
		return "won"
	default:
		return "none"
	}
}

// Terminal messages appended when a faction is wiped out.
const (
	MessageLost = "You died! Press R to restart."
	MessageWon  = "You win! Press R to restart."
)

// World owns the combat roster, the particles and the ordered systems that
// advance them once per tick.
type World struct {
	Players   []*entity.Player
	Enemies   []*entity.Enemy
	Particles []component.Particle
	Messages  []string
	Screen    common.Screen
	Outcome   Outcome

	ParticleTTL   float64
	ParticleSpeed float64

	scheduler  *Scheduler
	events     EventQueue
	delta      time.Duration
	input      input.Input
	deathCheck [2]bool
	nextID     int
}

// NewWorld creates an empty world for the given play area.
func NewWorld(screen common.Screen) *World {
	return &World{
		Screen:        screen,
		ParticleTTL:   entity.DefaultParticleTTL,
		ParticleSpeed: entity.DefaultParticleSpeed,
		scheduler:     NewScheduler(),
	}
}

// NextID allocates an entity id. Ids are never reused within a world.
func (w *World) NextID() int {
	w.nextID++
	return w.nextID
}

func (w *World) AddPlayer(p *entity.Player) {
	if w == nil || p == nil {
		return
	}
	w.Players = append(w.Players, p)
}

func (w *World) AddEnemy(e *entity.Enemy) {
	if w == nil || e == nil {
		return
	}
	w.Enemies = append(w.Enemies, e)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Update runs every system once with the given frame delta and input. Events
// left over from the previous tick are discarded first.
func (w *World) Update(delta time.Duration, in input.Input) {
	if w == nil {
		return
	}
	w.events.flush()
	w.deathCheck = [2]bool{}
	w.delta = delta
	w.input = in
	w.scheduler.Update(w)
}

// Delta is the frame delta of the tick being run.
func (w *World) Delta() time.Duration { return w.delta }

// Input is the input snapshot of the tick being run.
func (w *World) Input() input.Input { return w.input }

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// MarkDeathCheck records that f took damage this tick and its roster must be
// checked for dead entities.
func (w *World) MarkDeathCheck(f component.Faction) {
	if int(f) < len(w.deathCheck) {
		w.deathCheck[f] = true
	}
}

func (w *World) DeathCheckDue(f component.Faction) bool {
	return int(f) < len(w.deathCheck) && w.deathCheck[f]
}

// SpawnDeathParticles emits one particle per cardinal direction at p.
func (w *World) SpawnDeathParticles(p cp.Vector) {
	for _, dir := range common.Cardinals {
		w.Particles = append(w.Particles, component.NewParticle(p, dir.Mult(w.ParticleSpeed), w.ParticleTTL))
	}
}

// Resize updates the play-area bounds without touching simulation state.
func (w *World) Resize(width, height float64) {
	if w == nil {
		return
	}
	w.Screen.Width = width
	w.Screen.Height = height
}

// Finished reports whether a faction has been wiped out.
func (w *World) Finished() bool {
	return w != nil && w.Outcome != OutcomeNone
}
