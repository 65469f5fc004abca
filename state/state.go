// Package state holds the game-state machine: an explicit state x event
// table plus the story queue consumed during the cinematic.
package state

import (
	"errors"
	"fmt"
)

type State int

const (
	Cinematic State = iota
	Combat
	Paused
)

var States = [...]State{Cinematic, Combat, Paused}

func (s State) String() string {
	switch s {
	case Cinematic:
		return "cinematic"
	case Combat:
		return "combat"
	case Paused:
		return "paused"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type Event int

const (
	Confirm Event = iota
	Menu
	Resume
	Restart
)

var Events = [...]Event{Confirm, Menu, Resume, Restart}

func (e Event) String() string {
	switch e {
	case Confirm:
		return "confirm"
	case Menu:
		return "menu"
	case Resume:
		return "resume"
	case Restart:
		return "restart"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// Effect tells the caller what to do beyond switching state.
type Effect int

const (
	EffectNone Effect = iota
	// EffectRebuild asks the owner to rebuild every entity, pool and timer
	// from configuration.
	EffectRebuild
)

// Transition computes the next state. It may consume story lines.
type Transition func(m *Machine) (State, Effect)

type Table map[State]map[Event]Transition

var ErrIncompleteTable = errors.New("state: incomplete transition table")

// Validate reports every (state, event) pair without a transition.
func Validate(t Table) error {
	var missing []string
	for _, s := range States {
		for _, e := range Events {
			if t[s][e] == nil {
				missing = append(missing, s.String()+"/"+e.String())
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %v", ErrIncompleteTable, missing)
	}
	return nil
}

func stay(m *Machine) (State, Effect) { return m.state, EffectNone }

func pause(*Machine) (State, Effect) { return Paused, EffectNone }

func rebuild(*Machine) (State, Effect) { return Cinematic, EffectRebuild }

// advanceStory pops the shown line and enters combat once nothing is left.
func advanceStory(m *Machine) (State, Effect) {
	m.story.Pop()
	if m.story.Empty() {
		return Combat, EffectNone
	}
	return Cinematic, EffectNone
}

func resume(m *Machine) (State, Effect) {
	if m.story.Empty() {
		return Combat, EffectNone
	}
	return Cinematic, EffectNone
}

// DefaultTable returns the game's transition table. Confirm while paused
// activates the menu's first item, which is Resume.
func DefaultTable() Table {
	return Table{
		Cinematic: {Confirm: advanceStory, Menu: pause, Resume: stay, Restart: rebuild},
		Combat:    {Confirm: stay, Menu: pause, Resume: stay, Restart: rebuild},
		Paused:    {Confirm: resume, Menu: stay, Resume: resume, Restart: rebuild},
	}
}

// Machine starts in Cinematic.
type Machine struct {
	state State
	story *Story
	table Table
}

func NewMachine(story []Line) *Machine {
	m, err := NewMachineWithTable(DefaultTable(), story)
	if err != nil {
		panic(err)
	}
	return m
}

// NewMachineWithTable refuses a table that does not cover every pair.
func NewMachineWithTable(t Table, story []Line) (*Machine, error) {
	if err := Validate(t); err != nil {
		return nil, err
	}
	return &Machine{state: Cinematic, story: NewStory(story), table: t}, nil
}

func (m *Machine) State() State { return m.state }

func (m *Machine) Story() *Story { return m.story }

// Fire applies e and returns the resulting effect.
func (m *Machine) Fire(e Event) Effect {
	next, effect := m.table[m.state][e](m)
	m.state = next
	return effect
}
