package ecs

import "github.com/milk9111/danmaku/component"

// EventQueue is a simple FIFO queue of combat events produced during a tick.
type EventQueue struct {
	items []component.CombatEvent
}

// Push adds an event.
func (q *EventQueue) Push(evt component.CombatEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []component.CombatEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
