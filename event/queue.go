package event

import (
	"sync"

	"github.com/lixenwraith/vi-pong/parameter"
)

// EventQueue is a frame-scoped typed event buffer
// Producers append during the frame; every consumer reads without removing;
// the frame owner clears it once all consumers ran
//
// Thread-Safety: all methods are mutex-guarded, producers may run on any goroutine
type EventQueue struct {
	mu     sync.Mutex
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]GameEvent, 0, parameter.EventQueueCapacity),
	}
}

// Push appends an event to the current frame
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	eq.events = append(eq.events, ev)
	eq.mu.Unlock()
}

// Latest returns the most recent event of type t queued this frame, or false
// Older events of the same type are superseded and never observed
func (eq *EventQueue) Latest(t EventType) (GameEvent, bool) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	for i := len(eq.events) - 1; i >= 0; i-- {
		if eq.events[i].Type == t {
			return eq.events[i], true
		}
	}
	return GameEvent{}, false
}

// Count returns the number of events of type t queued this frame
func (eq *EventQueue) Count(t EventType) int {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	n := 0
	for _, ev := range eq.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// Events returns a snapshot of the frame's events in FIFO order
func (eq *EventQueue) Events() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.events) == 0 {
		return nil
	}
	result := make([]GameEvent, len(eq.events))
	copy(result, eq.events)
	return result
}

// Clear drops every queued event; called once at frame end
func (eq *EventQueue) Clear() {
	eq.mu.Lock()
	clear(eq.events)
	eq.events = eq.events[:0]
	eq.mu.Unlock()
}

// Len returns pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.events)
}
