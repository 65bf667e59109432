package event

import (
	"sync"

	"github.com/lixenwraith/riftpulse/parameter"
)

// EventQueue buffers notifications between the systems that emit them and
// the single consumer that drains the queue once per step. Bounded: when
// full, the oldest entry is dropped, so a stalled consumer still sees the
// most recent transitions (a dropped SeverityChanged is superseded by the
// one that displaced it).
type EventQueue struct {
	mu    sync.Mutex
	buf   [parameter.EventQueueSize]GameEvent
	start int // Index of the oldest buffered event
	count int
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, displacing the oldest one if the queue is full.
// Safe to call from any goroutine.
func (eq *EventQueue) Push(event GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	idx := (eq.start + eq.count) % len(eq.buf)
	eq.buf[idx] = event
	if eq.count == len(eq.buf) {
		eq.start = (eq.start + 1) % len(eq.buf)
	} else {
		eq.count++
	}
}

// Consume returns all buffered events in FIFO order and empties the queue.
// Returns nil when there is nothing pending.
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.count == 0 {
		return nil
	}

	result := make([]GameEvent, eq.count)
	for i := range result {
		result[i] = eq.buf[(eq.start+i)%len(eq.buf)]
	}
	eq.start = 0
	eq.count = 0
	return result
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.count
}
