package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/riftpulse/core"
	"github.com/lixenwraith/riftpulse/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()

	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventAnomalyPulsed, Entity: core.Entity(i + 1)})
	}
	if q.Len() != 5 {
		t.Errorf("Len = %d, want 5", q.Len())
	}

	events := q.Consume()
	if len(events) != 5 {
		t.Fatalf("consumed %d events, want 5", len(events))
	}
	for i, ev := range events {
		if ev.Entity != core.Entity(i+1) {
			t.Errorf("event %d addressed to %d, want %d", i, ev.Entity, i+1)
		}
	}

	if again := q.Consume(); again != nil {
		t.Errorf("second consume returned %d events, want none", len(again))
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()

	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventShutdown, Entity: core.Entity(i)})
	}

	events := q.Consume()
	if len(events) == 0 || len(events) > parameter.EventQueueSize {
		t.Fatalf("consumed %d events, want at most %d", len(events), parameter.EventQueueSize)
	}
	// The newest event must survive the overwrite
	last := events[len(events)-1]
	if last.Entity != core.Entity(total-1) {
		t.Errorf("last event entity = %d, want %d", last.Entity, total-1)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()

	const producers = 8
	const perProducer = 16
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GameEvent{Type: EventSeverityChanged, Entity: core.Entity(p)})
			}
		}(p)
	}
	wg.Wait()

	if got := len(q.Consume()); got != producers*perProducer {
		t.Errorf("consumed %d events, want %d", got, producers*perProducer)
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		et   EventType
		want string
	}{
		{EventStabilityChanged, "StabilityChanged"},
		{EventSeverityChanged, "SeverityChanged"},
		{EventHealthChanged, "HealthChanged"},
		{EventAnomalyPulsed, "AnomalyPulsed"},
		{EventSupercritical, "Supercritical"},
		{EventShutdown, "Shutdown"},
		{EventType(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.et.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", int(tt.et), got, tt.want)
		}
	}
}
