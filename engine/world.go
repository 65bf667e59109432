package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/riftpulse/component"
	"github.com/lixenwraith/riftpulse/core"
	"github.com/lixenwraith/riftpulse/event"
)

// Authority defines which side of a replicated simulation this world is
type Authority uint8

const (
	// AuthorityServer owns the simulation and runs destructive transitions
	AuthorityServer Authority = iota
	// AuthorityReplica mirrors replicated state; it never destroys entities,
	// only runs local effect-window cleanup
	AuthorityReplica
)

// System is the interface all simulation systems implement
type System interface {
	Update(dt time.Duration)
	Priority() int // Lower values run first
}

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Anomalies     *Store[component.AnomalyComponent]
	Pulsing       *Store[component.PulsingComponent]
	Supercritical *Store[component.SupercriticalComponent]
	Visuals       *Store[component.VisualComponent]

	Authority Authority

	events  *event.EventQueue
	systems []System
}

// NewWorld creates an authoritative ECS world with its own event queue
func NewWorld() *World {
	return &World{
		nextEntityID:  1,
		Anomalies:     NewStore[component.AnomalyComponent](),
		Pulsing:       NewStore[component.PulsingComponent](),
		Supercritical: NewStore[component.SupercriticalComponent](),
		Visuals:       NewStore[component.VisualComponent](),
		events:        event.NewEventQueue(),
		systems:       make([]System, 0),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity.
// Destroying an unknown entity is a no-op.
func (w *World) DestroyEntity(e core.Entity) {
	w.Anomalies.Remove(e)
	w.Pulsing.Remove(e)
	w.Supercritical.Remove(e)
	w.Visuals.Remove(e)
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	w.nextEntityID = 1
	w.mu.Unlock()

	w.Anomalies.Clear()
	w.Pulsing.Clear()
	w.Supercritical.Clear()
	w.Visuals.Clear()
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Update runs all systems sequentially in priority order
func (w *World) Update(dt time.Duration) {
	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update(dt)
	}
}

// PushEvent emits a simulation event addressed to an entity
func (w *World) PushEvent(eventType event.EventType, e core.Entity, payload any) {
	w.events.Push(event.GameEvent{
		Type:    eventType,
		Entity:  e,
		Payload: payload,
	})
}

// ConsumeEvents drains all pending events in FIFO order
func (w *World) ConsumeEvents() []event.GameEvent {
	return w.events.Consume()
}
