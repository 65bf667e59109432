package system

import (
	"time"

	"github.com/lixenwraith/riftpulse/component"
	"github.com/lixenwraith/riftpulse/core"
	"github.com/lixenwraith/riftpulse/engine"
)

// PulseSystem closes expired pulse effect windows: clears the pulsing
// visual flag and removes the transient component. Runs on replicas too,
// since the window is purely local presentation state.
type PulseSystem struct {
	world *engine.World
	clock engine.TimeProvider
}

// NewPulseSystem creates the pulse window cleanup system
func NewPulseSystem(world *engine.World, clock engine.TimeProvider) *PulseSystem {
	return &PulseSystem{world: world, clock: clock}
}

// Priority returns the system's priority; runs after the anomaly sweep
func (s *PulseSystem) Priority() int {
	return 20
}

// Update removes pulse windows whose deadline has passed
func (s *PulseSystem) Update(dt time.Duration) {
	now := s.clock.Now()

	for _, e := range s.world.Pulsing.All() {
		p, ok := s.world.Pulsing.Get(e)
		if !ok {
			continue
		}
		if !now.After(p.EndTime) {
			continue
		}

		s.clearPulsingFlag(e)
		s.world.Pulsing.Remove(e)
	}
}

func (s *PulseSystem) clearPulsingFlag(e core.Entity) {
	v, ok := s.world.Visuals.Get(e)
	if !ok {
		return // Entity destroyed; stale window
	}
	v.Flags &^= component.FlagPulsing
	s.world.Visuals.Set(e, v)
}
