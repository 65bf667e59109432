package system

import (
	"time"

	"github.com/lixenwraith/riftpulse/engine"
)

// SupercriticalSystem advances escalation countdowns and detonates
// anomalies whose countdown has elapsed. Only the authoritative side runs
// the destructive transition; replicas mirror the replicated removal.
type SupercriticalSystem struct {
	world     *engine.World
	clock     engine.TimeProvider
	anomalies *AnomalySystem
}

// NewSupercriticalSystem creates the escalation countdown system
func NewSupercriticalSystem(world *engine.World, clock engine.TimeProvider, anomalies *AnomalySystem) *SupercriticalSystem {
	return &SupercriticalSystem{world: world, clock: clock, anomalies: anomalies}
}

// Priority returns the system's priority; runs last in the tick
func (s *SupercriticalSystem) Priority() int {
	return 30
}

// Update detonates anomalies whose countdown deadline has passed
func (s *SupercriticalSystem) Update(dt time.Duration) {
	if s.world.Authority == engine.AuthorityReplica {
		return
	}

	now := s.clock.Now()

	for _, e := range s.world.Supercritical.All() {
		sc, ok := s.world.Supercritical.Get(e)
		if !ok {
			continue
		}
		if !now.After(sc.EndTime) {
			continue
		}

		s.anomalies.ExecuteSupercritical(e)
		// Detonation normally destroys the entity and all its components;
		// the explicit removal keeps an elapsed countdown from refiring if
		// the destruction did not happen
		s.world.Supercritical.Remove(e)
	}
}
