package system

import (
	"math"
	"time"

	"github.com/lixenwraith/riftpulse/component"
	"github.com/lixenwraith/riftpulse/core"
	"github.com/lixenwraith/riftpulse/engine"
	"github.com/lixenwraith/riftpulse/event"
	"github.com/lixenwraith/riftpulse/journal"
	"github.com/lixenwraith/riftpulse/parameter"
)

// AnomalySystem drives the rift anomaly lifecycle: passive health decay,
// pulse scheduling, and the mutators other subsystems call to push the
// three core scalars around. Every mutator is a silent no-op when the
// entity no longer exists; termination and querying can interleave within
// one tick and that race is benign.
type AnomalySystem struct {
	world   *engine.World
	clock   engine.TimeProvider
	rng     core.RandSource
	journal *journal.Journal
	sounds  core.SoundPlayer

	// Entities currently inside EndAnomaly; guards re-entry while the
	// shutdown broadcast is being emitted
	ending map[core.Entity]struct{}
}

// NewAnomalySystem creates the anomaly tick driver. journal and sounds
// may be nil.
func NewAnomalySystem(world *engine.World, clock engine.TimeProvider, rng core.RandSource, jrnl *journal.Journal, sounds core.SoundPlayer) *AnomalySystem {
	return &AnomalySystem{
		world:   world,
		clock:   clock,
		rng:     rng,
		journal: jrnl,
		sounds:  sounds,
		ending:  make(map[core.Entity]struct{}),
	}
}

// Priority returns the system's priority; the anomaly sweep runs before
// the effect-window timers
func (s *AnomalySystem) Priority() int {
	return 10
}

// Spawn creates a new anomaly entity with the given starting scalars and
// schedules its first pulse. Returns an error for configs that break the
// pulse length invariant.
func (s *AnomalySystem) Spawn(cfg component.AnomalyConfig, stability, severity, health float64) (core.Entity, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}

	e := s.world.CreateEntity()
	a := component.AnomalyComponent{
		Stability: clamp01(stability),
		Severity:  clamp01(severity),
		Health:    clamp01(health),
		Config:    cfg,
	}
	a.NextPulseTime = s.clock.Now().Add(s.scheduleInterval(a))
	s.world.Anomalies.Set(e, a)
	s.world.Visuals.Set(e, component.VisualComponent{})
	return e, nil
}

// Update sweeps all live anomalies: applies decay while stability is below
// the decay threshold, then fires pulses whose deadline has passed.
// Replicas skip the sweep entirely; their scalars and deadlines arrive via
// replication, and a locally-driven pulse would diverge from them.
func (s *AnomalySystem) Update(dt time.Duration) {
	if s.world.Authority == engine.AuthorityReplica {
		return
	}

	now := s.clock.Now()

	for _, e := range s.world.Anomalies.All() {
		a, ok := s.world.Anomalies.Get(e)
		if !ok {
			continue // Destroyed earlier this tick
		}

		if a.Stability < a.Config.DecayThreshold {
			s.ChangeHealth(e, a.Config.HealthChangePerSecond*dt.Seconds())
			// Decay may have collapsed the anomaly
			if a, ok = s.world.Anomalies.Get(e); !ok {
				continue
			}
		}

		if now.After(a.NextPulseTime) {
			s.DoPulse(e)
		}
	}
}

// ChangeStability shifts stability by delta, clamped to [0,1]
func (s *AnomalySystem) ChangeStability(e core.Entity, delta float64) {
	a, ok := s.world.Anomalies.Get(e)
	if !ok {
		return
	}

	a.Stability = clamp01(a.Stability + delta)
	s.world.Anomalies.Set(e, a)
	s.world.PushEvent(event.EventStabilityChanged, e, event.ScalarChangedPayload{Value: a.Stability})
}

// ChangeSeverity shifts severity by delta, clamped to [0,1]. Crossing 1
// enters the supercritical escalation before the clamp is applied; the
// guard in EnterSupercritical makes repeated crossings harmless.
func (s *AnomalySystem) ChangeSeverity(e core.Entity, delta float64) {
	a, ok := s.world.Anomalies.Get(e)
	if !ok {
		return
	}

	next := a.Severity + delta
	if next >= 1 {
		s.EnterSupercritical(e)
	}

	a.Severity = clamp01(next)
	s.world.Anomalies.Set(e, a)
	s.world.PushEvent(event.EventSeverityChanged, e, event.ScalarChangedPayload{Value: a.Severity})
}

// ChangeHealth shifts health by delta, clamped to [0,1]. Dropping below 0
// ends the anomaly (non-supercritical) without writing the health field.
func (s *AnomalySystem) ChangeHealth(e core.Entity, delta float64) {
	a, ok := s.world.Anomalies.Get(e)
	if !ok {
		return
	}

	next := a.Health + delta
	if next < 0 {
		s.EndAnomaly(e, false)
		return
	}

	a.Health = clamp01(next)
	s.world.Anomalies.Set(e, a)
	s.world.PushEvent(event.EventHealthChanged, e, event.ScalarChangedPayload{Value: a.Health})
}

// DoPulse fires one pulse: reschedules the next one with random jitter,
// feeds severity when stability sits above the growth threshold, opens the
// pulse effect window, and notifies observers.
func (s *AnomalySystem) DoPulse(e core.Entity) {
	a, ok := s.world.Anomalies.Get(e)
	if !ok {
		return
	}

	now := s.clock.Now()
	variation := s.rng.UniformRange(-a.Config.PulseVariation, a.Config.PulseVariation) + 1
	interval := time.Duration(float64(pulseLength(a)) * variation)
	a.NextPulseTime = now.Add(interval)
	s.world.Anomalies.Set(e, a)

	if a.Stability > a.Config.GrowthThreshold {
		s.ChangeSeverity(e, severityGrowth(a))
	} else {
		// Zero-delta touch: re-emits SeverityChanged so observers get a
		// heartbeat even when nothing grew
		s.ChangeSeverity(e, 0)
	}

	s.journal.Log("anomaly", journal.SeverityMedium, "pulse",
		"entity", uint64(e), "stability", a.Stability, "next_in", interval)
	if s.sounds != nil {
		s.sounds.Play(core.SoundPulse)
	}

	s.world.Pulsing.Set(e, component.PulsingComponent{EndTime: now.Add(parameter.PulseEffectDuration)})
	s.setVisualFlag(e, component.FlagPulsing, true)

	// Re-read: severity may have grown above
	if a, ok = s.world.Anomalies.Get(e); ok {
		s.world.PushEvent(event.EventAnomalyPulsed, e, event.AnomalyPulsedPayload{
			Stability: a.Stability,
			Severity:  a.Severity,
		})
	}
}

// EnterSupercritical starts the escalation countdown. A no-op while a
// countdown is already running, so repeated threshold crossings never
// reset the deadline. Once entered the anomaly is guaranteed to terminate.
func (s *AnomalySystem) EnterSupercritical(e core.Entity) {
	if !s.world.Anomalies.Has(e) {
		return
	}
	if s.world.Supercritical.Has(e) {
		return
	}

	s.journal.Log("anomaly", journal.SeverityHigh, "going supercritical",
		"entity", uint64(e), "countdown", parameter.SupercriticalDuration)

	s.world.Supercritical.Set(e, component.SupercriticalComponent{
		EndTime:  s.clock.Now().Add(parameter.SupercriticalDuration),
		Duration: parameter.SupercriticalDuration,
	})
	s.setVisualFlag(e, component.FlagSupercritical, true)
}

// ExecuteSupercritical runs the detonation at the end of the countdown
func (s *AnomalySystem) ExecuteSupercritical(e core.Entity) {
	if !s.world.Anomalies.Has(e) {
		return
	}

	if s.sounds != nil {
		s.sounds.Play(core.SoundDetonation)
	}
	s.world.PushEvent(event.EventSupercritical, e, nil)
	s.EndAnomaly(e, true)
}

// EndAnomaly broadcasts the shutdown and destroys the entity. Idempotent:
// re-entry during the broadcast and calls on already-destroyed entities do
// nothing. Replicas never destroy; they mirror the replicated removal.
func (s *AnomalySystem) EndAnomaly(e core.Entity, supercritical bool) {
	if s.world.Authority == engine.AuthorityReplica {
		return
	}
	if _, mid := s.ending[e]; mid {
		return
	}
	if !s.world.Anomalies.Has(e) {
		return
	}

	s.ending[e] = struct{}{}
	defer delete(s.ending, e)

	s.world.PushEvent(event.EventShutdown, e, event.ShutdownPayload{Supercritical: supercritical})
	s.journal.Log("anomaly", journal.SeverityExtreme, "anomaly ended",
		"entity", uint64(e), "supercritical", supercritical)
	s.world.DestroyEntity(e)
}

// ShiftDeadlines adds d to every absolute deadline the simulation owns.
// Hosts driving the simulation from a wall clock call this after a pause;
// replicas call it locally after their own pause adjustment.
func (s *AnomalySystem) ShiftDeadlines(d time.Duration) {
	for _, e := range s.world.Anomalies.All() {
		if a, ok := s.world.Anomalies.Get(e); ok {
			a.NextPulseTime = a.NextPulseTime.Add(d)
			s.world.Anomalies.Set(e, a)
		}
	}
	for _, e := range s.world.Pulsing.All() {
		if p, ok := s.world.Pulsing.Get(e); ok {
			p.EndTime = p.EndTime.Add(d)
			s.world.Pulsing.Set(e, p)
		}
	}
	for _, e := range s.world.Supercritical.All() {
		if sc, ok := s.world.Supercritical.Get(e); ok {
			sc.EndTime = sc.EndTime.Add(d)
			s.world.Supercritical.Set(e, sc)
		}
	}
}

// scheduleInterval computes the first pulse deadline with jitter applied
func (s *AnomalySystem) scheduleInterval(a component.AnomalyComponent) time.Duration {
	variation := s.rng.UniformRange(-a.Config.PulseVariation, a.Config.PulseVariation) + 1
	return time.Duration(float64(pulseLength(a)) * variation)
}

func (s *AnomalySystem) setVisualFlag(e core.Entity, flag component.VisualFlag, on bool) {
	v, _ := s.world.Visuals.Get(e)
	if on {
		v.Flags |= flag
	} else {
		v.Flags &^= flag
	}
	s.world.Visuals.Set(e, v)
}

// pulseLength maps stability to the pulse interval. At or below the growth
// threshold pulses run at MinPulseLength; above it the interval ramps
// linearly up to MaxPulseLength, saturating at 2x the threshold.
// A config with MaxPulseLength <= MinPulseLength violates the spawn-time
// invariant; the span clamps to zero here so a bad config degrades to
// constant-rate pulsing instead of negative intervals.
func pulseLength(a component.AnomalyComponent) time.Duration {
	modifier := 1.0
	if a.Config.GrowthThreshold > 0 {
		modifier = clamp01((a.Stability - a.Config.GrowthThreshold) / a.Config.GrowthThreshold)
	}

	span := a.Config.MaxPulseLength - a.Config.MinPulseLength
	if span < 0 {
		span = 0
	}
	return time.Duration(float64(span)*modifier) + a.Config.MinPulseLength
}

// severityGrowth accelerates super-linearly the further stability sits
// above the growth threshold
func severityGrowth(a component.AnomalyComponent) float64 {
	score := 1 + math.Max(a.Stability-a.Config.GrowthThreshold, 0)*10
	return score * a.Config.SeverityGrowthCoefficient
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
