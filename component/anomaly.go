package component

import (
	"fmt"
	"time"

	"github.com/lixenwraith/riftpulse/parameter"
)

// AnomalyConfig holds the per-anomaly tunables. Set at spawn, never
// mutated afterwards.
type AnomalyConfig struct {
	// PulseVariation is the jitter fraction applied to each pulse interval
	PulseVariation float64

	// GrowthThreshold is the stability level above which pulses grow severity.
	// Also the pivot of the pulse length ramp.
	GrowthThreshold float64

	// DecayThreshold is the stability level below which health drains each tick
	DecayThreshold float64

	// HealthChangePerSecond is the health delta per second while decaying
	HealthChangePerSecond float64

	// SeverityGrowthCoefficient scales severity gain per growth pulse
	SeverityGrowthCoefficient float64

	// MinPulseLength and MaxPulseLength bound the pulse interval ramp.
	// Invariant: MaxPulseLength > MinPulseLength.
	MinPulseLength time.Duration
	MaxPulseLength time.Duration
}

// DefaultAnomalyConfig returns the tuning used by the demo
func DefaultAnomalyConfig() AnomalyConfig {
	return AnomalyConfig{
		PulseVariation:            parameter.PulseVariation,
		GrowthThreshold:           parameter.GrowthThreshold,
		DecayThreshold:            parameter.DecayThreshold,
		HealthChangePerSecond:     parameter.HealthChangePerSecond,
		SeverityGrowthCoefficient: parameter.SeverityGrowthCoefficient,
		MinPulseLength:            parameter.MinPulseLength,
		MaxPulseLength:            parameter.MaxPulseLength,
	}
}

// Validate reports configurations that break the pulse length formula.
// Callers treat a failure as a programming error at spawn time; the
// runtime formulas still clamp so a bad config cannot crash the sweep.
func (c AnomalyConfig) Validate() error {
	if c.MaxPulseLength <= c.MinPulseLength {
		return fmt.Errorf("anomaly config: MaxPulseLength (%v) must exceed MinPulseLength (%v)",
			c.MaxPulseLength, c.MinPulseLength)
	}
	if c.GrowthThreshold <= 0 {
		return fmt.Errorf("anomaly config: GrowthThreshold must be positive, got %v",
			c.GrowthThreshold)
	}
	if c.PulseVariation < 0 || c.PulseVariation >= 1 {
		// Jitter of 1 or more would allow a non-positive pulse interval
		return fmt.Errorf("anomaly config: PulseVariation must be in [0,1), got %v",
			c.PulseVariation)
	}
	return nil
}

// AnomalyComponent is the core state of one rift anomaly.
// All three scalars stay in [0,1] after every mutation; NextPulseTime is
// absolute simulation time and never moves backwards.
type AnomalyComponent struct {
	Stability float64 // Inverse of volatility; low stability drains health and speeds pulses
	Severity  float64 // Intensity; reaching 1 escalates to supercritical
	Health    float64 // Reaching below 0 collapses the anomaly

	NextPulseTime time.Time

	Config AnomalyConfig
}
