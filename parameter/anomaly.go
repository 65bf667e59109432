package parameter

import "time"

// Anomaly Pulse
const (
	// PulseVariation is the random jitter applied to each pulse interval (±20%)
	PulseVariation = 0.2

	// GrowthThreshold is the stability level above which pulses feed severity
	GrowthThreshold = 0.5

	// MinPulseLength is the pulse interval at or below the growth threshold
	MinPulseLength = 1 * time.Second

	// MaxPulseLength is the pulse interval at full stability
	MaxPulseLength = 10 * time.Second

	// SeverityGrowthCoefficient scales severity gain per growth pulse
	SeverityGrowthCoefficient = 0.02

	// PulseEffectDuration is how long the pulse visual/audio window stays open
	PulseEffectDuration = 800 * time.Millisecond
)

// Anomaly Decay
const (
	// DecayThreshold is the stability level below which health drains
	DecayThreshold = 0.3

	// HealthChangePerSecond is the health delta applied while decaying
	HealthChangePerSecond = -0.05
)

// Supercritical Escalation
const (
	// SupercriticalDuration is the countdown between the severity threshold
	// crossing and the detonation
	SupercriticalDuration = 3 * time.Second
)
