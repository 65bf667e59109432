package event

import "github.com/lixenwraith/riftpulse/core"

// GameEvent is a single simulation event addressed to an entity.
// Events are immutable once pushed; delivery is local fire-and-forget.
type GameEvent struct {
	Type    EventType
	Entity  core.Entity
	Payload any
}

// ScalarChangedPayload carries the post-clamp value of a core scalar
type ScalarChangedPayload struct {
	Value float64
}

// AnomalyPulsedPayload carries the anomaly state observed at pulse time
type AnomalyPulsedPayload struct {
	Stability float64
	Severity  float64
}

// ShutdownPayload distinguishes a supercritical detonation from a
// health-driven collapse
type ShutdownPayload struct {
	Supercritical bool
}
