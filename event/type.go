package event

// EventType represents the type of simulation event
type EventType int

const (
	// EventStabilityChanged reports a new stability value after clamping
	// Trigger: AnomalySystem.ChangeStability
	// Payload: ScalarChangedPayload
	EventStabilityChanged EventType = iota

	// EventSeverityChanged reports a new severity value after clamping.
	// Also emitted with an unchanged value when a pulse fires without
	// growth, so observers see a heartbeat even when nothing moved.
	// Trigger: AnomalySystem.ChangeSeverity
	// Payload: ScalarChangedPayload
	EventSeverityChanged

	// EventHealthChanged reports a new health value after clamping
	// Trigger: AnomalySystem.ChangeHealth
	// Payload: ScalarChangedPayload
	EventHealthChanged

	// EventAnomalyPulsed marks a fired pulse and carries the post-pulse state
	// Trigger: AnomalySystem.DoPulse
	// Payload: AnomalyPulsedPayload
	EventAnomalyPulsed

	// EventSupercritical marks the detonation at the end of the escalation
	// countdown, emitted immediately before the shutdown
	// Trigger: AnomalySystem.ExecuteSupercritical
	// Payload: nil
	EventSupercritical

	// EventShutdown is broadcast before an anomaly is destroyed
	// Trigger: AnomalySystem.EndAnomaly
	// Payload: ShutdownPayload
	EventShutdown
)

// String returns the name of the event type for debugging
func (e EventType) String() string {
	switch e {
	case EventStabilityChanged:
		return "StabilityChanged"
	case EventSeverityChanged:
		return "SeverityChanged"
	case EventHealthChanged:
		return "HealthChanged"
	case EventAnomalyPulsed:
		return "AnomalyPulsed"
	case EventSupercritical:
		return "Supercritical"
	case EventShutdown:
		return "Shutdown"
	default:
		return "Unknown"
	}
}
