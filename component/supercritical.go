package component

import "time"

// SupercriticalComponent marks an anomaly in the escalation countdown.
// At most one per anomaly; its presence guarantees the anomaly terminates.
type SupercriticalComponent struct {
	EndTime  time.Time
	Duration time.Duration
}
