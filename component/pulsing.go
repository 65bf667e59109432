package component

import "time"

// PulsingComponent marks an anomaly whose pulse effect window is open.
// Added when a pulse fires, removed when EndTime elapses.
type PulsingComponent struct {
	EndTime time.Time
}
