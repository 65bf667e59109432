package parameter

import "time"

// Event Queue
const (
	// EventQueueSize caps buffered notifications; the oldest are dropped
	// beyond this
	EventQueueSize = 256
)

// Simulation
const (
	// SimulationStep is the fixed timestep of the demo loop
	SimulationStep = 50 * time.Millisecond
)
