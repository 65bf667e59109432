package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// TimeProvider is the simulation clock. All deadline comparisons in the
// systems go through it so tests can substitute a controllable source.
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider returns real system time with monotonic readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a real-time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// PausableClock provides pausable simulation time with pause duration
// tracking. While paused, Now is frozen at the pause point, so absolute
// deadlines held in components stay valid across the pause. Hosts that
// drive the simulation from a wall clock instead shift deadlines by the
// duration Resume returns.
type PausableClock struct {
	mu sync.RWMutex

	realStartTime time.Time // When clock was created (real time)
	gameStartTime time.Time // Simulation time epoch (adjusted for pauses)

	isPaused        atomic.Bool
	pauseStartTime  time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a running pausable clock
func NewPausableClock() *PausableClock {
	now := time.Now()
	return &PausableClock{
		realStartTime: now,
		gameStartTime: now,
	}
}

// Now returns current simulation time (affected by pause)
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		// During pause: frozen at the pause point
		return pc.gameStartTime.Add(pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime)
	}

	realElapsed := time.Since(pc.realStartTime)
	return pc.gameStartTime.Add(realElapsed - pc.totalPausedTime)
}

// Pause stops simulation time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.pauseStartTime = time.Now()
	}
}

// Resume continues simulation time advancement and returns the duration
// of the pause that just ended (0 if the clock was not paused)
func (pc *PausableClock) Resume() time.Duration {
	if !pc.isPaused.CompareAndSwap(true, false) {
		return 0
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.pauseStartTime.IsZero() {
		return 0
	}

	paused := time.Since(pc.pauseStartTime)
	pc.totalPausedTime += paused
	pc.pauseStartTime = time.Time{}
	return paused
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		total += time.Since(pc.pauseStartTime)
	}
	return total
}
