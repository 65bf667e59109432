package core

import "math/rand/v2"

// RandSource supplies uniform random values to the simulation.
// Injected so tests can pin the pulse jitter to a known value.
type RandSource interface {
	// UniformRange returns a value in [low, high)
	UniformRange(low, high float64) float64
}

type mathRandSource struct{}

func (mathRandSource) UniformRange(low, high float64) float64 {
	return low + rand.Float64()*(high-low)
}

// DefaultRandSource returns the math/rand backed source used outside tests
func DefaultRandSource() RandSource {
	return mathRandSource{}
}

// FixedRandSource always returns the same value, for deterministic tests
type FixedRandSource struct {
	Value float64
}

func (f FixedRandSource) UniformRange(low, high float64) float64 {
	if f.Value < low {
		return low
	}
	if f.Value > high {
		return high
	}
	return f.Value
}
