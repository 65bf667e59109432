package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundPulse      SoundType = iota // Anomaly pulse blip
	SoundDetonation                  // Supercritical detonation
	SoundTypeCount
)

// SoundPlayer is the presentation-side audio sink.
// Implementations are fire-and-forget; callers treat a nil player as muted.
type SoundPlayer interface {
	Play(sound SoundType)
}
