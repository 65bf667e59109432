package component

// VisualFlag is a bitmask of presentation hints owned by the simulation
type VisualFlag uint8

const (
	FlagPulsing VisualFlag = 1 << iota
	FlagSupercritical
)

// VisualComponent carries the presentation flags for an anomaly.
// The renderer only reads it; systems set and clear flags.
type VisualComponent struct {
	Flags VisualFlag
}

// Has reports whether all bits of flag are set
func (v VisualComponent) Has(flag VisualFlag) bool {
	return v.Flags&flag == flag
}
