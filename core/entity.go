package core

// Entity is a unique identifier for a simulated instance
type Entity uint64
