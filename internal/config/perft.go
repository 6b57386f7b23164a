package config

import "runtime"

// PerftConfig holds settings for move tree enumeration.
type PerftConfig struct {
	// Depth is the number of plies to enumerate (0 = no perft run).
	Depth int

	// Divide reports the count below each root move.
	Divide bool

	// Workers bounds the goroutines used by parallel perft and the suite.
	// 1 runs everything serially.
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}
