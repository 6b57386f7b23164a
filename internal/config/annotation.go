package config

// AnnotationConfig holds settings for extra detail on the position report.
type AnnotationConfig struct {
	// Line analysis: repetitions, fifty-move count, material, captures
	AnalyzeLine bool

	// Hash annotations
	AddHashKey bool // Print the position's Zobrist key

	// Ply count annotations
	AddPlyCount bool // Print the number of plies replayed
}

// NewAnnotationConfig creates an AnnotationConfig with default values.
// All boolean fields default to false (Go zero value).
func NewAnnotationConfig() *AnnotationConfig {
	return &AnnotationConfig{}
}
