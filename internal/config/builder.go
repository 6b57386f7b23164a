package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithRules sets the rule set name.
func (b *ConfigBuilder) WithRules(name string) *ConfigBuilder {
	b.cfg.Rules = name
	return b
}

// WithMoves sets the moves replayed before reporting.
func (b *ConfigBuilder) WithMoves(moves ...string) *ConfigBuilder {
	b.cfg.Moves = append([]string(nil), moves...)
	return b
}

// WithValidateOnly switches to line validation.
func (b *ConfigBuilder) WithValidateOnly(enabled bool) *ConfigBuilder {
	b.cfg.ValidateOnly = enabled
	return b
}

// WithDepth sets the perft depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	return b
}

// WithDivide enables per-move perft output.
func (b *ConfigBuilder) WithDivide(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Divide = enabled
	return b
}

// WithWorkers sets the number of worker goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithCache sets the perft transposition table size; 0 disables it.
func (b *ConfigBuilder) WithCache(entries int) *ConfigBuilder {
	b.cfg.Cache.Entries = entries
	return b
}

// WithLineAnalysis enables the line analysis report.
func (b *ConfigBuilder) WithLineAnalysis(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AnalyzeLine = enabled
	return b
}

// WithHashKey enables printing the position key.
func (b *ConfigBuilder) WithHashKey(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddHashKey = enabled
	return b
}

// WithSuite selects perft suite cases by name.
func (b *ConfigBuilder) WithSuite(names ...string) *ConfigBuilder {
	b.cfg.Suite = append([]string(nil), names...)
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithBoard controls whether the board is printed.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithMoveList controls whether legal moves are listed.
func (b *ConfigBuilder) WithMoveList(enabled bool) *ConfigBuilder {
	b.cfg.Output.ListMoves = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithPlyCount enables printing the number of plies replayed.
func (b *ConfigBuilder) WithPlyCount(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddPlyCount = enabled
	return b
}
