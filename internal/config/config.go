// Package config provides configuration for the yauche command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/yauche-go/internal/engine"
	"github.com/lgbarn/yauche-go/internal/errors"
)

// Verbosity levels for the log writer.
const (
	Silent     = 0 // Nothing on the log
	Summary    = 1 // One line per run
	Commentary = 2 // Running commentary per move or case
)

// Config holds all program configuration.
type Config struct {
	// Rules names the rule set: "standard" or "reference".
	Rules string

	// Moves is the coordinate move list replayed before anything else.
	Moves []string

	// ValidateOnly reports whether Moves is a legal line and does nothing
	// else.
	ValidateOnly bool

	// Perft settings.
	Perft *PerftConfig

	// Perft transposition table settings.
	Cache *CacheConfig

	// Output settings.
	Output *OutputConfig

	// Annotation settings for the position report.
	Annotation *AnnotationConfig

	// Suite lists the perft suite cases to run. Empty means no suite run;
	// "all" selects every case.
	Suite []string

	// Verbosity: 0=nothing, 1=summary, 2=running commentary.
	Verbosity int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rules:      engine.StandardRulesName,
		Perft:      NewPerftConfig(),
		Cache:      NewCacheConfig(),
		Output:     NewOutputConfig(),
		Annotation: NewAnnotationConfig(),
		Verbosity:  Summary,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// EngineRules resolves the configured rule set.
func (c *Config) EngineRules() (engine.Rules, error) {
	return engine.ParseRules(c.Rules)
}

// Validate checks the configuration for values the engine cannot use.
func (c *Config) Validate() error {
	if _, err := c.EngineRules(); err != nil {
		return err
	}
	if c.Perft.Depth < 0 {
		return fmt.Errorf("depth %d is negative: %w", c.Perft.Depth, errors.ErrInvalidConfig)
	}
	if c.Perft.Divide && c.Perft.Depth < 1 {
		return fmt.Errorf("divide needs depth of at least 1: %w", errors.ErrInvalidConfig)
	}
	if c.Perft.Workers < 1 {
		return fmt.Errorf("workers %d must be at least 1: %w", c.Perft.Workers, errors.ErrInvalidConfig)
	}
	if c.Cache.Entries < 0 {
		return fmt.Errorf("hash entries %d is negative: %w", c.Cache.Entries, errors.ErrInvalidConfig)
	}
	if c.Verbosity < Silent {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// SetOutput sets the output stream for reports.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}
