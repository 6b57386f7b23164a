package config

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/lgbarn/yauche-go/internal/engine"
	"github.com/lgbarn/yauche-go/internal/errors"
	"github.com/lgbarn/yauche-go/internal/testutil"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.JSONFormat {
		t.Error("JSONFormat should be false by default")
	}
	if !cfg.ShowBoard {
		t.Error("ShowBoard should be true by default")
	}
	if cfg.ListMoves {
		t.Error("ListMoves should be false by default")
	}
}

// TestPerftConfig_Defaults verifies PerftConfig has sensible defaults
func TestPerftConfig_Defaults(t *testing.T) {
	cfg := NewPerftConfig()

	if cfg.Depth != 0 {
		t.Errorf("Depth = %d, want 0", cfg.Depth)
	}
	if cfg.Divide {
		t.Error("Divide should be false by default")
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %d, want %d", cfg.Workers, runtime.NumCPU())
	}
}

// TestCacheConfig_Defaults verifies the table is off by default
func TestCacheConfig_Defaults(t *testing.T) {
	cfg := NewCacheConfig()

	if cfg.Enabled() {
		t.Error("cache should be disabled by default")
	}
	cfg.Entries = 1024
	if !cfg.Enabled() {
		t.Error("cache should be enabled with entries set")
	}
}

// TestAnnotationConfig_Defaults verifies AnnotationConfig has all options off
func TestAnnotationConfig_Defaults(t *testing.T) {
	testutil.AssertEqual(t, *NewAnnotationConfig(), AnnotationConfig{})
}

func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	testutil.AssertEqual(t, cfg.Rules, engine.StandardRulesName)
	testutil.AssertEqual(t, cfg.Verbosity, Summary)
	testutil.AssertNoError(t, cfg.Validate())

	rules, err := cfg.EngineRules()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rules, engine.StandardRules())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"reference rules", func(c *Config) { c.Rules = "reference" }, false},
		{"unknown rules", func(c *Config) { c.Rules = "atomic" }, true},
		{"negative depth", func(c *Config) { c.Perft.Depth = -1 }, true},
		{"divide without depth", func(c *Config) { c.Perft.Divide = true }, true},
		{"divide with depth", func(c *Config) { c.Perft.Divide = true; c.Perft.Depth = 2 }, false},
		{"zero workers", func(c *Config) { c.Perft.Workers = 0 }, true},
		{"negative hash", func(c *Config) { c.Cache.Entries = -5 }, true},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			} else {
				testutil.AssertNoError(t, err)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

func TestConfig_Logf(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		level     int
		want      string
	}{
		{"silent drops summary", Silent, Summary, ""},
		{"summary shows summary", Summary, Summary, "perft(3) = 8902\n"},
		{"summary drops commentary", Summary, Commentary, ""},
		{"commentary shows commentary", Commentary, Commentary, "perft(3) = 8902\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log bytes.Buffer
			cfg := NewConfigBuilder().WithLog(&log).WithVerbosity(tt.verbosity).Build()
			cfg.Logf(tt.level, "perft(%d) = %d", 3, 8902)
			testutil.AssertEqual(t, log.String(), tt.want)
		})
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	var out, log bytes.Buffer
	cfg := NewConfigBuilder().
		WithRules("reference").
		WithMoves("e2e4", "e7e5").
		WithDepth(3).
		WithDivide(true).
		WithWorkers(2).
		WithCache(4096).
		WithLineAnalysis(true).
		WithHashKey(true).
		WithPlyCount(true).
		WithValidateOnly(true).
		WithSuite("initial-1").
		WithJSONOutput(true).
		WithBoard(false).
		WithMoveList(true).
		WithOutput(&out).
		WithLog(&log).
		WithVerbosity(Commentary).
		Build()

	testutil.AssertEqual(t, cfg.Rules, "reference")
	testutil.AssertEqual(t, cfg.Moves, []string{"e2e4", "e7e5"})
	testutil.AssertEqual(t, *cfg.Perft, PerftConfig{Depth: 3, Divide: true, Workers: 2})
	testutil.AssertEqual(t, cfg.Cache.Entries, 4096)
	testutil.AssertEqual(t, *cfg.Annotation, AnnotationConfig{AnalyzeLine: true, AddHashKey: true, AddPlyCount: true})
	testutil.AssertTrue(t, cfg.ValidateOnly, "validate only")
	testutil.AssertEqual(t, cfg.Suite, []string{"initial-1"})
	testutil.AssertEqual(t, *cfg.Output, OutputConfig{JSONFormat: true, ShowBoard: false, ListMoves: true})
	testutil.AssertEqual(t, cfg.Verbosity, Commentary)
	testutil.AssertTrue(t, cfg.OutputFile == &out, "output writer")
	testutil.AssertTrue(t, cfg.LogFile == &log, "log writer")
	testutil.AssertNoError(t, cfg.Validate())
}
