// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"
	"strings"

	"github.com/lgbarn/yauche-go/internal/config"
	"github.com/lgbarn/yauche-go/internal/engine"
)

var (
	// Position options
	movesFlag = flag.String("moves", "", "Coordinate moves to replay from the start, e.g. \"e2e4 e7e5\"")
	rulesFlag = flag.String("rules", engine.StandardRulesName, "Rule set: standard or reference")
	validate  = flag.Bool("validate", false, "Only check that the moves form a legal line")

	// Perft options
	depth    = flag.Int("depth", 0, "Perft depth (0 = no perft)")
	divide   = flag.Bool("divide", false, "Report perft counts per root move")
	parallel = flag.Int("parallel", runtime.NumCPU(), "Worker goroutines for perft and suite runs")
	timeout  = flag.Duration("timeout", 0, "Abort perft or suite after this long (0 = no limit)")
	hashSize = flag.Int("hash", 0, "Perft transposition table entries (0 = no table)")

	// Suite options
	suiteFlag = flag.String("suite", "", "Comma-separated perft suite cases to verify, or \"all\"")
	listSuite = flag.Bool("listsuite", false, "List the perft suite cases and exit")

	// Output options
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	noBoard    = flag.Bool("noboard", false, "Don't print the board")
	listMoves  = flag.Bool("list", false, "List the legal moves of the position")
	outputFile = flag.String("o", "", "Output file (default: stdout)")

	// Annotation options
	analyze  = flag.Bool("analyze", false, "Analyse the replayed line: captures, checks, repetitions, fifty-move count")
	addKey   = flag.Bool("key", false, "Print the position's Zobrist key")
	addPlies = flag.Bool("plycount", false, "Print the number of plies replayed")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	verbosity = flag.Int("v", config.Summary, "Verbosity: 0 silent, 1 summary, 2 commentary")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed flags into cfg.
func applyFlags(cfg *config.Config) {
	cfg.Rules = *rulesFlag
	cfg.Moves = engine.SplitMoves(*movesFlag)
	cfg.ValidateOnly = *validate

	cfg.Perft.Depth = *depth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *parallel
	cfg.Cache.Entries = *hashSize

	if *suiteFlag != "" {
		cfg.Suite = strings.Split(*suiteFlag, ",")
	}

	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.ListMoves = *listMoves

	cfg.Annotation.AnalyzeLine = *analyze
	cfg.Annotation.AddHashKey = *addKey
	cfg.Annotation.AddPlyCount = *addPlies

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Silent
	}
}
