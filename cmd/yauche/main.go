// yauche is a chess rules engine driver: it replays moves, renders the
// board, lists legal moves and runs perft enumerations and verification
// suites.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/lgbarn/yauche-go/internal/config"
	"github.com/lgbarn/yauche-go/internal/engine"
	"github.com/lgbarn/yauche-go/internal/errors"
	"github.com/lgbarn/yauche-go/internal/hashing"
	"github.com/lgbarn/yauche-go/internal/output"
	"github.com/lgbarn/yauche-go/internal/processing"
	"github.com/lgbarn/yauche-go/internal/suite"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("yauche version %s\n", programVersion)
		os.Exit(0)
	}

	if *listSuite {
		for _, c := range suite.Cases() {
			fmt.Printf("%-12s depth %d  %d\n", c.Name, c.Depth, c.Nodes)
		}
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	closeLog := setupLogFile(cfg)
	defer closeLog()
	closeOut := setupOutputFile(cfg)
	defer closeOut()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "yauche: %v\n", err)
		closeOut()
		closeLog()
		os.Exit(1)
	}
}

// run executes everything cfg asks for and writes the reports.
func run(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	rules, err := cfg.EngineRules()
	if err != nil {
		return err
	}

	runID := output.NewRunID()
	cfg.Logf(config.Commentary, "run %s: rules %s, moves %v", runID, rules, cfg.Moves)

	if len(cfg.Suite) > 0 {
		return runSuite(ctx, cfg, rules, runID)
	}
	if cfg.ValidateOnly {
		return runValidate(cfg, rules, runID)
	}

	pos, analysis, err := replay(cfg, rules)
	if err != nil {
		return err
	}

	w := output.NewWriter(cfg.OutputFile, cfg.Output.JSONFormat)
	report := output.NewPositionReport(runID, pos, cfg.Output.ListMoves)
	if !cfg.Output.ShowBoard {
		report.Board = ""
	}
	if cfg.Annotation.AddHashKey {
		report.AddHashKey(pos)
	}
	if cfg.Annotation.AddPlyCount {
		report.AddPlyCount(pos)
	}
	if analysis != nil {
		report.Analysis = output.NewAnalysisReport(analysis)
	}
	if err := w.WritePosition(report); err != nil {
		return err
	}

	if cfg.Perft.Depth > 0 {
		perft, err := runPerft(ctx, cfg, pos, runID)
		if err != nil {
			return err
		}
		if err := w.WritePerft(perft); err != nil {
			return err
		}
	}
	return w.Close()
}

// runValidate reports whether the configured moves are legal and fails
// when they are not.
func runValidate(cfg *config.Config, rules engine.Rules, runID string) error {
	res := processing.ValidateLine(rules, cfg.Moves)
	w := output.NewWriter(cfg.OutputFile, cfg.Output.JSONFormat)
	if err := w.WriteValidation(output.NewValidationReport(runID, rules.String(), cfg.Moves, res)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	if !res.Valid {
		return fmt.Errorf("ply %d: %w", res.ErrorPly, errors.ErrIllegalMove)
	}
	cfg.Logf(config.Summary, "line of %d plies is legal", len(cfg.Moves))
	return nil
}

// replay plays the configured moves, analysing the line when asked to.
func replay(cfg *config.Config, rules engine.Rules) (*engine.Position, *processing.LineAnalysis, error) {
	if !cfg.Annotation.AnalyzeLine {
		pos, err := engine.ReplayMoves(rules, cfg.Moves)
		return pos, nil, err
	}
	analysis, err := processing.AnalyzeLine(rules, cfg.Moves)
	if err != nil {
		return nil, nil, err
	}
	cfg.Logf(config.Commentary, "line: %s", analysis.Summary())
	return analysis.Final, analysis, nil
}

// runPerft runs perft or divide on pos as configured.
func runPerft(ctx context.Context, cfg *config.Config, pos *engine.Position, runID string) (*output.PerftReport, error) {
	report := &output.PerftReport{
		RunID: runID,
		Rules: pos.Rules.String(),
		Moves: engine.MoveTexts(pos.Log.Moves()),
		Depth: cfg.Perft.Depth,
	}

	start := time.Now()
	var err error
	switch {
	case cfg.Perft.Divide:
		report.Divide, err = pos.Divide(ctx, cfg.Perft.Depth)
		for _, n := range report.Divide {
			report.Nodes += n
		}
	case cfg.Cache.Enabled():
		table := hashing.NewThreadSafePerftTable(cfg.Cache.Entries)
		report.Nodes, err = pos.PerftCached(ctx, cfg.Perft.Depth, cfg.Perft.Workers, table)
		report.CacheHits = table.Hits()
		cfg.Logf(config.Commentary, "table: %d entries, %d hits, full %t", table.Len(), table.Hits(), table.IsFull())
	case cfg.Perft.Workers > 1:
		report.Nodes, err = pos.PerftParallel(ctx, cfg.Perft.Depth, cfg.Perft.Workers)
	default:
		report.Nodes, err = pos.Perft(ctx, cfg.Perft.Depth)
	}
	report.Elapsed = time.Since(start)
	if err != nil {
		return nil, err
	}

	cfg.Logf(config.Summary, "perft(%d) = %d in %s", report.Depth, report.Nodes, report.Elapsed)
	return report, nil
}

// runSuite runs the selected verification cases and fails if any case does.
func runSuite(ctx context.Context, cfg *config.Config, rules engine.Rules, runID string) error {
	cases, err := suite.Select(cfg.Suite)
	if err != nil {
		return err
	}

	start := time.Now()
	results := suite.Run(ctx, rules, cases, cfg.Perft.Workers)
	report := &output.SuiteReport{
		RunID:   runID,
		Rules:   rules.String(),
		Results: results,
		Elapsed: time.Since(start),
	}
	for _, res := range results {
		cfg.Logf(config.Commentary, "case %s: %d nodes in %s", res.Case.Name, res.Nodes, res.Elapsed)
	}

	w := output.NewWriter(cfg.OutputFile, cfg.Output.JSONFormat)
	if err := w.WriteSuite(report); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	failed := suite.Failed(results)
	cfg.Logf(config.Summary, "suite: %d/%d passed", len(results)-len(failed), len(results))
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d suite cases failed", len(failed), len(results))
	}
	return nil
}

// setupLogFile points the log at the -l file, if given. The returned
// function closes it.
func setupLogFile(cfg *config.Config) func() {
	if *logFile == "" {
		return func() {}
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
	return closeOnce(file)
}

// setupOutputFile points the output at the -o file, if given.
func setupOutputFile(cfg *config.Config) func() {
	if *outputFile == "" {
		return func() {}
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
	return closeOnce(file)
}

func closeOnce(c io.Closer) func() {
	closed := false
	return func() {
		if !closed {
			closed = true
			c.Close() //nolint:errcheck // best effort on exit
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "yauche version %s\n\n", programVersion)
	fmt.Fprintf(os.Stderr, "Usage: yauche [options]\n\n")
	fmt.Fprintf(os.Stderr, "Examples:\n")
	fmt.Fprintf(os.Stderr, "  yauche -moves \"e2e4 e7e5\" -list\n")
	fmt.Fprintf(os.Stderr, "  yauche -depth 5 -parallel 8\n")
	fmt.Fprintf(os.Stderr, "  yauche -depth 3 -divide -moves e2e4\n")
	fmt.Fprintf(os.Stderr, "  yauche -depth 6 -hash 1000000\n")
	fmt.Fprintf(os.Stderr, "  yauche -moves \"g1f3 g8f6 f3g1 f6g8\" -analyze -key\n")
	fmt.Fprintf(os.Stderr, "  yauche -validate -moves \"e2e4 e7e5 e1e2\"\n")
	fmt.Fprintf(os.Stderr, "  yauche -suite all -J\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
