// Package output formats position, perft and suite reports as text or JSON.
package output

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/yauche-go/internal/engine"
	"github.com/lgbarn/yauche-go/internal/hashing"
	"github.com/lgbarn/yauche-go/internal/processing"
	"github.com/lgbarn/yauche-go/internal/suite"
)

// NewRunID returns a fresh identifier stamped on every report of one run.
func NewRunID() string {
	return uuid.NewString()
}

// PositionReport describes the position after the replayed moves.
type PositionReport struct {
	RunID      string
	Rules      string
	Moves      []string
	ToMove     string
	Board      string
	InCheck    bool
	Checkmate  bool
	Stalemate  bool
	LegalMoves []string

	// Optional annotations; zero values are not shown.
	Key      string
	PlyCount int
	Analysis *AnalysisReport
}

// AnalysisReport summarises a line analysis.
type AnalysisReport struct {
	Captures             int
	Checks               int
	HalfmoveClock        int
	DistinctPositions    int
	MostOccurrences      int
	Repetition           bool
	FiftyMoveRule        bool
	InsufficientMaterial bool
	Underpromotion       bool
	Summary              string
}

// NewAnalysisReport converts a line analysis for output.
func NewAnalysisReport(a *processing.LineAnalysis) *AnalysisReport {
	return &AnalysisReport{
		Captures:             a.Captures,
		Checks:               a.Checks,
		HalfmoveClock:        a.HalfmoveClock,
		DistinctPositions:    a.DistinctPositions,
		MostOccurrences:      a.MostOccurrences,
		Repetition:           a.RepetitionDetected(),
		FiftyMoveRule:        a.FiftyMoveTriggered(),
		InsufficientMaterial: a.HasInsufficientMaterial,
		Underpromotion:       a.UnderpromotionFound(),
		Summary:              a.Summary(),
	}
}

// NewPositionReport builds a report for pos. Legal moves are only listed
// when withMoves is set.
func NewPositionReport(runID string, pos *engine.Position, withMoves bool) *PositionReport {
	r := &PositionReport{
		RunID:     runID,
		Rules:     pos.Rules.String(),
		Moves:     engine.MoveTexts(pos.Log.Moves()),
		ToMove:    pos.ToMove.String(),
		Board:     pos.Board.String(),
		InCheck:   pos.InCheck(),
		Checkmate: engine.IsCheckmate(pos),
		Stalemate: engine.IsStalemate(pos),
	}
	if withMoves {
		r.LegalMoves = engine.MoveTexts(pos.LegalMoves())
		slices.Sort(r.LegalMoves)
	}
	return r
}

// AddHashKey stamps the position's Zobrist key on the report.
func (r *PositionReport) AddHashKey(pos *engine.Position) {
	r.Key = fmt.Sprintf("%016x", hashing.Key(pos.Board, pos.ToMove, pos.Log))
}

// AddPlyCount stamps the number of plies replayed.
func (r *PositionReport) AddPlyCount(pos *engine.Position) {
	r.PlyCount = pos.Log.Len()
}

// ValidationReport says whether a move line is legal from the start.
type ValidationReport struct {
	RunID    string
	Rules    string
	Moves    []string
	Valid    bool
	ErrorPly int // 1-based ply of the first illegal move, 0 when valid
	Error    string
}

// NewValidationReport converts a validation result for output.
func NewValidationReport(runID, rules string, moves []string, res *processing.ValidationResult) *ValidationReport {
	return &ValidationReport{
		RunID:    runID,
		Rules:    rules,
		Moves:    moves,
		Valid:    res.Valid,
		ErrorPly: res.ErrorPly,
		Error:    res.ErrorMsg,
	}
}

// PerftReport is the result of a perft or divide run.
type PerftReport struct {
	RunID   string
	Rules   string
	Moves   []string
	Depth   int
	Nodes   uint64
	Divide  map[string]uint64
	Elapsed time.Duration

	// CacheHits counts transposition table hits; 0 without a table.
	CacheHits int
}

// NodesPerSecond returns the enumeration rate, or 0 for an instant run.
func (r *PerftReport) NodesPerSecond() uint64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return uint64(float64(r.Nodes) / r.Elapsed.Seconds())
}

// DivideMoves returns the divide keys in sorted order.
func (r *PerftReport) DivideMoves() []string {
	keys := maps.Keys(r.Divide)
	slices.Sort(keys)
	return keys
}

// SuiteReport collects the results of a suite run.
type SuiteReport struct {
	RunID   string
	Rules   string
	Results []suite.Result
	Elapsed time.Duration
}

// Passed reports whether every case passed.
func (r *SuiteReport) Passed() bool {
	return len(suite.Failed(r.Results)) == 0
}
