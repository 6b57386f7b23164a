// Package processing provides move line analysis and validation logic.
package processing

import (
	stderrors "errors"
	"fmt"

	"github.com/lgbarn/yauche-go/internal/chess"
	"github.com/lgbarn/yauche-go/internal/engine"
	"github.com/lgbarn/yauche-go/internal/errors"
	"github.com/lgbarn/yauche-go/internal/hashing"
)

// Draw rule thresholds in plies and occurrences.
const (
	fiftyMovePlies   = 100
	seventyFivePlies = 150
	threefold        = 3
	fivefold         = 5
)

// LineAnalysis holds analysis results from replaying a move line.
type LineAnalysis struct {
	Final     *engine.Position
	Plies     int
	Captures  int
	Checks    int
	Positions []uint64 // Zobrist keys, starting position first

	// HalfmoveClock counts plies since the last capture or pawn move.
	HalfmoveClock int

	// DistinctPositions counts the different positions met, and
	// MostOccurrences how often the most repeated one occurred.
	DistinctPositions int
	MostOccurrences   int

	HasFiftyMoveRule        bool
	Has75MoveRule           bool
	HasRepetition           bool
	Has5FoldRepetition      bool
	HasUnderpromotion       bool
	HasInsufficientMaterial bool
	Checkmate               bool
	Stalemate               bool
}

// FiftyMoveTriggered returns true if the line reached the fifty-move rule.
func (la *LineAnalysis) FiftyMoveTriggered() bool {
	return la.HasFiftyMoveRule
}

// RepetitionDetected returns true if the line has a threefold repetition.
func (la *LineAnalysis) RepetitionDetected() bool {
	return la.HasRepetition
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (la *LineAnalysis) UnderpromotionFound() bool {
	return la.HasUnderpromotion
}

// ValidationResult holds the result of line validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int
	ErrorMsg string
}

// AnalyzeLine replays coordinate moves from the starting position and
// analyses the line. On an illegal move the analysis of the plies played so
// far is returned with a *errors.MoveError.
func AnalyzeLine(rules engine.Rules, texts []string) (*LineAnalysis, error) {
	pos := engine.NewPosition(rules)
	analysis := &LineAnalysis{Final: pos}
	reps := hashing.NewRepetitionTracker()

	key := hashing.Key(pos.Board, pos.ToMove, pos.Log)
	analysis.Positions = append(analysis.Positions, key)
	reps.Add(key)

	for i, text := range texts {
		if err := pos.Play(text); err != nil {
			analysis.finish(reps)
			return analysis, &errors.MoveError{Err: errors.ErrIllegalMove, Ply: i + 1, MoveText: text}
		}
		analysis.Plies++

		m, _ := pos.Log.Last()
		if m.IsCapture() {
			analysis.Captures++
		}
		if m.IsCapture() || m.Piece.Kind == chess.Pawn {
			analysis.HalfmoveClock = 0
		} else {
			analysis.HalfmoveClock++
		}
		if analysis.HalfmoveClock >= fiftyMovePlies {
			analysis.HasFiftyMoveRule = true
		}
		if analysis.HalfmoveClock >= seventyFivePlies {
			analysis.Has75MoveRule = true
		}
		if m.IsPromotion() && m.Promotion.Kind != chess.Queen {
			analysis.HasUnderpromotion = true
		}
		if pos.InCheck() {
			analysis.Checks++
		}

		key = hashing.Key(pos.Board, pos.ToMove, pos.Log)
		analysis.Positions = append(analysis.Positions, key)
		n := reps.Add(key)
		if n >= threefold {
			analysis.HasRepetition = true
		}
		if n >= fivefold {
			analysis.Has5FoldRepetition = true
		}
	}

	analysis.finish(reps)
	return analysis, nil
}

// finish records the repetition counts and the state of the final position.
func (la *LineAnalysis) finish(reps *hashing.RepetitionTracker) {
	la.DistinctPositions = reps.Unique()
	la.MostOccurrences = reps.Max()
	la.HasInsufficientMaterial = engine.HasInsufficientMaterial(la.Final.Board)
	la.Checkmate = engine.IsCheckmate(la.Final)
	la.Stalemate = engine.IsStalemate(la.Final)
}

// ValidateLine checks that every move in the line is legal.
func ValidateLine(rules engine.Rules, texts []string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if _, err := engine.ReplayMoves(rules, texts); err != nil {
		result.Valid = false
		result.ErrorMsg = err.Error()
		var me *errors.MoveError
		if stderrors.As(err, &me) {
			result.ErrorPly = me.Ply
		}
		return result
	}
	return result
}

// Summary returns a one-line description of the draw claims and final
// state found on the line.
func (la *LineAnalysis) Summary() string {
	var claims []string
	switch {
	case la.Checkmate:
		claims = append(claims, "checkmate")
	case la.Stalemate:
		claims = append(claims, "stalemate")
	}
	if la.Has5FoldRepetition {
		claims = append(claims, "fivefold repetition")
	} else if la.HasRepetition {
		claims = append(claims, "threefold repetition")
	}
	if la.Has75MoveRule {
		claims = append(claims, "75-move rule")
	} else if la.HasFiftyMoveRule {
		claims = append(claims, "50-move rule")
	}
	if la.HasInsufficientMaterial {
		claims = append(claims, "insufficient material")
	}
	if len(claims) == 0 {
		return fmt.Sprintf("%d plies, %d captures, %d checks", la.Plies, la.Captures, la.Checks)
	}
	return fmt.Sprintf("%d plies, %d captures, %d checks: %v", la.Plies, la.Captures, la.Checks, claims)
}
