package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/lgbarn/yauche-go/internal/chess"
	"github.com/lgbarn/yauche-go/internal/errors"
)

// Position bundles a board with its move log, the side to move and the
// rule set, so callers can play and unplay moves without threading the
// pieces through every call.
type Position struct {
	Board  *chess.Board
	Log    *chess.MoveLog
	ToMove chess.Colour
	Rules  Rules
}

// NewPosition creates the standard starting position with White to move.
func NewPosition(rules Rules) *Position {
	return &Position{
		Board:  chess.NewInitialBoard(),
		Log:    chess.NewMoveLog(64),
		ToMove: chess.White,
		Rules:  rules,
	}
}

// Clone returns an independent copy of the position.
func (p *Position) Clone() *Position {
	return &Position{
		Board:  p.Board.Copy(),
		Log:    p.Log.Copy(),
		ToMove: p.ToMove,
		Rules:  p.Rules,
	}
}

// PseudoLegalMoves returns the side to move's pseudo-legal moves.
func (p *Position) PseudoLegalMoves() []chess.Move {
	return PseudoLegalMoves(p.Board, p.ToMove, p.Log)
}

// LegalMoves returns the side to move's legal moves.
func (p *Position) LegalMoves() []chess.Move {
	return p.Rules.LegalMoves(p.Board, p.ToMove, p.Log)
}

// Apply makes a move for the side to move without a legality check.
func (p *Position) Apply(m chess.Move) error {
	if piece := p.Board.Get(m.From); !piece.IsEmpty() && piece.Colour != p.ToMove {
		return fmt.Errorf("apply %s: %s to move: %w", m, p.ToMove, errors.ErrIllegalMove)
	}
	if err := ApplyMove(p.Board, m, p.Log); err != nil {
		return err
	}
	p.ToMove = p.ToMove.Opposite()
	return nil
}

// Play looks the coordinate text up among the legal moves and makes it.
func (p *Position) Play(text string) error {
	m, err := FindMove(p.LegalMoves(), text)
	if err != nil {
		return err
	}
	return p.Apply(m)
}

// Undo takes back the last move.
func (p *Position) Undo() (chess.Move, error) {
	m, err := UndoMove(p.Board, p.Log)
	if err != nil {
		return m, err
	}
	p.ToMove = p.ToMove.Opposite()
	return m, nil
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	return p.Rules.KingAttacked(p.Board, p.ToMove)
}

// Perft counts leaf nodes below the position.
func (p *Position) Perft(ctx context.Context, depth int) (uint64, error) {
	return p.Rules.Perft(ctx, p.Board, p.Log, p.ToMove, depth)
}

// Divide counts leaf nodes below each legal move of the position.
func (p *Position) Divide(ctx context.Context, depth int) (map[string]uint64, error) {
	return p.Rules.Divide(ctx, p.Board, p.Log, p.ToMove, depth)
}

// PerftParallel is Perft spread over the given number of goroutines.
func (p *Position) PerftParallel(ctx context.Context, depth, workers int) (uint64, error) {
	return p.Rules.PerftParallel(ctx, p.Board, p.Log, p.ToMove, depth, workers)
}

// PerftCached is PerftParallel with a shared node count table.
func (p *Position) PerftCached(ctx context.Context, depth, workers int, cache NodeCache) (uint64, error) {
	return p.Rules.PerftCached(ctx, p.Board, p.Log, p.ToMove, depth, workers, cache)
}

// FindMove returns the move whose coordinate text matches, ignoring case
// and surrounding space. Promotions must name the piece ("e7e8q").
func FindMove(moves []chess.Move, text string) (chess.Move, error) {
	want := strings.ToLower(strings.TrimSpace(text))
	for _, m := range moves {
		if m.String() == want {
			return m, nil
		}
	}
	return chess.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: text}
}

// ReplayMoves plays a list of coordinate moves from the starting position.
// A failure reports the 1-based ply of the offending move.
func ReplayMoves(rules Rules, texts []string) (*Position, error) {
	pos := NewPosition(rules)
	for i, text := range texts {
		if err := pos.Play(text); err != nil {
			return pos, &errors.MoveError{Err: unwrapMoveError(err), Ply: i + 1, MoveText: text}
		}
	}
	return pos, nil
}

// unwrapMoveError strips a MoveError so replay does not nest two of them.
func unwrapMoveError(err error) error {
	if me, ok := err.(*errors.MoveError); ok {
		return me.Err
	}
	return err
}
