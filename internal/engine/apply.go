package engine

import (
	"fmt"

	"github.com/lgbarn/yauche-go/internal/chess"
	"github.com/lgbarn/yauche-go/internal/errors"
)

// ApplyMove applies a move to the board and appends it to the log.
//
// The move's Piece, Captured and castle rook are refreshed from the board
// before the move is logged, so a hand-built move only needs From, To and,
// for a promotion or en passant, its special field. A king moving two files
// is a castle. Moves whose shape does not fit the board fail with
// ErrMalformedMove and leave board and log untouched. The logged copy is
// what UndoMove reverses.
func ApplyMove(board *chess.Board, m chess.Move, log *chess.MoveLog) error {
	if log == nil {
		return fmt.Errorf("apply %s: nil move log: %w", m, errors.ErrMalformedMove)
	}
	m, err := completeMove(board, m)
	if err != nil {
		return err
	}

	switch {
	case m.IsPromotion():
		board.Clear(m.From)
		board.Set(m.To, m.Promotion.WithMoved(true))

	case m.IsEnPassant():
		board.Clear(m.EnPassant)
		board.Set(m.To, m.Piece.WithMoved(true))
		board.Clear(m.From)

	case m.IsCastle():
		rookFrom, rookTo := m.CastleRookSquares()
		board.Set(m.To, m.Piece.WithMoved(true))
		board.Clear(m.From)
		board.Set(rookTo, m.Castle.Rook.WithMoved(true))
		board.Clear(rookFrom)

	default:
		// The moved flag travels with the piece to its new square.
		board.Set(m.To, m.Piece.WithMoved(true))
		board.Clear(m.From)
	}

	log.Push(m)
	return nil
}

// UndoMove pops the last move from the log and exactly reverses it,
// returning the move that was undone.
func UndoMove(board *chess.Board, log *chess.MoveLog) (chess.Move, error) {
	if log == nil {
		return chess.Move{}, errors.ErrEmptyLog
	}
	m, ok := log.Pop()
	if !ok {
		return chess.Move{}, errors.ErrEmptyLog
	}

	// m.Piece carries the mover's flags from before the move, which
	// restores first-move eligibility.
	switch {
	case m.IsPromotion():
		board.Set(m.From, m.Piece)
		board.Set(m.To, m.Captured)

	case m.IsEnPassant():
		board.Set(m.From, m.Piece)
		board.Clear(m.To)
		board.Set(m.EnPassant, m.Captured)

	case m.IsCastle():
		rookFrom, rookTo := m.CastleRookSquares()
		board.Set(m.From, m.Piece)
		board.Clear(m.To)
		board.Set(rookFrom, m.Castle.Rook)
		board.Clear(rookTo)

	default:
		board.Set(m.From, m.Piece)
		board.Set(m.To, m.Captured)
	}

	return m, nil
}

// completeMove checks the move's shape against the board and fills in the
// moving and captured pieces. A king moving two files along its rank is a
// castle whether or not the Castle field was filled in.
func completeMove(board *chess.Board, m chess.Move) (chess.Move, error) {
	malformed := func(reason string) (chess.Move, error) {
		return chess.Move{}, fmt.Errorf("apply %s: %s: %w", m, reason, errors.ErrMalformedMove)
	}

	if !m.From.OnBoard() || !m.To.OnBoard() || m.From == m.To {
		return malformed("squares not on board")
	}
	if m.SpecialCount() > 1 {
		return malformed("more than one of promotion, en passant and castle set")
	}

	mover := board.Get(m.From)
	if mover.IsEmpty() {
		return malformed("no piece on source square")
	}
	m.Piece = mover

	castle := m.IsCastle() || m.Castle.KingSide || isKingDoubleStep(mover, m)
	if castle && (m.IsPromotion() || m.IsEnPassant()) {
		return malformed("more than one of promotion, en passant and castle set")
	}

	switch {
	case castle:
		return completeCastle(board, m)

	case m.IsEnPassant():
		if mover.Kind != chess.Pawn || !m.EnPassant.OnBoard() {
			return malformed("en passant by a non-pawn")
		}
		m.Captured = board.Get(m.EnPassant)
		if !m.Captured.Is(mover.Colour.Opposite(), chess.Pawn) || !board.Get(m.To).IsEmpty() {
			return malformed("en passant squares inconsistent")
		}

	default:
		m.Captured = board.Get(m.To)
		if !m.Captured.IsEmpty() && m.Captured.Colour == mover.Colour {
			return malformed("capture of own piece")
		}
		lastRank := mover.Kind == chess.Pawn && m.To.Rank() == chess.PromotionRank(mover.Colour)
		switch {
		case m.IsPromotion() && mover.Kind != chess.Pawn:
			return malformed("promotion of a non-pawn")
		case m.IsPromotion() && !lastRank:
			return malformed("promotion short of the last rank")
		case m.IsPromotion() && !isPromotionKind(m.Promotion.Kind):
			return malformed("promotion to " + m.Promotion.Kind.String())
		case !m.IsPromotion() && lastRank:
			return malformed("pawn reaches the last rank without promoting")
		}
		if m.IsPromotion() {
			m.Promotion.Colour = mover.Colour
		}
	}

	return m, nil
}

// completeCastle fills in the rook for a castle, working out the side from
// the king's target square.
func completeCastle(board *chess.Board, m chess.Move) (chess.Move, error) {
	malformed := func(reason string) (chess.Move, error) {
		return chess.Move{}, fmt.Errorf("apply %s: %s: %w", m, reason, errors.ErrMalformedMove)
	}

	if m.Piece.Kind != chess.King {
		return malformed("castle without a king")
	}
	kingSide := m.To == chess.CastleTarget(m.From, true)
	if !kingSide && m.To != chess.CastleTarget(m.From, false) {
		return malformed("castle target is not two files from the king")
	}
	if (m.IsCastle() || m.Castle.KingSide) && m.Castle.KingSide != kingSide {
		return malformed("castle side does not match the target")
	}
	m.Castle.KingSide = kingSide

	rookFrom, _ := m.CastleRookSquares()
	rook := board.Get(rookFrom)
	if !rook.Is(m.Piece.Colour, chess.Rook) {
		return malformed("castle without a rook")
	}
	step := chess.East
	if !kingSide {
		step = chess.West
	}
	if !pathEmpty(board, m.From, rookFrom, step) {
		return malformed("castle squares occupied")
	}
	m.Castle.Rook = rook
	m.Captured = chess.NoPiece
	return m, nil
}

// isKingDoubleStep reports a king moving two files along its rank.
func isKingDoubleStep(mover chess.Piece, m chess.Move) bool {
	if mover.Kind != chess.King || m.From.Rank() != m.To.Rank() {
		return false
	}
	d := m.To.File() - m.From.File()
	return d == 2 || d == -2
}

func isPromotionKind(kind chess.Kind) bool {
	for _, k := range chess.PromotionKinds {
		if k == kind {
			return true
		}
	}
	return false
}
