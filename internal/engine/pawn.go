package engine

import "github.com/lgbarn/yauche-go/internal/chess"

// appendPawnMoves generates pushes, double steps, diagonal captures,
// promotions and en passant for one pawn.
func appendPawnMoves(dst []chess.Move, board *chess.Board, from chess.Square, pawn chess.Piece, log *chess.MoveLog) []chess.Move {
	forward := pawn.Colour.Forward()

	one := from.Add(forward)
	if one.OnBoard() && board.Get(one).IsEmpty() {
		dst = appendPawnMove(dst, chess.NewMove(from, one, pawn, chess.NoPiece))

		// Double step needs both cells empty and an unmoved pawn.
		two := one.Add(forward)
		if !pawn.Moved && two.OnBoard() && board.Get(two).IsEmpty() {
			dst = append(dst, chess.NewMove(from, two, pawn, chess.NoPiece))
		}
	}

	for _, side := range [2]chess.Direction{chess.East, chess.West} {
		to := one.Add(side)
		if !to.OnBoard() {
			continue
		}
		target := board.Get(to)
		if !target.IsEmpty() && target.Colour != pawn.Colour {
			dst = appendPawnMove(dst, chess.NewMove(from, to, pawn, target))
		}
	}

	if m, ok := enPassantCapture(board, from, pawn, log); ok {
		dst = append(dst, m)
	}
	return dst
}

// appendPawnMove emits the move, or its four promotion variants when it
// lands on the far rank.
func appendPawnMove(dst []chess.Move, m chess.Move) []chess.Move {
	if m.To.Rank() != chess.PromotionRank(m.Piece.Colour) {
		return append(dst, m)
	}
	for _, kind := range chess.PromotionKinds {
		dst = append(dst, m.WithPromotion(kind))
	}
	return dst
}

// enPassantCapture returns the en passant capture available to the pawn, if
// the log's last move was an enemy double step landing beside it. The
// captured pawn is read from its landing square, not from the empty target.
func enPassantCapture(board *chess.Board, from chess.Square, pawn chess.Piece, log *chess.MoveLog) (chess.Move, bool) {
	last, ok := log.Last()
	if !ok || !last.IsDoublePawnStep() || last.Piece.Colour == pawn.Colour {
		return chess.Move{}, false
	}
	if last.To != from.Add(chess.East) && last.To != from.Add(chess.West) {
		return chess.Move{}, false
	}

	captured := board.Get(last.To)
	if !captured.Is(pawn.Colour.Opposite(), chess.Pawn) {
		return chess.Move{}, false
	}
	to := last.To.Add(pawn.Colour.Forward())
	if !to.OnBoard() || !board.Get(to).IsEmpty() {
		return chess.Move{}, false
	}

	m := chess.NewMove(from, to, pawn, captured)
	m.EnPassant = last.To
	return m, true
}
