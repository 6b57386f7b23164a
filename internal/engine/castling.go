package engine

import "github.com/lgbarn/yauche-go/internal/chess"

// appendCastles offers castling when the king and the rook on that side have
// never moved and every square between them is empty. Whether the king is
// in or passes through check is left to the legality filter.
func appendCastles(dst []chess.Move, board *chess.Board, from chess.Square, king chess.Piece) []chess.Move {
	if king.Moved {
		return dst
	}
	for _, kingSide := range [2]bool{true, false} {
		offset, step := chess.KingSideRookOffset, chess.East
		if !kingSide {
			offset, step = chess.QueenSideRookOffset, chess.West
		}

		rookSq := from.Add(offset)
		if !rookSq.OnBoard() {
			continue
		}
		rook := board.Get(rookSq)
		if !rook.Is(king.Colour, chess.Rook) || rook.Moved {
			continue
		}
		if !pathEmpty(board, from, rookSq, step) {
			continue
		}

		m := chess.NewMove(from, chess.CastleTarget(from, kingSide), king, chess.NoPiece)
		m.Castle = chess.Castle{KingSide: kingSide, Rook: rook}
		dst = append(dst, m)
	}
	return dst
}

// pathEmpty checks that every square strictly between from and to is empty.
func pathEmpty(board *chess.Board, from, to chess.Square, step chess.Direction) bool {
	for sq := from.Add(step); sq != to; sq = sq.Add(step) {
		if !sq.OnBoard() || !board.Get(sq).IsEmpty() {
			return false
		}
	}
	return true
}
