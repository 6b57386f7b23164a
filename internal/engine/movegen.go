package engine

import "github.com/lgbarn/yauche-go/internal/chess"

// PseudoLegalMoves returns every move for the given colour that follows the
// pieces' movement geometry, ignoring whether the mover's king is left in
// check. The log's last move decides en passant eligibility. Order is not
// significant.
func PseudoLegalMoves(board *chess.Board, colour chess.Colour, log *chess.MoveLog) []chess.Move {
	return AppendPseudoLegalMoves(make([]chess.Move, 0, 48), board, colour, log)
}

// AppendPseudoLegalMoves is PseudoLegalMoves appending into dst so callers
// can reuse a buffer.
func AppendPseudoLegalMoves(dst []chess.Move, board *chess.Board, colour chess.Colour, log *chess.MoveLog) []chess.Move {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			from := chess.SquareAt(file, rank)
			piece := board.Get(from)
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}

			switch piece.Kind {
			case chess.Pawn:
				dst = appendPawnMoves(dst, board, from, piece, log)
			case chess.Knight:
				dst = appendStepMoves(dst, board, from, piece, chess.KnightSteps[:])
			case chess.Bishop:
				dst = appendSlideMoves(dst, board, from, piece, chess.BishopDirections[:])
			case chess.Rook:
				dst = appendSlideMoves(dst, board, from, piece, chess.RookDirections[:])
			case chess.Queen:
				dst = appendSlideMoves(dst, board, from, piece, chess.QueenDirections[:])
			case chess.King:
				dst = appendStepMoves(dst, board, from, piece, chess.KingSteps[:])
				dst = appendCastles(dst, board, from, piece)
			}
		}
	}
	return dst
}

// appendSlideMoves walks each ray until it leaves the board or meets a
// piece. An enemy piece ends the ray with a capture; a friendly one just
// ends it.
func appendSlideMoves(dst []chess.Move, board *chess.Board, from chess.Square, piece chess.Piece, dirs []chess.Direction) []chess.Move {
	for _, dir := range dirs {
		for to := from.Add(dir); to.OnBoard(); to = to.Add(dir) {
			target := board.Get(to)
			if target.IsEmpty() {
				dst = append(dst, chess.NewMove(from, to, piece, chess.NoPiece))
				continue
			}
			if target.Colour != piece.Colour {
				dst = append(dst, chess.NewMove(from, to, piece, target))
			}
			break
		}
	}
	return dst
}

// appendStepMoves handles knights and kings. Steps can jump straight into
// the hedge, so every target is checked with OnBoard before it is read.
func appendStepMoves(dst []chess.Move, board *chess.Board, from chess.Square, piece chess.Piece, steps []chess.Direction) []chess.Move {
	for _, step := range steps {
		to := from.Add(step)
		if !to.OnBoard() {
			continue
		}
		target := board.Get(to)
		if !target.IsEmpty() && target.Colour == piece.Colour {
			continue
		}
		dst = append(dst, chess.NewMove(from, to, piece, target))
	}
	return dst
}
