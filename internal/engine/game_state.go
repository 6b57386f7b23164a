package engine

import "github.com/lgbarn/yauche-go/internal/chess"

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *Position) bool {
	return pos.InCheck() && !pos.Rules.HasLegalMoves(pos.Board, pos.ToMove, pos.Log)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *Position) bool {
	return !pos.InCheck() && !pos.Rules.HasLegalMoves(pos.Board, pos.ToMove, pos.Log)
}

// HasInsufficientMaterial reports positions where neither side can mate:
// bare kings, a single minor piece, or only bishops all standing on
// squares of one colour.
func HasInsufficientMaterial(board *chess.Board) bool {
	var knights, bishops int
	bishopColours := [2]bool{}
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			p := board.Get(chess.SquareAt(file, rank))
			switch p.Kind {
			case chess.NoKind, chess.King:
			case chess.Knight:
				knights++
			case chess.Bishop:
				bishops++
				bishopColours[(file+rank)%2] = true
			default:
				return false
			}
		}
	}

	switch {
	case knights+bishops <= 1:
		return true
	case knights == 0:
		return !(bishopColours[0] && bishopColours[1])
	}
	return false
}
