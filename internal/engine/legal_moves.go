package engine

import "github.com/lgbarn/yauche-go/internal/chess"

// LegalMoves returns the moves for the given colour that do not leave its
// own king attacked, under standard rules.
func LegalMoves(board *chess.Board, colour chess.Colour, log *chess.MoveLog) []chess.Move {
	return StandardRules().LegalMoves(board, colour, log)
}

// LegalMoves narrows the pseudo-legal moves to legal ones. Each candidate is
// made on a scratch copy of the board, tested, and unmade before the next
// one, so the caller's board and log are never touched.
func (r Rules) LegalMoves(board *chess.Board, colour chess.Colour, log *chess.MoveLog) []chess.Move {
	candidates := PseudoLegalMoves(board, colour, log)
	if len(candidates) == 0 {
		return candidates
	}

	scratch := board.Copy()
	scratchLog := chess.NewMoveLog(1)
	legal := candidates[:0]
	for _, m := range candidates {
		if r.tryMove(scratch, scratchLog, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (r Rules) HasLegalMoves(board *chess.Board, colour chess.Colour, log *chess.MoveLog) bool {
	scratch := board.Copy()
	scratchLog := chess.NewMoveLog(1)
	for _, m := range PseudoLegalMoves(board, colour, log) {
		if r.tryMove(scratch, scratchLog, m) {
			return true
		}
	}
	return false
}

// tryMove makes a move on the scratch board, checks the mover's safety and
// unmakes it again.
func (r Rules) tryMove(scratch *chess.Board, scratchLog *chess.MoveLog, m chess.Move) bool {
	if !r.castleAllowed(scratch, m) {
		return false
	}
	if err := ApplyMove(scratch, m, scratchLog); err != nil {
		return false
	}
	ok := r.positionValid(scratch, m.Piece.Colour)
	// Undo cannot fail: the move was just pushed.
	_, _ = UndoMove(scratch, scratchLog)
	return ok
}
