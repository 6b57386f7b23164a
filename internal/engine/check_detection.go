package engine

import "github.com/lgbarn/yauche-go/internal/chess"

// Attacked returns true if the square is attacked by the given colour.
// The probe walks outward from the square using the same geometry as move
// generation, looking for the attacker kinds relevant to each direction.
func (r Rules) Attacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack from one rank behind their push direction.
	behind := sq.Add(-byColour.Forward())
	for _, side := range [2]chess.Direction{chess.East, chess.West} {
		from := behind.Add(side)
		if from.OnBoard() && board.Get(from).Is(byColour, chess.Pawn) {
			return true
		}
	}

	for _, step := range chess.KnightSteps {
		from := sq.Add(step)
		if from.OnBoard() && board.Get(from).Is(byColour, chess.Knight) {
			return true
		}
	}

	if r.KingContact {
		for _, step := range chess.KingSteps {
			from := sq.Add(step)
			if from.OnBoard() && board.Get(from).Is(byColour, chess.King) {
				return true
			}
		}
	}

	for _, dir := range chess.BishopDirections {
		if p := firstPieceOnRay(board, sq, dir); p.Colour == byColour &&
			(p.Kind == chess.Bishop || p.Kind == chess.Queen) {
			return true
		}
	}

	for _, dir := range chess.RookDirections {
		if p := firstPieceOnRay(board, sq, dir); p.Colour == byColour &&
			(p.Kind == chess.Rook || p.Kind == chess.Queen) {
			return true
		}
	}

	return false
}

// firstPieceOnRay returns the first piece met walking from sq in direction
// dir, or NoPiece if the ray leaves the board first.
func firstPieceOnRay(board *chess.Board, sq chess.Square, dir chess.Direction) chess.Piece {
	for to := sq.Add(dir); to.OnBoard(); to = to.Add(dir) {
		if p := board.Get(to); !p.IsEmpty() {
			return p
		}
	}
	return chess.NoPiece
}

// KingAttacked returns true if any king of the given colour is attacked.
// A board without such a king reports false.
func (r Rules) KingAttacked(board *chess.Board, colour chess.Colour) bool {
	for _, sq := range board.Find(colour, chess.King) {
		if r.Attacked(board, sq, colour.Opposite()) {
			return true
		}
	}
	return false
}

// Validate scans every king on the board and returns false on the first one
// found under attack by the opposing colour. It does not know whose turn it
// is; callers interpret the result for the side that just moved.
func (r Rules) Validate(board *chess.Board) bool {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.SquareAt(file, rank)
			p := board.Get(sq)
			if p.Kind != chess.King {
				continue
			}
			if r.Attacked(board, sq, p.Colour.Opposite()) {
				return false
			}
		}
	}
	return true
}

// IsInCheckAfterLastMove reports whether the side that made the last logged
// move has left its own king attacked. An empty log reports false.
func (r Rules) IsInCheckAfterLastMove(board *chess.Board, log *chess.MoveLog) bool {
	last, ok := log.Last()
	if !ok {
		return false
	}
	return r.KingAttacked(board, last.Piece.Colour)
}

// InCheck returns true if the given colour's king is in check under
// standard rules.
func InCheck(board *chess.Board, colour chess.Colour) bool {
	return StandardRules().KingAttacked(board, colour)
}

// positionValid is the post-move test used by the legality filter and perft.
func (r Rules) positionValid(board *chess.Board, mover chess.Colour) bool {
	if r.MoverOnly {
		return !r.KingAttacked(board, mover)
	}
	return r.Validate(board)
}

// castleAllowed applies the castle safety rule before a castle is made: the
// king may not start in check or cross an attacked square. The landing
// square is covered by positionValid after the move.
func (r Rules) castleAllowed(board *chess.Board, m chess.Move) bool {
	if !m.IsCastle() || !r.CastleSafety {
		return true
	}
	enemy := m.Piece.Colour.Opposite()
	transit := chess.East
	if !m.Castle.KingSide {
		transit = chess.West
	}
	return !r.Attacked(board, m.From, enemy) && !r.Attacked(board, m.From.Add(transit), enemy)
}
