package chess

import "strings"

// Board is a padded mailbox: 120 cells of which the inner 8x8 are playable.
// The hedge cells are always empty; stepping onto one is detected with
// Square.OnBoard rather than per-axis bounds checks.
//
// Board is a plain array value, so copying it clones the whole position.
type Board struct {
	Squares [NumCells]Piece
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and places the standard starting
// position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [NumCells]Piece{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Set(SquareAt(file, HomeRank(White)), W(backRank[file]))
		b.Set(SquareAt(file, PawnRank(White)), W(Pawn))
		b.Set(SquareAt(file, PawnRank(Black)), B(Pawn))
		b.Set(SquareAt(file, HomeRank(Black)), B(backRank[file]))
	}
}

// Get returns the piece on the square. Squares outside the array read as
// empty.
func (b *Board) Get(sq Square) Piece {
	if sq < 0 || int(sq) >= NumCells {
		return NoPiece
	}
	return b.Squares[sq]
}

// Set places a piece on a playable square. Writes to hedge cells are ignored
// so the padding invariant cannot be broken.
func (b *Board) Set(sq Square, p Piece) {
	if sq.OnBoard() {
		b.Squares[sq] = p
	}
}

// Place puts a piece on the board for position setup, marking pawns, rooks
// and kings as moved when they stand off their starting squares.
func (b *Board) Place(sq Square, p Piece) {
	switch p.Kind {
	case Pawn:
		p.Moved = sq.Rank() != PawnRank(p.Colour)
	case King:
		p.Moved = sq != SquareAt(4, HomeRank(p.Colour))
	case Rook:
		home := sq.Rank() == HomeRank(p.Colour)
		p.Moved = !home || (sq.File() != 0 && sq.File() != BoardSize-1)
	}
	b.Set(sq, p)
}

// Clear empties a square.
func (b *Board) Clear(sq Square) {
	b.Set(sq, NoPiece)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Find returns every playable square holding the given colour and kind.
func (b *Board) Find(colour Colour, kind Kind) []Square {
	var squares []Square
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			sq := SquareAt(file, rank)
			if b.Squares[sq].Is(colour, kind) {
				squares = append(squares, sq)
			}
		}
	}
	return squares
}

// String renders the board as eight rows of Unicode glyphs, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(b.Squares[SquareAt(file, rank)].Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
