package chess

import "fmt"

// Constants for the padded 10x12 board layout.
const (
	BoardSize = 8
	Columns   = 10 // One hedge column either side of the eight files.
	Rows      = 12 // Two hedge rows above and below the eight ranks.
	NumCells  = Columns * Rows

	// firstRow is the array row holding rank 1.
	firstRow = 2
)

// Square is an index into the padded 120-cell board. It is signed so that
// offset arithmetic can pass below zero before an OnBoard check.
type Square int

// NoSquare marks an absent square. It lies in the hedge so it can never be a
// playable square.
const NoSquare Square = 0

// Direction is a signed step between two squares.
type Direction int

const (
	North     Direction = Columns
	South     Direction = -Columns
	East      Direction = 1
	West      Direction = -1
	NorthEast Direction = North + East
	NorthWest Direction = North + West
	SouthEast Direction = South + East
	SouthWest Direction = South + West
)

// Step direction sets shared by move generation and attack detection.
var (
	RookDirections   = [4]Direction{North, South, East, West}
	BishopDirections = [4]Direction{NorthEast, NorthWest, SouthEast, SouthWest}
	QueenDirections  = [8]Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}
	KingSteps        = QueenDirections
	KnightSteps      = [8]Direction{
		2*North + West, 2*North + East,
		North + 2*East, South + 2*East,
		2*South + East, 2*South + West,
		South + 2*West, North + 2*West,
	}
)

// SquareAt returns the square for a zero-based file (a=0) and rank (1=0).
// The result is only playable when both are in 0..7.
func SquareAt(file, rank int) Square {
	return Square((rank+firstRow)*Columns + file + 1)
}

// File returns the zero-based file of the square.
func (s Square) File() int {
	return int(s)%Columns - 1
}

// Rank returns the zero-based rank of the square.
func (s Square) Rank() int {
	return int(s)/Columns - firstRow
}

// OnBoard reports whether the square is one of the 64 playable cells.
// Hedge cells and anything outside the array report false.
func (s Square) OnBoard() bool {
	if s < SquareAt(0, 0) || s > SquareAt(BoardSize-1, BoardSize-1) {
		return false
	}
	col := int(s) % Columns
	return col != 0 && col != Columns-1
}

// Add returns the square one step in direction d.
func (s Square) Add(d Direction) Square {
	return s + Square(d)
}

// String returns the algebraic name of the square ("e4"), or "-" when the
// square is not playable.
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ParseSquare converts an algebraic name such as "e4" into a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, fmt.Errorf("square %q: want file and rank", name)
	}
	file := int(name[0]) - 'a'
	rank := int(name[1]) - '1'
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare, fmt.Errorf("square %q: out of range", name)
	}
	return SquareAt(file, rank), nil
}

// MustParseSquare is ParseSquare for literals known to be valid.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}

// HomeRank returns the zero-based back rank of the colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the zero-based starting rank of the colour's pawns.
func PawnRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the zero-based rank on which the colour's pawns promote.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}
