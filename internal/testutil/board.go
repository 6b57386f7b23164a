package testutil

import (
	"testing"

	"github.com/lgbarn/yauche-go/internal/chess"
)

var diagramKinds = map[byte]chess.Kind{
	'p': chess.Pawn, 'n': chess.Knight, 'b': chess.Bishop,
	'r': chess.Rook, 'q': chess.Queen, 'k': chess.King,
}

// BoardFromRows builds a board from eight rows of a diagram, rank 8 first.
// Upper case letters are White, lower case Black, '.' is empty. Moved
// flags are inferred from the squares with Board.Place.
func BoardFromRows(t testing.TB, rows ...string) *chess.Board {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("BoardFromRows: got %d rows, want %d", len(rows), chess.BoardSize)
	}
	b := chess.NewBoard()
	for i, row := range rows {
		if len(row) != chess.BoardSize {
			t.Fatalf("BoardFromRows: row %d is %q, want %d cells", i, row, chess.BoardSize)
		}
		rank := chess.BoardSize - 1 - i
		for file := 0; file < chess.BoardSize; file++ {
			c := row[file]
			if c == '.' {
				continue
			}
			colour := chess.Black
			if c >= 'A' && c <= 'Z' {
				colour = chess.White
				c += 'a' - 'A'
			}
			kind, ok := diagramKinds[c]
			if !ok {
				t.Fatalf("BoardFromRows: bad cell %q in row %d", row[file], i)
			}
			b.Place(chess.SquareAt(file, rank), chess.NewPiece(colour, kind))
		}
	}
	return b
}

// Sq parses a square name, failing the test on error.
func Sq(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatal(err)
	}
	return sq
}
