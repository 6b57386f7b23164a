package engine

import (
	"testing"

	"github.com/lgbarn/yauche-go/internal/chess"
	"github.com/lgbarn/yauche-go/internal/testutil"
)

func TestLegalMoves_Pin(t *testing.T) {
	board := testutil.BoardFromRows(t,
		"k...r...", "........", "........", "........",
		"........", "........", "....B...", "....K...",
	)
	moves := LegalMoves(board, chess.White, chess.NewMoveLog(0))
	testutil.AssertEqual(t, sortedTexts(moves), []string{"e1d1", "e1d2", "e1f1", "e1f2"})
}

func TestLegalMoves_MustAnswerCheck(t *testing.T) {
	board := testutil.BoardFromRows(t,
		"....k...", "........", "........", "........",
		".b......", "........", "........", ".N..K..R",
	)
	moves := LegalMoves(board, chess.White, chess.NewMoveLog(0))
	// Castling out of check and Kd2 are excluded.
	want := []string{"b1c3", "b1d2", "e1d1", "e1e2", "e1f1", "e1f2"}
	testutil.AssertEqual(t, sortedTexts(moves), want)
}

// TestLegalMoves_Sound checks every legal move leaves the mover's king
// safe and every rejected pseudo-legal move does not.
func TestLegalMoves_Sound(t *testing.T) {
	positions := map[string]*Position{
		"initial":  NewPosition(StandardRules()),
		"kiwipete": positionFromRows(t, chess.White, kiwipeteRows...),
		"endgame":  positionFromRows(t, chess.White, endgameRows...),
	}

	for name, pos := range positions {
		pos := pos
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r := pos.Rules
			for _, colour := range []chess.Colour{chess.White, chess.Black} {
				legal := map[string]bool{}
				for _, m := range r.LegalMoves(pos.Board, colour, pos.Log) {
					legal[m.String()] = true
				}

				for _, m := range PseudoLegalMoves(pos.Board, colour, pos.Log) {
					board := pos.Board.Copy()
					log := pos.Log.Copy()
					castleOK := r.castleAllowed(board, m)
					testutil.AssertNoError(t, ApplyMove(board, m, log))
					safe := castleOK && !r.KingAttacked(board, colour)

					if safe != legal[m.String()] {
						t.Errorf("%s %s: safe=%v legal=%v", colour, m, safe, legal[m.String()])
					}
				}
			}
		})
	}
}

func TestLegalMoves_DoesNotTouchInput(t *testing.T) {
	pos := positionFromRows(t, chess.White, kiwipeteRows...)
	before := pos.Board.Copy()

	_ = pos.LegalMoves()
	testutil.AssertEqual(t, pos.Board, before)
	testutil.AssertEqual(t, pos.Log.Len(), 0)
}

func TestGameState(t *testing.T) {
	t.Run("fool's mate", func(t *testing.T) {
		pos, err := ReplayMoves(StandardRules(), SplitMoves("f2f3 e7e5 g2g4 d8h4"))
		testutil.AssertNoError(t, err)
		testutil.AssertTrue(t, IsCheckmate(pos), "checkmate")
		testutil.AssertFalse(t, IsStalemate(pos), "stalemate")
	})

	t.Run("stalemate", func(t *testing.T) {
		pos := positionFromRows(t, chess.Black,
			"k.......", "........", ".QK.....", "........",
			"........", "........", "........", "........",
		)
		testutil.AssertTrue(t, IsStalemate(pos), "stalemate")
		testutil.AssertFalse(t, IsCheckmate(pos), "checkmate")
	})

	t.Run("opening", func(t *testing.T) {
		pos := NewPosition(StandardRules())
		testutil.AssertFalse(t, IsCheckmate(pos), "checkmate")
		testutil.AssertFalse(t, IsStalemate(pos), "stalemate")
	})
}
