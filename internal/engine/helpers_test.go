package engine

import (
	"sort"
	"testing"

	"github.com/lgbarn/yauche-go/internal/chess"
	"github.com/lgbarn/yauche-go/internal/testutil"
)

// Diagrams of well-known perft positions, rank 8 first.
var (
	kiwipeteRows = []string{
		"r...k..r",
		"p.ppqpb.",
		"bn..pnp.",
		"...PN...",
		".p..P...",
		"..N..Q.p",
		"PPPBBPPP",
		"R...K..R",
	}

	endgameRows = []string{
		"........",
		"..p.....",
		"...p....",
		"KP.....r",
		".R...p.k",
		"........",
		"....P.P.",
		"........",
	}

	promotionRows = []string{
		"r...k...",
		".P......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....K...",
	}
)

// positionFromRows builds a position with an empty log.
func positionFromRows(t testing.TB, toMove chess.Colour, rows ...string) *Position {
	t.Helper()
	return &Position{
		Board:  testutil.BoardFromRows(t, rows...),
		Log:    chess.NewMoveLog(0),
		ToMove: toMove,
		Rules:  StandardRules(),
	}
}

// sortedTexts returns the moves' coordinate text in sorted order.
func sortedTexts(moves []chess.Move) []string {
	texts := MoveTexts(moves)
	sort.Strings(texts)
	return texts
}

func sortedStrings(s []string) []string {
	out := append([]string(nil), s...)
	sort.Strings(out)
	return out
}

func containsMove(moves []chess.Move, text string) bool {
	_, err := FindMove(moves, text)
	return err == nil
}
