package engine

import (
	"context"
	"testing"

	"github.com/lgbarn/yauche-go/internal/chess"
	"github.com/lgbarn/yauche-go/internal/errors"
	"github.com/lgbarn/yauche-go/internal/testutil"
)

func TestParseRules(t *testing.T) {
	tests := []struct {
		name    string
		want    Rules
		wantErr bool
	}{
		{"", StandardRules(), false},
		{"standard", StandardRules(), false},
		{" Reference ", ReferenceRules(), false},
		{"fide", Rules{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRules(tt.name)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestRulesString(t *testing.T) {
	testutil.AssertEqual(t, StandardRules().String(), "standard")
	testutil.AssertEqual(t, ReferenceRules().String(), "reference")
	testutil.AssertEqual(t, Rules{KingContact: true}.String(),
		"custom(kingContact=true, castleSafety=false, moverOnly=false)")
}

// TestRuleDivergences pins down where the reference rule set and standard
// chess disagree.
func TestRuleDivergences(t *testing.T) {
	tests := []struct {
		name      string
		rows      []string
		move      string
		standard  bool
		reference bool
	}{
		{
			name: "king steps next to the enemy king",
			rows: []string{
				"........", "........", "........", "........",
				"........", "....k...", "........", "....K...",
			},
			move:     "e1e2",
			standard: false, reference: true,
		},
		{
			name: "castle across an attacked square",
			rows: []string{
				"k....r..", "........", "........", "........",
				"........", "........", "........", "....K..R",
			},
			move:     "e1g1",
			standard: false, reference: true,
		},
		{
			name: "castle out of check",
			rows: []string{
				"k...r...", "........", "........", "........",
				"........", "........", "........", "....K..R",
			},
			move:     "e1g1",
			standard: false, reference: true,
		},
		{
			name: "rook move that gives check",
			rows: []string{
				"....k...", "........", "........", "........",
				"........", "........", ".......R", "K.......",
			},
			move:     "h2h8",
			standard: true, reference: false,
		},
		{
			name: "quiet rook move",
			rows: []string{
				"....k...", "........", "........", "........",
				"........", "........", ".......R", "K.......",
			},
			move:     "h2h7",
			standard: true, reference: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.BoardFromRows(t, tt.rows...)
			log := chess.NewMoveLog(0)

			got := containsMove(StandardRules().LegalMoves(board, chess.White, log), tt.move)
			testutil.AssertEqual(t, got, tt.standard, "standard rules allow %s", tt.move)

			got = containsMove(ReferenceRules().LegalMoves(board, chess.White, log), tt.move)
			testutil.AssertEqual(t, got, tt.reference, "reference rules allow %s", tt.move)
		})
	}
}

// TestReferencePerft checks the reference rules drop the twelve checking
// moves at depth three.
func TestReferencePerft(t *testing.T) {
	pos := NewPosition(ReferenceRules())
	want := []uint64{1, 20, 400, 8890}

	for depth, nodes := range want {
		got, err := pos.Perft(context.Background(), depth)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, nodes, "reference perft(%d)", depth)
	}
}
