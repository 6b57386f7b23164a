package engine

import (
	"context"
	"testing"

	"github.com/lgbarn/yauche-go/internal/chess"
	"github.com/lgbarn/yauche-go/internal/errors"
	"github.com/lgbarn/yauche-go/internal/hashing"
	"github.com/lgbarn/yauche-go/internal/testutil"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		nodes []uint64 // indexed by depth
		long  int      // first depth skipped with -short
	}{
		{
			name:  "initial",
			nodes: []uint64{1, 20, 400, 8902, 197281},
			long:  4,
		},
		{
			name:  "kiwipete",
			rows:  kiwipeteRows,
			nodes: []uint64{1, 48, 2039, 97862},
			long:  3,
		},
		{
			name:  "endgame",
			rows:  endgameRows,
			nodes: []uint64{1, 14, 191, 2812, 43238},
			long:  4,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := NewPosition(StandardRules())
			if tt.rows != nil {
				pos = positionFromRows(t, chess.White, tt.rows...)
			}
			for depth, want := range tt.nodes {
				if testing.Short() && depth >= tt.long {
					break
				}
				got, err := pos.Perft(context.Background(), depth)
				testutil.AssertNoError(t, err)
				if got != want {
					t.Errorf("perft(%d) = %d, want %d", depth, got, want)
				}
			}
		})
	}
}

func TestPerft_LeavesInputUntouched(t *testing.T) {
	pos, err := ReplayMoves(StandardRules(), SplitMoves("e2e4 d7d5"))
	testutil.AssertNoError(t, err)
	board := pos.Board.Copy()
	logLen := pos.Log.Len()

	_, err = pos.Perft(context.Background(), 3)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, pos.Board, board)
	testutil.AssertEqual(t, pos.Log.Len(), logLen)
}

func TestPerft_InvalidDepth(t *testing.T) {
	pos := NewPosition(StandardRules())

	_, err := pos.Perft(context.Background(), -1)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidDepth)

	_, err = pos.Divide(context.Background(), 0)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidDepth)
}

func TestPerft_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pos := NewPosition(StandardRules())
	_, err := pos.Perft(ctx, 3)
	testutil.AssertErrorIs(t, err, context.Canceled)

	_, err = pos.PerftParallel(ctx, 3, 4)
	testutil.AssertErrorIs(t, err, context.Canceled)

	_, err = pos.Divide(ctx, 2)
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestDivide(t *testing.T) {
	pos := NewPosition(StandardRules())

	counts, err := pos.Divide(context.Background(), 1)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(counts), 20)
	for move, n := range counts {
		if n != 1 {
			t.Errorf("divide(1)[%s] = %d, want 1", move, n)
		}
	}

	counts, err = pos.Divide(context.Background(), 3)
	testutil.AssertNoError(t, err)
	var total uint64
	for _, n := range counts {
		total += n
	}
	testutil.AssertEqual(t, total, uint64(8902))
	testutil.AssertEqual(t, counts["e2e4"], uint64(600))
	testutil.AssertEqual(t, counts["g1f3"], uint64(440))
}

func TestPerftParallel(t *testing.T) {
	pos := positionFromRows(t, chess.White, kiwipeteRows...)

	serial, err := pos.Perft(context.Background(), 2)
	testutil.AssertNoError(t, err)

	for _, workers := range []int{1, 2, 8} {
		got, err := pos.PerftParallel(context.Background(), 2, workers)
		testutil.AssertNoError(t, err, "workers=%d", workers)
		testutil.AssertEqual(t, got, serial, "workers=%d", workers)
	}
}

func TestPerftCached(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		depth   int
		want    uint64
		workers int
	}{
		{"initial serial", nil, 4, 197281, 1},
		{"initial parallel", nil, 4, 197281, 4},
		{"kiwipete", kiwipeteRows, 3, 97862, 4},
		{"endgame", endgameRows, 4, 43238, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if testing.Short() && tt.depth > 3 {
				t.Skip("deep perft")
			}
			pos := NewPosition(StandardRules())
			if tt.rows != nil {
				pos = positionFromRows(t, chess.White, tt.rows...)
			}
			cache := hashing.NewThreadSafePerftTable(0)

			got, err := pos.PerftCached(context.Background(), tt.depth, tt.workers, cache)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)

			// A second run is answered from the table.
			hits := cache.Hits()
			got, err = pos.PerftCached(context.Background(), tt.depth, tt.workers, cache)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want, "cached rerun")
			testutil.AssertTrue(t, cache.Hits() > hits, "rerun hit the table")
		})
	}
}
