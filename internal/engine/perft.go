package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/yauche-go/internal/chess"
	"github.com/lgbarn/yauche-go/internal/errors"
	"github.com/lgbarn/yauche-go/internal/hashing"
)

const (
	// pollDepth is the smallest remaining depth at which perft checks the
	// context between sibling moves.
	pollDepth = 2

	// cacheDepth is the smallest remaining depth worth a table probe.
	cacheDepth = 2
)

// NodeCache stores perft counts by position key and remaining depth. It
// must be safe for concurrent use when shared by PerftCached workers, and
// must not be shared between rule sets.
type NodeCache interface {
	Lookup(hash uint64, depth int) (uint64, bool)
	Store(hash uint64, depth int, nodes uint64)
}

// Perft counts the leaf nodes of the legal move tree to the given depth
// under standard rules. Depth 0 counts the current position as one leaf.
func Perft(ctx context.Context, board *chess.Board, log *chess.MoveLog, side chess.Colour, depth int) (uint64, error) {
	return StandardRules().Perft(ctx, board, log, side, depth)
}

// Perft counts the leaf nodes of the move tree to the given depth. It works
// on private copies of the board and log using make/unmake, so the caller's
// state is left untouched. The context is polled between sibling moves; on
// cancellation the partial count is returned with the context's error.
func (r Rules) Perft(ctx context.Context, board *chess.Board, log *chess.MoveLog, side chess.Colour, depth int) (uint64, error) {
	return r.perft(ctx, board, log, side, depth, nil)
}

func (r Rules) perft(ctx context.Context, board *chess.Board, log *chess.MoveLog, side chess.Colour, depth int, cache NodeCache) (uint64, error) {
	if depth < 0 {
		return 0, fmt.Errorf("perft depth %d: %w", depth, errors.ErrInvalidDepth)
	}
	w := newPerftWalker(r, board, log, depth)
	w.cache = cache
	nodes, err := w.walk(ctx, side, depth)
	if err != nil {
		return nodes, errors.Wrapf(err, "perft depth %d", depth)
	}
	return nodes, nil
}

// Divide returns the perft count below each legal root move, keyed by the
// move's coordinate text.
func (r Rules) Divide(ctx context.Context, board *chess.Board, log *chess.MoveLog, side chess.Colour, depth int) (map[string]uint64, error) {
	if depth < 1 {
		return nil, fmt.Errorf("divide depth %d: %w", depth, errors.ErrInvalidDepth)
	}
	result := make(map[string]uint64)
	w := newPerftWalker(r, board, log, depth)
	for _, m := range r.LegalMoves(board, side, log) {
		if err := ctx.Err(); err != nil {
			return result, errors.Wrapf(err, "divide depth %d", depth)
		}
		if err := ApplyMove(w.board, m, w.log); err != nil {
			return result, err
		}
		nodes, err := w.walk(ctx, side.Opposite(), depth-1)
		if _, undoErr := UndoMove(w.board, w.log); undoErr != nil && err == nil {
			err = undoErr
		}
		result[m.String()] += nodes
		if err != nil {
			return result, errors.Wrapf(err, "divide depth %d", depth)
		}
	}
	return result, nil
}

// PerftParallel splits the tree at the root and counts each subtree on its
// own goroutine with its own board and log. At most workers subtrees run at
// once; the first error cancels the rest.
func (r Rules) PerftParallel(ctx context.Context, board *chess.Board, log *chess.MoveLog, side chess.Colour, depth, workers int) (uint64, error) {
	return r.PerftCached(ctx, board, log, side, depth, workers, nil)
}

// PerftCached counts like PerftParallel, looking positions up in cache
// before expanding them. A nil cache disables the lookups; fewer than two
// workers runs serially.
func (r Rules) PerftCached(ctx context.Context, board *chess.Board, log *chess.MoveLog, side chess.Colour, depth, workers int, cache NodeCache) (uint64, error) {
	if depth < 1 || workers < 2 {
		return r.perft(ctx, board, log, side, depth, cache)
	}

	roots := r.LegalMoves(board, side, log)
	counts := make([]uint64, len(roots))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, m := range roots {
		i, m := i, m
		g.Go(func() error {
			w := newPerftWalker(r, board, log, depth)
			w.cache = cache
			if err := ApplyMove(w.board, m, w.log); err != nil {
				return err
			}
			nodes, err := w.walk(ctx, side.Opposite(), depth-1)
			counts[i] = nodes
			return err
		})
	}

	err := g.Wait()
	var total uint64
	for _, n := range counts {
		total += n
	}
	if err != nil {
		return total, errors.Wrapf(err, "parallel perft depth %d", depth)
	}
	return total, nil
}

// perftWalker owns the board and log a perft run mutates, plus one move
// buffer per ply so the recursion does not allocate after warm-up.
type perftWalker struct {
	rules   Rules
	board   *chess.Board
	log     *chess.MoveLog
	buffers [][]chess.Move
	cache   NodeCache
}

func newPerftWalker(r Rules, board *chess.Board, log *chess.MoveLog, depth int) *perftWalker {
	return &perftWalker{
		rules:   r,
		board:   board.Copy(),
		log:     log.Copy(),
		buffers: make([][]chess.Move, depth+1),
	}
}

func (w *perftWalker) walk(ctx context.Context, side chess.Colour, depth int) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}

	var key uint64
	cached := w.cache != nil && depth >= cacheDepth
	if cached {
		key = hashing.Key(w.board, side, w.log)
		if nodes, ok := w.cache.Lookup(key, depth); ok {
			return nodes, nil
		}
	}

	moves := AppendPseudoLegalMoves(w.buffers[depth][:0], w.board, side, w.log)
	w.buffers[depth] = moves

	var nodes uint64
	for _, m := range moves {
		if depth >= pollDepth {
			if err := ctx.Err(); err != nil {
				return nodes, err
			}
		}
		if !w.rules.castleAllowed(w.board, m) {
			continue
		}
		if err := ApplyMove(w.board, m, w.log); err != nil {
			return nodes, err
		}
		if w.rules.positionValid(w.board, side) {
			n, err := w.walk(ctx, side.Opposite(), depth-1)
			nodes += n
			if err != nil {
				_, _ = UndoMove(w.board, w.log)
				return nodes, err
			}
		}
		if _, err := UndoMove(w.board, w.log); err != nil {
			return nodes, err
		}
	}
	if cached {
		w.cache.Store(key, depth, nodes)
	}
	return nodes, nil
}
