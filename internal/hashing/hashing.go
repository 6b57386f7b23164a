// Package hashing provides Zobrist position keys and the tables keyed by
// them: perft node counts and repetition tracking.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/yauche-go/internal/chess"
)

// zobristSeed fixes the key tables so keys are stable across runs.
const zobristSeed = 0x7961756368650001

var (
	// pieceKeys is indexed by colour, kind, moved flag and cell.
	pieceKeys     [2][7][2][chess.NumCells]uint64
	enPassantKeys [chess.NumCells]uint64
	whiteToMove   uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for m := range pieceKeys[c][k] {
				for sq := range pieceKeys[c][k][m] {
					pieceKeys[c][k][m][sq] = rng.Uint64()
				}
			}
		}
	}
	for sq := range enPassantKeys {
		enPassantKeys[sq] = rng.Uint64()
	}
	whiteToMove = rng.Uint64()
}

// Key returns the Zobrist key of a position. Moved flags are part of the
// piece key, so castling and double-step rights are told apart. When the
// log's last move is a double pawn step and a pawn of the side to move
// stands beside it, the landing square is mixed in, since en passant is
// then on offer. A capture that would be illegal because of a pin still
// counts.
func Key(board *chess.Board, side chess.Colour, log *chess.MoveLog) uint64 {
	var key uint64
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.SquareAt(file, rank)
			p := board.Squares[sq]
			if p.IsEmpty() {
				continue
			}
			key ^= pieceKeys[p.Colour][p.Kind][movedIndex(p)][sq]
		}
	}
	if side == chess.White {
		key ^= whiteToMove
	}
	if last, ok := log.Last(); ok && last.IsDoublePawnStep() && enPassantOnOffer(board, side, last.To) {
		key ^= enPassantKeys[last.To]
	}
	return key
}

// enPassantOnOffer reports whether side has a pawn beside the square a
// double-stepping pawn landed on.
func enPassantOnOffer(board *chess.Board, side chess.Colour, landed chess.Square) bool {
	return board.Get(landed.Add(chess.East)).Is(side, chess.Pawn) ||
		board.Get(landed.Add(chess.West)).Is(side, chess.Pawn)
}

func movedIndex(p chess.Piece) int {
	if p.Moved {
		return 1
	}
	return 0
}

type tableKey struct {
	hash  uint64
	depth int
}

// PerftTable caches perft node counts by position key and remaining depth.
type PerftTable struct {
	// entries maps a position and depth to its leaf count
	entries map[tableKey]uint64
	// maxCapacity caps the number of entries; 0 means unlimited
	maxCapacity int
	// hits counts successful lookups
	hits int
}

// NewPerftTable creates a table holding at most maxCapacity entries.
// maxCapacity of 0 means unlimited capacity.
func NewPerftTable(maxCapacity int) *PerftTable {
	return &PerftTable{
		entries:     make(map[tableKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored count for the position at the given depth.
func (t *PerftTable) Lookup(hash uint64, depth int) (uint64, bool) {
	nodes, ok := t.entries[tableKey{hash, depth}]
	if ok {
		t.hits++
	}
	return nodes, ok
}

// Store records a count. Once the table is full new positions are dropped.
func (t *PerftTable) Store(hash uint64, depth int, nodes uint64) {
	k := tableKey{hash, depth}
	if _, ok := t.entries[k]; !ok && t.IsFull() {
		return
	}
	t.entries[k] = nodes
}

// Len returns the number of stored entries.
func (t *PerftTable) Len() int {
	return len(t.entries)
}

// Hits returns the number of successful lookups.
func (t *PerftTable) Hits() int {
	return t.hits
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *PerftTable) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// RepetitionTracker counts how often each position key has occurred.
type RepetitionTracker struct {
	counts map[uint64]int
	// max is the highest count seen for any key
	max int
}

// NewRepetitionTracker creates an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{counts: make(map[uint64]int)}
}

// Add records one occurrence of the key and returns its new count.
func (r *RepetitionTracker) Add(key uint64) int {
	r.counts[key]++
	n := r.counts[key]
	if n > r.max {
		r.max = n
	}
	return n
}

// Max returns the highest occurrence count of any position.
func (r *RepetitionTracker) Max() int {
	return r.max
}

// Unique returns the number of distinct positions seen.
func (r *RepetitionTracker) Unique() int {
	return len(r.counts)
}
