package chess

// Castle describes the rook that accompanies a castling king move.
// The zero value means the move is not a castle.
type Castle struct {
	KingSide bool
	Rook     Piece
}

// Castling geometry, as offsets from the king's starting square.
const (
	KingSideRookOffset  Direction = 3 * East
	QueenSideRookOffset Direction = 4 * West
	castleKingStep      Direction = 2
)

// Move is a self-describing diff between two positions. Applying it needs
// only the board and the move log; undoing it needs only the Move itself.
// Moves are values and are never shared.
type Move struct {
	From Square
	To   Square

	// Piece is the moving piece as it stood on From before the move,
	// including its moved flag.
	Piece Piece

	// Captured is the piece removed by the move (NoPiece if none). For en
	// passant it is the pawn taken from EnPassant, not from To.
	Captured Piece

	// Promotion is the piece placed on To (NoPiece if not a promotion).
	Promotion Piece

	// EnPassant is the square of the pawn captured en passant (NoSquare if
	// not an en passant capture).
	EnPassant Square

	// Castle is populated for castling moves.
	Castle Castle
}

// NewMove creates a plain move.
func NewMove(from, to Square, piece, captured Piece) Move {
	return Move{From: from, To: to, Piece: piece, Captured: captured}
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return !m.Promotion.IsEmpty()
}

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.EnPassant != NoSquare
}

// IsCastle reports whether the move is a castle.
func (m Move) IsCastle() bool {
	return !m.Castle.Rook.IsEmpty()
}

// SpecialCount returns how many of promotion, en passant and castle are
// populated. A well-formed move has at most one.
func (m Move) SpecialCount() int {
	n := 0
	if m.IsPromotion() {
		n++
	}
	if m.IsEnPassant() {
		n++
	}
	if m.IsCastle() {
		n++
	}
	return n
}

// WithPromotion returns a copy of m promoting to the given kind.
func (m Move) WithPromotion(kind Kind) Move {
	m.Promotion = Piece{Kind: kind, Colour: m.Piece.Colour}
	return m
}

// CastleRookSquares returns the rook's origin and destination for a castle.
func (m Move) CastleRookSquares() (from, to Square) {
	if m.Castle.KingSide {
		return m.From.Add(KingSideRookOffset), m.From.Add(East)
	}
	return m.From.Add(QueenSideRookOffset), m.From.Add(West)
}

// CastleTarget returns the king's destination square for a castle from
// the given square.
func CastleTarget(from Square, kingSide bool) Square {
	if kingSide {
		return from.Add(castleKingStep * East)
	}
	return from.Add(castleKingStep * West)
}

// IsDoublePawnStep reports whether the move is a pawn advancing two ranks.
func (m Move) IsDoublePawnStep() bool {
	if m.Piece.Kind != Pawn {
		return false
	}
	d := m.To.Rank() - m.From.Rank()
	return d == 2 || d == -2
}

// String returns the move in coordinate notation: "e2e4", "e7e8q".
// Castles are written as the king's move, e.g. "e1g1".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Kind.Letter())
	}
	return s
}

// MoveLog is the ordered record of moves applied to a board. Its length
// always equals the number of moves currently applied; its tail is the only
// source of en passant eligibility.
type MoveLog struct {
	moves []Move
}

// NewMoveLog creates an empty log with room for n moves.
func NewMoveLog(n int) *MoveLog {
	return &MoveLog{moves: make([]Move, 0, n)}
}

// Push appends an applied move.
func (l *MoveLog) Push(m Move) {
	l.moves = append(l.moves, m)
}

// Pop removes and returns the most recent move.
func (l *MoveLog) Pop() (Move, bool) {
	if len(l.moves) == 0 {
		return Move{}, false
	}
	m := l.moves[len(l.moves)-1]
	l.moves = l.moves[:len(l.moves)-1]
	return m, true
}

// Last returns the most recent move without removing it.
func (l *MoveLog) Last() (Move, bool) {
	if l == nil || len(l.moves) == 0 {
		return Move{}, false
	}
	return l.moves[len(l.moves)-1], true
}

// Len returns the number of applied moves.
func (l *MoveLog) Len() int {
	if l == nil {
		return 0
	}
	return len(l.moves)
}

// Moves returns a copy of the logged moves, oldest first.
func (l *MoveLog) Moves() []Move {
	if l == nil {
		return nil
	}
	out := make([]Move, len(l.moves))
	copy(out, l.moves)
	return out
}

// Copy creates an independent copy of the log.
func (l *MoveLog) Copy() *MoveLog {
	if l == nil {
		return NewMoveLog(0)
	}
	c := NewMoveLog(cap(l.moves))
	c.moves = append(c.moves, l.moves...)
	return c
}
