// Package chess provides core chess types: pieces, squares, the padded
// mailbox board, moves and the move log.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the pawn push direction for the colour.
func (c Colour) Forward() Direction {
	if c == White {
		return North
	}
	return South
}

// Kind represents a chess piece type. NoKind marks an empty square.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the lowercase coordinate-notation letter for a kind.
func (k Kind) Letter() byte {
	letters := []byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// TracksMoved reports whether castling or double-step eligibility depends
// on the piece having moved.
func (k Kind) TracksMoved() bool {
	return k == Pawn || k == Rook || k == King
}

// PromotionKinds lists the kinds a pawn may promote to, in generation order.
var PromotionKinds = [4]Kind{Queen, Knight, Bishop, Rook}

// Piece is an immutable piece value. The zero Piece is "no piece".
// Moved is only meaningful for pawns, rooks and kings.
type Piece struct {
	Kind   Kind
	Colour Colour
	Moved  bool
}

// NoPiece is the empty square value.
var NoPiece = Piece{}

// NewPiece creates an unmoved piece.
func NewPiece(colour Colour, kind Kind) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates an unmoved white piece.
func W(kind Kind) Piece {
	return NewPiece(White, kind)
}

// B creates an unmoved black piece.
func B(kind Kind) Piece {
	return NewPiece(Black, kind)
}

// IsEmpty reports whether the value represents no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p.Kind == kind && p.Colour == colour
}

// WithMoved returns a copy of p with the moved flag set to moved.
// Pieces that do not track movement are returned unchanged.
func (p Piece) WithMoved(moved bool) Piece {
	if p.Kind.TracksMoved() {
		p.Moved = moved
	}
	return p
}

// Glyph returns the Unicode chess symbol for the piece, or a space.
func (p Piece) Glyph() rune {
	if p.IsEmpty() {
		return ' '
	}
	if p.Colour == White {
		return whiteGlyphs[p.Kind]
	}
	return blackGlyphs[p.Kind]
}

var whiteGlyphs = [...]rune{' ', '♙', '♘', '♗', '♖', '♕', '♔'}

var blackGlyphs = [...]rune{' ', '♟', '♞', '♝', '♜', '♛', '♚'}

// String returns a short description such as "White Rook (moved)".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	s := p.Colour.String() + " " + p.Kind.String()
	if p.Kind.TracksMoved() && p.Moved {
		s += " (moved)"
	}
	return s
}
