// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// Colours lists both colours, White first.
var Colours = [2]Colour{White, Black}

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

// PieceKind is the closed set of chess piece types.
// The zero value, Empty, marks an unoccupied square.
type PieceKind int

const (
	Empty PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// PromotionKinds are the kinds a pawn may promote to, in the order a
// chooser presents them.
var PromotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsPromotionKind reports whether a pawn may promote to k.
func (k PieceKind) IsPromotionKind() bool {
	return k == Queen || k == Rook || k == Bishop || k == Knight
}

// PieceKindFromLetter converts a letter (either case) to a piece kind.
// Unknown letters return Empty.
func PieceKindFromLetter(c byte) PieceKind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return Empty
	}
}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Kind   PieceKind
	Colour Colour
}

// NoPiece is the content of an empty square.
var NoPiece = Piece{}

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return MakePiece(Black, kind)
}

// IsEmpty reports whether p is the empty square marker.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind PieceKind) bool {
	return p.Kind == kind && p.Colour == colour && kind != Empty
}

// Letter returns the FEN letter for the piece: uppercase for White,
// lowercase for Black, '.' for an empty square.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

var symbols = [2][NumPieceKinds]rune{
	White: {' ', '♙', '♘', '♗', '♖', '♕', '♔'},
	Black: {' ', '♟', '♞', '♝', '♜', '♛', '♚'},
}

// Symbol returns the Unicode chess glyph for the piece, or a space for an
// empty square.
func (p Piece) Symbol() rune {
	if p.IsEmpty() {
		return ' '
	}
	return symbols[p.Colour][p.Kind]
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	FileBase = 'a'
)

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank of the given colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnStartRank returns the rank a pawn of the given colour starts on.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the far rank on which a pawn of the given colour promotes.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}
