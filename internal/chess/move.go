package chess

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	Normal MoveClass = iota
	Capture
	DoublePawnPush
	EnPassantCapture
	CastleKingside
	CastleQueenside
	Promotion
)

// String returns the name of the move class.
func (c MoveClass) String() string {
	switch c {
	case Normal:
		return "normal"
	case Capture:
		return "capture"
	case DoublePawnPush:
		return "double-pawn-push"
	case EnPassantCapture:
		return "en-passant"
	case CastleKingside:
		return "castle-kingside"
	case CastleQueenside:
		return "castle-queenside"
	case Promotion:
		return "promotion"
	default:
		return "unknown"
	}
}

// Move is a value describing one half-move. Moves are produced by the
// engine's generator; a promotion move is generated with Promotion set
// to Empty and must be completed with WithPromotion before it is applied.
type Move struct {
	From  Square
	To    Square
	Class MoveClass

	// The piece kind being moved.
	Piece PieceKind

	// The piece kind captured (Empty if no capture).
	Captured PieceKind

	// The piece kind promoted to (Empty if not chosen or not a promotion).
	Promotion PieceKind
}

// WithPromotion returns a copy of m with the promotion kind set.
func (m Move) WithPromotion(kind PieceKind) Move {
	m.Promotion = kind
	return m
}

// IsPromotion reports whether the move is a pawn reaching the far rank.
func (m Move) IsPromotion() bool {
	return m.Class == Promotion
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Captured != Empty
}

// SameAs reports whether m and o describe the same board transition,
// ignoring the promotion choice.
func (m Move) SameAs(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Class == o.Class
}

// String returns long algebraic notation such as "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(rune(m.Promotion.Letter() + 'a' - 'A'))
	}
	return s
}
