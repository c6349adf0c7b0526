package chess

// Board is the 8x8 piece placement, indexed Squares[file][rank].
// It is a plain value: assigning a Board copies it.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[file][0] = W(backRank[file])
		b.Squares[file][1] = W(Pawn)
		b.Squares[file][6] = B(Pawn)
		b.Squares[file][7] = B(backRank[file])
	}
}

// Get returns the piece at sq; off-board squares read as empty.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.Squares[sq.File][sq.Rank]
}

// Set places a piece at sq; off-board squares are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if sq.Valid() {
		b.Squares[sq.File][sq.Rank] = p
	}
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Set(sq, NoPiece)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.Squares[file][rank].Is(colour, King) {
				return Square{File: file, Rank: rank}, true
			}
		}
	}
	return Square{}, false
}

// Count returns how many pieces of the given colour and kind are on the board.
func (b *Board) Count(colour Colour, kind PieceKind) int {
	n := 0
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.Squares[file][rank].Is(colour, kind) {
				n++
			}
		}
	}
	return n
}

// Occupied returns the set of squares holding a piece of the given colour.
func (b *Board) Occupied(colour Colour) SquareSet {
	var s SquareSet
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			p := b.Squares[file][rank]
			if !p.IsEmpty() && p.Colour == colour {
				s = s.With(Square{File: file, Rank: rank})
			}
		}
	}
	return s
}

// CastleRights are the castling options still open to one colour.
type CastleRights struct {
	Kingside  bool
	Queenside bool
}

// CastlingRights holds the rights of both colours, indexed by Colour.
type CastlingRights [2]CastleRights

// AllCastlingRights is the rights set of the standard starting position.
var AllCastlingRights = CastlingRights{
	Black: {Kingside: true, Queenside: true},
	White: {Kingside: true, Queenside: true},
}

// Any reports whether any right remains.
func (c CastlingRights) Any() bool {
	return c[White].Kingside || c[White].Queenside || c[Black].Kingside || c[Black].Queenside
}
