package chess

import (
	"fmt"
	"math/bits"
)

// Square addresses one board square by file (0 = a) and rank (0 = 1).
type Square struct {
	File int
	Rank int
}

// Sq builds a square from file and rank indices.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square df files and dr ranks away, and whether it is on the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	t := Square{File: s.File + df, Rank: s.Rank + dr}
	return t, t.Valid()
}

// Index returns the 0-63 index of the square, a1 = 0, h8 = 63.
func (s Square) Index() int {
	return s.Rank*BoardSize + s.File
}

// SquareFromIndex is the inverse of Index.
func SquareFromIndex(i int) Square {
	return Square{File: i % BoardSize, Rank: i / BoardSize}
}

// IsLight reports whether the square is a light square (h1 is light).
func (s Square) IsLight() bool {
	return (s.File+s.Rank)%2 == 1
}

// String returns algebraic notation such as "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)})
}

// ParseSquare parses algebraic notation such as "e4" (case-insensitive file).
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return Square{}, false
	}
	f := s[0]
	if f >= 'A' && f <= 'H' {
		f += 'a' - 'A'
	}
	sq := Square{File: int(f) - FileBase, Rank: int(s[1]) - RankBase}
	return sq, sq.Valid()
}

// MustSquare parses algebraic notation and panics on failure.
// Intended for constants and tests.
func MustSquare(s string) Square {
	sq, ok := ParseSquare(s)
	if !ok {
		panic("chess: invalid square " + s)
	}
	return sq
}

// SquareSet is a set of board squares, one bit per square index.
type SquareSet uint64

// SetOf builds a set from the given squares; off-board squares are ignored.
func SetOf(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s = s.With(sq)
	}
	return s
}

// With returns the set with sq added.
func (s SquareSet) With(sq Square) SquareSet {
	if !sq.Valid() {
		return s
	}
	return s | 1<<uint(sq.Index())
}

// Has reports whether sq is a member.
func (s SquareSet) Has(sq Square) bool {
	return sq.Valid() && s&(1<<uint(sq.Index())) != 0
}

// Len returns the number of members.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// IsEmpty reports whether the set has no members.
func (s SquareSet) IsEmpty() bool {
	return s == 0
}

// Squares returns the members in index order (a1, b1, ..., h8).
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for v := uint64(s); v != 0; v &= v - 1 {
		out = append(out, SquareFromIndex(bits.TrailingZeros64(v)))
	}
	return out
}

// String lists the members in algebraic notation.
func (s SquareSet) String() string {
	out := "{"
	for i, sq := range s.Squares() {
		if i > 0 {
			out += " "
		}
		out += sq.String()
	}
	return out + "}"
}
