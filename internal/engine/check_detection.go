package engine

import "github.com/lgbarn/chess-go/internal/chess"

var (
	knightOffsets   = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs    = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allSlidingDirs  = append(append([][2]int{}, diagonalDirs...), straightDirs...)
	pawnCaptureDirs = []int{-1, 1}
)

// Attacks returns the squares attacked by the piece standing on from.
// Squares holding friendly pieces are included, pawn pushes are not.
// This is the raw movement pattern; it never consults check legality.
func Attacks(board *chess.Board, from chess.Square) chess.SquareSet {
	p := board.Get(from)

	switch p.Kind {
	case chess.Pawn:
		var set chess.SquareSet
		dir := chess.ColourOffset(p.Colour)
		for _, df := range pawnCaptureDirs {
			if to, ok := from.Offset(df, dir); ok {
				set = set.With(to)
			}
		}
		return set

	case chess.Knight:
		return stepAttacks(from, knightOffsets)

	case chess.King:
		return stepAttacks(from, kingOffsets)

	case chess.Bishop:
		return slideAttacks(board, from, diagonalDirs)

	case chess.Rook:
		return slideAttacks(board, from, straightDirs)

	case chess.Queen:
		return slideAttacks(board, from, allSlidingDirs)
	}

	return 0
}

// stepAttacks collects the on-board squares at fixed offsets from from.
func stepAttacks(from chess.Square, offsets [][2]int) chess.SquareSet {
	var set chess.SquareSet
	for _, off := range offsets {
		if to, ok := from.Offset(off[0], off[1]); ok {
			set = set.With(to)
		}
	}
	return set
}

// slideAttacks walks each direction until the edge or the first occupied
// square, which is included.
func slideAttacks(board *chess.Board, from chess.Square, dirs [][2]int) chess.SquareSet {
	var set chess.SquareSet
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			set = set.With(to)
			if !board.Get(to).IsEmpty() {
				break // Blocked
			}
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return set
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			p := board.Squares[file][rank]
			if p.IsEmpty() || p.Colour != byColour {
				continue
			}
			if Attacks(board, chess.Sq(file, rank)).Has(sq) {
				return true
			}
		}
	}
	return false
}

// IsInCheck returns true if the given colour's king is in check.
// A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}
