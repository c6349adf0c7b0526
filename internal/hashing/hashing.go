// Package hashing provides Zobrist position keys and repetition tracking.
package hashing

import (
	"github.com/lgbarn/chess-go/internal/chess"
)

// NoEnPassant is passed as the en passant file when no capture is available.
const NoEnPassant = -1

var (
	pieceKeys    [2][chess.NumPieceKinds][chess.BoardSize * chess.BoardSize]uint64
	castlingKeys [2][2]uint64
	epKeys       [chess.BoardSize]uint64
	whiteToMove  uint64
)

func init() {
	// Fixed seed so keys are stable across runs.
	rng := splitMix64(0x9E3779B97F4A7C15)
	for c := 0; c < 2; c++ {
		for k := chess.Pawn; k < chess.NumPieceKinds; k++ {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = rng.next()
			}
		}
		castlingKeys[c][0] = rng.next()
		castlingKeys[c][1] = rng.next()
	}
	for f := range epKeys {
		epKeys[f] = rng.next()
	}
	whiteToMove = rng.next()
}

type splitMix64 uint64

func (s *splitMix64) next() uint64 {
	*s += 0x9E3779B97F4A7C15
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// PositionKey computes the Zobrist key of a position. epFile is the file of
// an en passant capture that is actually available, or NoEnPassant.
func PositionKey(board *chess.Board, toMove chess.Colour, castling chess.CastlingRights, epFile int) uint64 {
	var key uint64
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			p := board.Squares[file][rank]
			if p.IsEmpty() {
				continue
			}
			key ^= pieceKeys[p.Colour][p.Kind][chess.Sq(file, rank).Index()]
		}
	}
	for _, c := range chess.Colours {
		if castling[c].Kingside {
			key ^= castlingKeys[c][0]
		}
		if castling[c].Queenside {
			key ^= castlingKeys[c][1]
		}
	}
	if epFile >= 0 && epFile < chess.BoardSize {
		key ^= epKeys[epFile]
	}
	if toMove == chess.White {
		key ^= whiteToMove
	}
	return key
}

// History records the position keys reached since the last irreversible
// move, oldest first.
type History struct {
	keys []uint64
}

// Push records a newly reached position.
func (h *History) Push(key uint64) {
	h.keys = append(h.keys, key)
}

// Count returns how many times key occurs in the history.
func (h *History) Count(key uint64) int {
	n := 0
	for _, k := range h.keys {
		if k == key {
			n++
		}
	}
	return n
}

// Reset forgets all recorded positions.
func (h *History) Reset() {
	h.keys = nil
}

// Clone returns an independent copy.
func (h *History) Clone() History {
	keys := make([]uint64, len(h.keys))
	copy(keys, h.keys)
	return History{keys: keys}
}
