package testutil

import (
	"testing"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/engine"
)

// Positions shared by tests across packages.
const (
	// White to move can promote e7-e8; the black king on a2 is never in check
	// from the new piece.
	PromotionFEN = "8/4P3/8/8/8/8/k7/4K3 w - - 0 1"

	// The shortest possible game, won by Black.
	FoolsMateMoves = "f2f3 e7e5 g2g4 d8h4"

	// Black to move is stalemated.
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
)

// MustState parses a FEN string. It calls t.Fatal if the FEN is rejected.
func MustState(t *testing.T, fen string) *engine.GameState {
	t.Helper()
	s, err := engine.NewStateFromFEN(fen)
	if err != nil {
		t.Fatalf("invalid test FEN %q: %v", fen, err)
	}
	return s
}

// MustPlay applies long algebraic moves ("e2e4", "e7e8q") from s.
// It calls t.Fatal at the first move that is rejected.
func MustPlay(t *testing.T, s *engine.GameState, moves ...string) *engine.GameState {
	t.Helper()
	next, err := engine.PlayMoves(s, moves...)
	if err != nil {
		t.Fatalf("failed to play %v: %v", moves, err)
	}
	return next
}

// Sq is shorthand for chess.MustSquare in table-driven tests.
func Sq(name string) chess.Square {
	return chess.MustSquare(name)
}

// Squares builds a set from algebraic square names.
func Squares(names ...string) chess.SquareSet {
	var set chess.SquareSet
	for _, n := range names {
		set = set.With(chess.MustSquare(n))
	}
	return set
}

// AssertFEN fails if the FEN of s differs from want.
func AssertFEN(t *testing.T, s *engine.GameState, want string, msgAndArgs ...interface{}) {
	t.Helper()
	AssertEqual(t, engine.StateToFEN(s), want, msgAndArgs...)
}
