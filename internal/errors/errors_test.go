package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrPromotionRequired", ErrPromotionRequired, ErrPromotionRequired},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{ErrIllegalMove, ErrInvalidSquare, ErrPromotionRequired, ErrInvalidFEN, ErrInvalidConfig}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:  ErrIllegalMove,
				Move: "e2e5",
				FEN:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			},
			contains: []string{"e2e5", "rnbqkbnr", "illegal move"},
		},
		{
			name:     "error only",
			err:      &MoveError{Err: ErrPromotionRequired},
			contains: []string{"promotion piece required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As and errors.Is work through wrapping
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{Err: ErrIllegalMove, Move: "e1g1"}
	wrapped := fmt.Errorf("apply failed: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As(wrapped, *MoveError) = false, want true")
	}
	if extracted.Move != "e1g1" {
		t.Errorf("extracted.Move = %q, want e1g1", extracted.Move)
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

func TestSquareError(t *testing.T) {
	err := &SquareError{File: 9, Rank: -1}
	if !errors.Is(err, ErrInvalidSquare) {
		t.Error("errors.Is(SquareError, ErrInvalidSquare) = false, want true")
	}
	if !strings.Contains(err.Error(), "file 9") {
		t.Errorf("Error() = %q, should mention the file", err.Error())
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	err := Wrapf(ErrInvalidFEN, "loading %s", "start position")
	if !errors.Is(err, ErrInvalidFEN) {
		t.Error("wrapped error lost its sentinel")
	}
	if err.Error() != "loading start position: invalid FEN string" {
		t.Errorf("Error() = %q", err.Error())
	}
}
