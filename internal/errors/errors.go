// Package errors provides sentinel errors and error types for the chess core.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that is not in the legal set of the
	// current position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSquare indicates coordinates outside the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrPromotionRequired indicates a promotion move submitted without
	// a promotion piece kind.
	ErrPromotionRequired = errors.New("promotion piece required")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejected move with the position it was tried in.
// It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	Move string // The move in long algebraic notation (if known)
	FEN  string // The position the move was tried in (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}

	context := strings.Join(parts, ", ")
	if e.Err == nil {
		return context
	}
	if context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// SquareError reports out-of-board coordinates.
type SquareError struct {
	File int
	Rank int
}

// Error returns the offending coordinates.
func (e *SquareError) Error() string {
	return fmt.Sprintf("%v: file %d, rank %d", ErrInvalidSquare, e.File, e.Rank)
}

// Unwrap returns ErrInvalidSquare.
func (e *SquareError) Unwrap() error {
	return ErrInvalidSquare
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
