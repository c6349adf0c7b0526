package engine

import (
	"github.com/lgbarn/chess-go/internal/chess"
)

// StatusKind classifies the state of a game.
type StatusKind int

const (
	InProgress StatusKind = iota
	Check
	Checkmate
	Stalemate
	Draw
)

// String returns the name of the status kind.
func (k StatusKind) String() string {
	switch k {
	case InProgress:
		return "in progress"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// DrawReason says which rule ended the game in a draw.
type DrawReason int

const (
	NoDraw DrawReason = iota
	InsufficientMaterial
	FiftyMoveRule
	ThreefoldRepetition
)

// String returns the name of the draw rule.
func (r DrawReason) String() string {
	switch r {
	case InsufficientMaterial:
		return "insufficient material"
	case FiftyMoveRule:
		return "fifty-move rule"
	case ThreefoldRepetition:
		return "threefold repetition"
	default:
		return "none"
	}
}

// Status is the outcome of evaluating a position.
type Status struct {
	Kind StatusKind

	// Colour is the side in check for Check and the winner for Checkmate.
	Colour chess.Colour

	// Reason is set when Kind is Draw.
	Reason DrawReason
}

// IsTerminal reports whether the game has ended.
func (s Status) IsTerminal() bool {
	return s.Kind == Checkmate || s.Kind == Stalemate || s.Kind == Draw
}

// Result returns the conventional result string: "1-0", "0-1", "1/2-1/2",
// or "*" while the game continues.
func (s Status) Result() string {
	switch s.Kind {
	case Checkmate:
		if s.Colour == chess.White {
			return "1-0"
		}
		return "0-1"
	case Stalemate, Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// String describes the status, e.g. "checkmate, White wins".
func (s Status) String() string {
	switch s.Kind {
	case Check:
		return s.Colour.String() + " in check"
	case Checkmate:
		return "checkmate, " + s.Colour.String() + " wins"
	case Draw:
		return "draw by " + s.Reason.String()
	default:
		return s.Kind.String()
	}
}

// Status evaluates the position for the side to move. Checkmate and
// stalemate take precedence over the optional draw rules.
func (s *GameState) Status() Status {
	colour := s.ToMove
	inCheck := IsInCheck(&s.Board, colour)

	if !HasLegalMoves(s) {
		if inCheck {
			return Status{Kind: Checkmate, Colour: colour.Opposite()}
		}
		return Status{Kind: Stalemate}
	}

	if reason := drawReason(s); reason != NoDraw {
		return Status{Kind: Draw, Reason: reason}
	}

	if inCheck {
		return Status{Kind: Check, Colour: colour}
	}
	return Status{Kind: InProgress}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(s *GameState) bool {
	return IsInCheck(&s.Board, s.ToMove) && !HasLegalMoves(s)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(s *GameState) bool {
	return !IsInCheck(&s.Board, s.ToMove) && !HasLegalMoves(s)
}

// drawReason returns the first enabled draw rule that applies.
func drawReason(s *GameState) DrawReason {
	if s.Options.InsufficientMaterial && HasInsufficientMaterial(&s.Board) {
		return InsufficientMaterial
	}
	if s.Options.FiftyMoveRule && s.HalfmoveClock >= 100 {
		return FiftyMoveRule
	}
	if s.Options.ThreefoldRepetition && s.RepetitionCount() >= 3 {
		return ThreefoldRepetition
	}
	return NoDraw
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.PieceKind
	var whiteBishopOnLight, blackBishopOnLight bool

	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			p := board.Squares[file][rank]
			if p.IsEmpty() || p.Kind == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if p.Kind == chess.Pawn || p.Kind == chess.Rook || p.Kind == chess.Queen {
				return false
			}

			onLight := chess.Sq(file, rank).IsLight()
			if p.Colour == chess.White {
				whitePieces = append(whitePieces, p.Kind)
				if p.Kind == chess.Bishop {
					whiteBishopOnLight = onLight
				}
			} else {
				blackPieces = append(blackPieces, p.Kind)
				if p.Kind == chess.Bishop {
					blackBishopOnLight = onLight
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}
