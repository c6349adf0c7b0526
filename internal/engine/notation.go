package engine

import (
	"fmt"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

// ParseMove resolves long algebraic notation ("e2e4", "e7e8q", "e1g1")
// against the legal moves of s. The returned move is the engine's own
// generated move, with the promotion kind filled in when given.
func ParseMove(s *GameState, text string) (chess.Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return chess.Move{}, fmt.Errorf("move %q: %w", text, errors.ErrIllegalMove)
	}

	from, okFrom := chess.ParseSquare(text[0:2])
	to, okTo := chess.ParseSquare(text[2:4])
	if !okFrom || !okTo {
		return chess.Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidSquare)
	}

	promotion := chess.Empty
	if len(text) == 5 {
		promotion = chess.PieceKindFromLetter(text[4])
		if !promotion.IsPromotionKind() {
			return chess.Move{}, fmt.Errorf("move %q: bad promotion piece: %w", text, errors.ErrIllegalMove)
		}
	}

	for _, m := range LegalMovesFrom(s, from) {
		if m.To != to {
			continue
		}
		if m.Class == chess.Promotion {
			return m.WithPromotion(promotion), nil
		}
		if promotion != chess.Empty {
			break
		}
		return m, nil
	}
	return chess.Move{}, fmt.Errorf("move %q: %w", text, errors.ErrIllegalMove)
}

// PlayMoves applies a sequence of long algebraic moves starting from s and
// returns the final state. It stops at the first move that fails.
func PlayMoves(s *GameState, moves ...string) (*GameState, error) {
	for i, text := range moves {
		m, err := ParseMove(s, text)
		if err != nil {
			return s, errors.Wrapf(err, "ply %d", i+1)
		}
		next, err := ApplyMove(s, m)
		if err != nil {
			return s, errors.Wrapf(err, "ply %d", i+1)
		}
		s = next
	}
	return s, nil
}
