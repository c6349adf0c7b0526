// Package engine provides chess move generation, validation and board manipulation.
package engine

import (
	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

// ApplyMove validates m against the legal moves of its origin square and
// returns the state after it. s is never modified. The move is matched on
// From, To and Class; a promotion move must carry a promotion kind.
func ApplyMove(s *GameState, m chess.Move) (*GameState, error) {
	legal, ok := findLegal(s, m)
	if !ok {
		return nil, moveError(s, m, errors.ErrIllegalMove)
	}

	if legal.Class == chess.Promotion {
		if m.Promotion == chess.Empty {
			return nil, moveError(s, m, errors.ErrPromotionRequired)
		}
		if !m.Promotion.IsPromotionKind() {
			return nil, moveError(s, m, errors.ErrIllegalMove)
		}
		legal.Promotion = m.Promotion
	} else if m.Promotion != chess.Empty {
		return nil, moveError(s, m, errors.ErrIllegalMove)
	}

	next := play(s, legal)
	if !hasBothKings(&next.Board) {
		return nil, moveError(s, m, errors.ErrIllegalMove)
	}
	return next, nil
}

// findLegal returns the generated legal move matching m.
func findLegal(s *GameState, m chess.Move) (chess.Move, bool) {
	if !m.From.Valid() || !m.To.Valid() {
		return chess.Move{}, false
	}
	for _, legal := range LegalMovesFrom(s, m.From) {
		if legal.SameAs(m) {
			return legal, true
		}
	}
	return chess.Move{}, false
}

func moveError(s *GameState, m chess.Move, err error) error {
	return &errors.MoveError{Err: err, Move: m.String(), FEN: StateToFEN(s)}
}

// play applies an already validated move to a copy of s.
func play(s *GameState, m chess.Move) *GameState {
	colour := s.ToMove
	next := s.Copy()

	movePieces(&next.Board, m, colour)

	oldRights := next.Castling
	updateCastlingRights(&next.Castling, m, colour)

	// Set en passant square if double pawn push
	next.EnPassant = false
	if m.Class == chess.DoublePawnPush {
		next.EnPassant = true
		next.EPSquare = chess.Sq(m.From.File, m.From.Rank+chess.ColourOffset(colour))
	}

	// Update halfmove clock
	irreversible := m.Piece == chess.Pawn || m.IsCapture()
	if irreversible {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}

	if colour == chess.Black {
		next.MoveNumber++
	}
	next.ToMove = colour.Opposite()

	if irreversible || oldRights != next.Castling {
		next.history.Reset()
	}
	next.history.Push(next.Key())

	return next
}

// movePieces updates piece placement for m made by colour. A promotion
// without a chosen kind places a queen, which is enough for legality tests
// since only occupancy of the destination matters there.
func movePieces(board *chess.Board, m chess.Move, colour chess.Colour) {
	piece := board.Get(m.From)
	board.Clear(m.From)

	switch m.Class {
	case chess.EnPassantCapture:
		// Remove the captured pawn, which sits beside the origin square
		board.Clear(chess.Sq(m.To.File, m.From.Rank))

	case chess.CastleKingside, chess.CastleQueenside:
		moveCastlingRook(board, m.Class, colour)

	case chess.Promotion:
		kind := m.Promotion
		if kind == chess.Empty {
			kind = chess.Queen
		}
		piece = chess.MakePiece(colour, kind)
	}

	board.Set(m.To, piece)
}
