package engine

import "github.com/lgbarn/chess-go/internal/chess"

// LegalMovesFrom returns the legal moves of the piece on sq. The result is
// empty if sq is off the board, empty, holds a piece of the side not to
// move, or that piece has no legal moves. Promotion moves appear once per
// destination with no promotion kind chosen.
func LegalMovesFrom(s *GameState, sq chess.Square) []chess.Move {
	p := s.Board.Get(sq)
	if p.IsEmpty() || p.Colour != s.ToMove {
		return nil
	}

	var legal []chess.Move
	for _, m := range pseudoLegalMoves(s, sq) {
		if leavesKingSafe(s, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMoves returns every legal move of the side to move.
func LegalMoves(s *GameState) []chess.Move {
	var moves []chess.Move
	for _, from := range s.Board.Occupied(s.ToMove).Squares() {
		moves = append(moves, LegalMovesFrom(s, from)...)
	}
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(s *GameState) bool {
	for _, from := range s.Board.Occupied(s.ToMove).Squares() {
		for _, m := range pseudoLegalMoves(s, from) {
			if leavesKingSafe(s, m) {
				return true
			}
		}
	}
	return false
}

// Destinations returns the set of squares the piece on sq can legally reach.
func Destinations(s *GameState, sq chess.Square) chess.SquareSet {
	var set chess.SquareSet
	for _, m := range LegalMovesFrom(s, sq) {
		set = set.With(m.To)
	}
	return set
}

// leavesKingSafe makes the move on a copied board and checks that the
// mover's king is not attacked afterwards.
func leavesKingSafe(s *GameState, m chess.Move) bool {
	testBoard := s.Board
	movePieces(&testBoard, m, s.ToMove)
	return !IsInCheck(&testBoard, s.ToMove)
}

// pseudoLegalMoves generates the moves of the piece on from following its
// movement pattern, without checking whether the mover's king is left in
// check. Castling moves are already filtered for attacked transit squares.
func pseudoLegalMoves(s *GameState, from chess.Square) []chess.Move {
	p := s.Board.Get(from)
	if p.IsEmpty() {
		return nil
	}

	if p.Kind == chess.Pawn {
		return pawnMoves(s, from, p.Colour)
	}

	var moves []chess.Move
	for _, to := range Attacks(&s.Board, from).Squares() {
		target := s.Board.Get(to)
		switch {
		case target.IsEmpty():
			moves = append(moves, chess.Move{From: from, To: to, Class: chess.Normal, Piece: p.Kind})
		case target.Colour != p.Colour && target.Kind != chess.King:
			moves = append(moves, chess.Move{From: from, To: to, Class: chess.Capture, Piece: p.Kind, Captured: target.Kind})
		}
	}

	if p.Kind == chess.King {
		moves = append(moves, castlingMoves(s, from, p.Colour)...)
	}
	return moves
}

// pawnMoves generates pushes, double pushes, captures, en passant captures
// and promotions for the pawn on from.
func pawnMoves(s *GameState, from chess.Square, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	dir := chess.ColourOffset(colour)
	promoRank := chess.PromotionRank(colour)

	add := func(to chess.Square, class chess.MoveClass, captured chess.PieceKind) {
		if to.Rank == promoRank {
			class = chess.Promotion
		}
		moves = append(moves, chess.Move{From: from, To: to, Class: class, Piece: chess.Pawn, Captured: captured})
	}

	// Forward move
	if to, ok := from.Offset(0, dir); ok && s.Board.Get(to).IsEmpty() {
		add(to, chess.Normal, chess.Empty)

		// Double push from starting rank
		if from.Rank == chess.PawnStartRank(colour) {
			if to2, ok := from.Offset(0, 2*dir); ok && s.Board.Get(to2).IsEmpty() {
				add(to2, chess.DoublePawnPush, chess.Empty)
			}
		}
	}

	// Captures
	for _, df := range pawnCaptureDirs {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		target := s.Board.Get(to)
		if !target.IsEmpty() && target.Colour != colour && target.Kind != chess.King {
			add(to, chess.Capture, target.Kind)
			continue
		}
		// En passant
		if target.IsEmpty() && s.EnPassant && to == s.EPSquare {
			victim := chess.Sq(to.File, from.Rank)
			if s.Board.Get(victim).Is(colour.Opposite(), chess.Pawn) {
				add(to, chess.EnPassantCapture, chess.Pawn)
			}
		}
	}

	return moves
}
