package engine

import "github.com/lgbarn/chess-go/internal/chess"

// Files used by standard castling.
const (
	kingFile          = 4
	kingsideRookFile  = 7
	queensideRookFile = 0
)

// castleSide describes the squares involved in castling to one side.
type castleSide struct {
	class    chess.MoveClass
	rookFrom int
	rookTo   int
	kingTo   int
	empty    []int // files that must be unoccupied
	transit  []int // files the king crosses or lands on, which must not be attacked
}

var (
	kingside = castleSide{
		class:    chess.CastleKingside,
		rookFrom: kingsideRookFile,
		rookTo:   5,
		kingTo:   6,
		empty:    []int{5, 6},
		transit:  []int{5, 6},
	}
	queenside = castleSide{
		class:    chess.CastleQueenside,
		rookFrom: queensideRookFile,
		rookTo:   3,
		kingTo:   2,
		empty:    []int{1, 2, 3},
		transit:  []int{3, 2},
	}
)

// sideFor returns the castling geometry for a castling move class.
func sideFor(class chess.MoveClass) castleSide {
	if class == chess.CastleKingside {
		return kingside
	}
	return queenside
}

// castlingMoves generates the castling moves available to the king on from.
// Unlike other pseudo-legal moves these are fully checked: the king may not
// castle out of, through, or into check.
func castlingMoves(s *GameState, from chess.Square, colour chess.Colour) []chess.Move {
	rank := chess.HomeRank(colour)
	if from != chess.Sq(kingFile, rank) {
		return nil
	}

	rights := s.Castling[colour]
	if !rights.Kingside && !rights.Queenside {
		return nil
	}

	enemy := colour.Opposite()
	if IsSquareAttacked(&s.Board, from, enemy) {
		return nil
	}

	var moves []chess.Move
	for _, side := range []castleSide{kingside, queenside} {
		if side.class == chess.CastleKingside && !rights.Kingside {
			continue
		}
		if side.class == chess.CastleQueenside && !rights.Queenside {
			continue
		}
		if !s.Board.Get(chess.Sq(side.rookFrom, rank)).Is(colour, chess.Rook) {
			continue
		}
		if !filesEmpty(&s.Board, rank, side.empty) {
			continue
		}
		if filesAttacked(&s.Board, rank, side.transit, enemy) {
			continue
		}
		moves = append(moves, chess.Move{
			From:  from,
			To:    chess.Sq(side.kingTo, rank),
			Class: side.class,
			Piece: chess.King,
		})
	}
	return moves
}

func filesEmpty(board *chess.Board, rank int, files []int) bool {
	for _, f := range files {
		if !board.Get(chess.Sq(f, rank)).IsEmpty() {
			return false
		}
	}
	return true
}

func filesAttacked(board *chess.Board, rank int, files []int, by chess.Colour) bool {
	for _, f := range files {
		if IsSquareAttacked(board, chess.Sq(f, rank), by) {
			return true
		}
	}
	return false
}

// moveCastlingRook moves the rook that accompanies a castling king.
func moveCastlingRook(board *chess.Board, class chess.MoveClass, colour chess.Colour) {
	side := sideFor(class)
	rank := chess.HomeRank(colour)
	rookFrom := chess.Sq(side.rookFrom, rank)
	rook := board.Get(rookFrom)
	board.Clear(rookFrom)
	board.Set(chess.Sq(side.rookTo, rank), rook)
}

// updateCastlingRights revokes the rights touched by a move: a king move
// loses both rights, and any move from or onto a rook's home square loses
// the right that rook carried, whether the rook moved or was captured.
func updateCastlingRights(rights *chess.CastlingRights, m chess.Move, colour chess.Colour) {
	if m.Piece == chess.King {
		rights[colour] = chess.CastleRights{}
	}
	revokeCornerRight(rights, m.From)
	revokeCornerRight(rights, m.To)
}

// revokeCornerRight clears the right tied to a rook home square.
func revokeCornerRight(rights *chess.CastlingRights, sq chess.Square) {
	for _, c := range chess.Colours {
		if sq.Rank != chess.HomeRank(c) {
			continue
		}
		switch sq.File {
		case kingsideRookFile:
			rights[c].Kingside = false
		case queensideRookFile:
			rights[c].Queenside = false
		}
	}
}
