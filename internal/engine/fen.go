package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewStateFromFEN creates a game state from a FEN string. The piece
// placement field is required; missing trailing fields take their
// starting-position defaults. Positions without exactly one king per
// colour, or where the side not to move is in check, are rejected.
func NewStateFromFEN(fen string) (*GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	if len(parts) > 6 {
		return nil, fmt.Errorf("too many fields: %w", errors.ErrInvalidFEN)
	}

	s := &GameState{
		ToMove:     chess.White,
		MoveNumber: 1,
		Options:    DefaultOptions(),
	}

	if err := parsePiecePositions(&s.Board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(s, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(s, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(s, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(s, parts); err != nil {
		return nil, err
	}
	if err := validatePosition(s); err != nil {
		return nil, err
	}

	s.history.Push(s.Key())
	return s, nil
}

// MustStateFromFEN is like NewStateFromFEN but panics on error.
// Intended for constants and tests.
func MustStateFromFEN(fen string) *GameState {
	s, err := NewStateFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return s
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				kind := chess.PieceKindFromLetter(byte(c))
				if kind == chess.Empty || c > unicode.MaxASCII {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if file >= chess.BoardSize {
					return fmt.Errorf("rank %d too long: %w", rank+1, errors.ErrInvalidFEN)
				}
				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(chess.Sq(file, rank), chess.MakePiece(colour, kind))
				file++
			}
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(s *GameState, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		s.ToMove = chess.White
	case "b":
		s.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Rights
// whose king or rook is not on its home square are dropped.
func parseCastlingRights(s *GameState, parts []string) error {
	if len(parts) < 3 {
		s.Castling = chess.AllCastlingRights
	} else if parts[2] != "-" {
		for _, c := range parts[2] {
			switch c {
			case 'K':
				s.Castling[chess.White].Kingside = true
			case 'Q':
				s.Castling[chess.White].Queenside = true
			case 'k':
				s.Castling[chess.Black].Kingside = true
			case 'q':
				s.Castling[chess.Black].Queenside = true
			default:
				return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
			}
		}
	}

	for _, colour := range chess.Colours {
		rank := chess.HomeRank(colour)
		if !s.Board.Get(chess.Sq(kingFile, rank)).Is(colour, chess.King) {
			s.Castling[colour] = chess.CastleRights{}
			continue
		}
		if !s.Board.Get(chess.Sq(kingsideRookFile, rank)).Is(colour, chess.Rook) {
			s.Castling[colour].Kingside = false
		}
		if !s.Board.Get(chess.Sq(queensideRookFile, rank)).Is(colour, chess.Rook) {
			s.Castling[colour].Queenside = false
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field. A target not
// matching a pawn that has just made a double push is dropped.
func parseEnPassant(s *GameState, parts []string) error {
	s.EnPassant = false
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}

	sq, ok := chess.ParseSquare(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	mover := s.ToMove.Opposite()
	wantRank := chess.PawnStartRank(mover) + chess.ColourOffset(mover)
	if sq.Rank != wantRank {
		return fmt.Errorf("en passant square %s on wrong rank: %w", parts[3], errors.ErrInvalidFEN)
	}

	pushed := chess.Sq(sq.File, sq.Rank+chess.ColourOffset(mover))
	if s.Board.Get(pushed).Is(mover, chess.Pawn) && s.Board.Get(sq).IsEmpty() {
		s.EnPassant = true
		s.EPSquare = sq
	}
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(s *GameState, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		s.HalfmoveClock = uint(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil || n == 0 {
			return fmt.Errorf("invalid move number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		s.MoveNumber = uint(n)
	}
	return nil
}

// validatePosition enforces the invariants every reachable position has.
func validatePosition(s *GameState) error {
	for _, colour := range chess.Colours {
		if n := s.Board.Count(colour, chess.King); n != 1 {
			return fmt.Errorf("%v has %d kings: %w", colour, n, errors.ErrInvalidFEN)
		}
	}
	for file := 0; file < chess.BoardSize; file++ {
		for _, rank := range []int{0, chess.BoardSize - 1} {
			if s.Board.Get(chess.Sq(file, rank)).Kind == chess.Pawn {
				return fmt.Errorf("pawn on %v: %w", chess.Sq(file, rank), errors.ErrInvalidFEN)
			}
		}
	}
	if IsInCheck(&s.Board, s.ToMove.Opposite()) {
		return fmt.Errorf("side not to move is in check: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// StateToFEN converts a game state to a FEN string.
func StateToFEN(s *GameState) string {
	var sb strings.Builder

	writePiecePositions(&sb, &s.Board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, s)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, s)
	sb.WriteByte(' ')
	writeEnPassant(&sb, s)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", s.HalfmoveClock, s.MoveNumber)

	return sb.String()
}

// BoardToFEN returns only the piece placement field for a board.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.Sq(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, s *GameState) {
	if s.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, s *GameState) {
	if !s.Castling.Any() {
		sb.WriteByte('-')
		return
	}
	if s.Castling[chess.White].Kingside {
		sb.WriteByte('K')
	}
	if s.Castling[chess.White].Queenside {
		sb.WriteByte('Q')
	}
	if s.Castling[chess.Black].Kingside {
		sb.WriteByte('k')
	}
	if s.Castling[chess.Black].Queenside {
		sb.WriteByte('q')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, s *GameState) {
	if s.EnPassant {
		sb.WriteString(s.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
}
