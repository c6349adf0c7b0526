package engine

import (
	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/hashing"
)

// Options selects the optional draw rules evaluated by Status.
type Options struct {
	// InsufficientMaterial declares a draw when neither side can mate.
	InsufficientMaterial bool

	// FiftyMoveRule declares a draw after 100 half-moves without a pawn
	// move or capture.
	FiftyMoveRule bool

	// ThreefoldRepetition declares a draw when the current position has
	// occurred three times.
	ThreefoldRepetition bool
}

// DefaultOptions returns the draw rules enabled when nothing is configured.
func DefaultOptions() Options {
	return Options{InsufficientMaterial: true}
}

// GameState is a complete chess position plus the bookkeeping needed to
// continue the game from it.
type GameState struct {
	Board chess.Board

	// Who has the next move.
	ToMove chess.Colour

	// Castling options still open to each colour. Once revoked a right
	// never comes back.
	Castling chess.CastlingRights

	// Is EnPassant capture possible? If so then EPSquare is the square
	// the capturing pawn lands on.
	EnPassant bool
	EPSquare  chess.Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number, starting at 1 and incremented after Black moves.
	MoveNumber uint

	Options Options

	// Position keys since the last irreversible move, current position last.
	history hashing.History
}

// NewInitialState creates a game at the standard starting position.
func NewInitialState() *GameState {
	s := &GameState{
		ToMove:     chess.White,
		Castling:   chess.AllCastlingRights,
		MoveNumber: 1,
		Options:    DefaultOptions(),
	}
	s.Board.SetupInitialPosition()
	s.history.Push(s.Key())
	return s
}

// Copy creates a deep copy of the state.
func (s *GameState) Copy() *GameState {
	c := *s
	c.history = s.history.Clone()
	return &c
}

// Key returns the Zobrist key of the position.
func (s *GameState) Key() uint64 {
	epFile := hashing.NoEnPassant
	if s.enPassantCapturable() {
		epFile = s.EPSquare.File
	}
	return hashing.PositionKey(&s.Board, s.ToMove, s.Castling, epFile)
}

// RepetitionCount returns how many times the current position has occurred
// since the last irreversible move, including now.
func (s *GameState) RepetitionCount() int {
	return s.history.Count(s.Key())
}

// enPassantCapturable reports whether the side to move can legally capture
// the pawn that just made a double push.
func (s *GameState) enPassantCapturable() bool {
	if !s.EnPassant {
		return false
	}
	pawn := chess.MakePiece(s.ToMove, chess.Pawn)
	fromRank := s.EPSquare.Rank - chess.ColourOffset(s.ToMove)
	for _, df := range []int{-1, 1} {
		from := chess.Sq(s.EPSquare.File+df, fromRank)
		if !from.Valid() || s.Board.Get(from) != pawn {
			continue
		}
		m := chess.Move{From: from, To: s.EPSquare, Class: chess.EnPassantCapture, Piece: chess.Pawn, Captured: chess.Pawn}
		if leavesKingSafe(s, m) {
			return true
		}
	}
	return false
}

// hasBothKings reports whether each colour has exactly one king.
func hasBothKings(board *chess.Board) bool {
	return board.Count(chess.White, chess.King) == 1 && board.Count(chess.Black, chess.King) == 1
}
