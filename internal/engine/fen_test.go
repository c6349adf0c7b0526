package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-go/internal/errors"
)

func TestNewStateFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*GameState) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(s *GameState) bool {
				// Check some key squares
				return s.Board.Get(chess.MustSquare("e1")) == chess.W(chess.King) &&
					s.Board.Get(chess.MustSquare("e8")) == chess.B(chess.King) &&
					s.Board.Get(chess.MustSquare("e2")) == chess.W(chess.Pawn) &&
					s.Board.Get(chess.MustSquare("e7")) == chess.B(chess.Pawn) &&
					s.ToMove == chess.White &&
					s.Castling == chess.AllCastlingRights
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(s *GameState) bool {
				return s.Board.Get(chess.MustSquare("e4")) == chess.W(chess.Pawn) &&
					s.Board.Get(chess.MustSquare("e2")).IsEmpty() &&
					s.ToMove == chess.Black &&
					s.EnPassant &&
					s.EPSquare == chess.MustSquare("e3")
			},
		},
		{
			name: "sicilian defense",
			fen:  "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
			checkFn: func(s *GameState) bool {
				return s.Board.Get(chess.MustSquare("c5")) == chess.B(chess.Pawn) &&
					s.Board.Get(chess.MustSquare("e4")) == chess.W(chess.Pawn) &&
					s.ToMove == chess.White &&
					s.MoveNumber == 2
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(s *GameState) bool {
				return !s.Castling.Any()
			},
		},
		{
			name: "rights without rooks are dropped",
			fen:  "4k3/8/8/8/8/8/8/4K2R w KQkq - 0 1",
			checkFn: func(s *GameState) bool {
				return s.Castling == chess.CastlingRights{chess.White: {Kingside: true}}
			},
		},
		{
			name: "en passant without a pushed pawn is dropped",
			fen:  "4k3/8/8/8/8/8/8/4K3 w - e6 0 1",
			checkFn: func(s *GameState) bool {
				return !s.EnPassant
			},
		},
		{
			name: "placement only",
			fen:  "4k3/8/8/8/8/8/8/4K3",
			checkFn: func(s *GameState) bool {
				return s.ToMove == chess.White && s.MoveNumber == 1 && s.HalfmoveClock == 0
			},
		},
		{
			name: "clocks",
			fen:  "4k3/8/8/8/8/8/8/4K2R b K - 37 61",
			checkFn: func(s *GameState) bool {
				return s.HalfmoveClock == 37 && s.MoveNumber == 61
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStateFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewStateFromFEN() error = %v", err)
			}
			if !tt.checkFn(s) {
				t.Errorf("NewStateFromFEN() state check failed: %s", StateToFEN(s))
			}
			if n := s.RepetitionCount(); n != 1 {
				t.Errorf("RepetitionCount() = %d, want 1", n)
			}
		})
	}
}

func TestNewStateFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty string", ""},
		{"too many fields", InitialFEN + " extra"},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"rank too long", "rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"rank too short", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"digit overflow", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad piece letter", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad side to move", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"bad castling letter", "4k3/8/8/8/8/8/8/4K3 w X - 0 1"},
		{"bad en passant square", "4k3/8/8/8/8/8/8/4K3 w - e9 0 1"},
		{"en passant on wrong rank", "4k3/8/8/8/4P3/8/8/4K3 b - e4 0 1"},
		{"negative halfmove clock", "4k3/8/8/8/8/8/8/4K3 w - - -1 1"},
		{"non-numeric halfmove clock", "4k3/8/8/8/8/8/8/4K3 w - - x 1"},
		{"zero move number", "4k3/8/8/8/8/8/8/4K3 w - - 0 0"},
		{"no black king", "8/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"two white kings", "4k3/8/8/8/8/8/8/3KK3 w - - 0 1"},
		{"pawn on back rank", "P3k3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"pawn on first rank", "4k3/8/8/8/8/8/8/p3K3 w - - 0 1"},
		{"side not to move in check", "4k3/8/8/8/8/8/8/4R1K1 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStateFromFEN(tt.fen)
			if !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Errorf("NewStateFromFEN(%q) error = %v, want ErrInvalidFEN", tt.fen, err)
			}
			if s != nil {
				t.Error("NewStateFromFEN() returned a state on error")
			}
		})
	}
}

func TestFEN_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
		"8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 12 40",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			s := mustState(t, fen)
			if got := StateToFEN(s); got != fen {
				t.Errorf("round trip = %q, want %q", got, fen)
			}
		})
	}
}

func TestFEN_Normalised(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want string
	}{
		{"placement only", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", InitialFEN},
		{"unsupported castling dropped", "4k3/8/8/8/8/8/8/4K3 w KQkq - 0 1", "4k3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"stale en passant dropped", "4k3/8/8/8/8/8/8/4K3 b - e3 0 1", "4k3/8/8/8/8/8/8/4K3 b - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustState(t, tt.fen)
			if got := StateToFEN(s); got != tt.want {
				t.Errorf("StateToFEN() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBoardToFEN(t *testing.T) {
	s := NewInitialState()
	want := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
	if got := BoardToFEN(&s.Board); got != want {
		t.Errorf("BoardToFEN() = %q, want %q", got, want)
	}
	if got := StateToFEN(s); got != InitialFEN {
		t.Errorf("StateToFEN(NewInitialState()) = %q, want %q", got, InitialFEN)
	}
}
