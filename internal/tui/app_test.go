package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/interaction"
	"github.com/lgbarn/chess-go/internal/testutil"
)

func newTestApp(t *testing.T, opts ...interaction.Option) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	ctrl, err := interaction.New(opts...)
	testutil.AssertNoError(t, err)
	return New(screen, ctrl, nil), screen
}

// clickSquare presses and releases the primary button over a square.
func clickSquare(a *App, name string) {
	x, y := SquareOrigin(chess.MustSquare(name))
	clickAt(a, x+1, y)
}

func clickAt(a *App, x, y int) {
	a.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	a.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func pressRune(a *App, r rune) bool {
	return a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func cellAt(t *testing.T, s tcell.SimulationScreen, x, y int) tcell.SimCell {
	t.Helper()
	cells, w, _ := s.GetContents()
	return cells[y*w+x]
}

func rowText(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		if r := cells[y*w+x].Runes; len(r) > 0 {
			sb.WriteRune(r[0])
		} else {
			sb.WriteByte(' ')
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

func squareCell(t *testing.T, s tcell.SimulationScreen, name string) tcell.SimCell {
	t.Helper()
	x, y := SquareOrigin(chess.MustSquare(name))
	return cellAt(t, s, x+1, y)
}

func background(c tcell.SimCell) tcell.Color {
	_, bg, _ := c.Style.Decompose()
	return bg
}

func TestApp_DrawInitial(t *testing.T) {
	a, screen := newTestApp(t)
	a.Draw()

	tests := []struct {
		square string
		want   rune
	}{
		{"e1", '♔'},
		{"e8", '♚'},
		{"d1", '♕'},
		{"a7", '♟'},
		{"e2", '♙'},
		{"e4", ' '},
	}
	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			if got := squareCell(t, screen, tt.square).Runes; len(got) == 0 || got[0] != tt.want {
				t.Errorf("square %s shows %q, want %q", tt.square, got, tt.want)
			}
		})
	}

	if got := rowText(screen, topMargin); !strings.HasPrefix(got, "  8") {
		t.Errorf("top row = %q, want rank label 8", got)
	}
	if got := rowText(screen, fileLabelRow); got != "     a  b  c  d  e  f  g  h" {
		t.Errorf("file labels = %q", got)
	}
	testutil.AssertContains(t, rowText(screen, statusRow), "White to move")
	testutil.AssertContains(t, rowText(screen, messageRow), helpMsg)

	if got := background(squareCell(t, screen, "a1")); got != DefaultTheme.SquareDark {
		t.Errorf("a1 background = %v, want dark", got)
	}
	if got := background(squareCell(t, screen, "h1")); got != DefaultTheme.SquareLight {
		t.Errorf("h1 background = %v, want light", got)
	}
}

func TestApp_SelectAndMove(t *testing.T) {
	a, screen := newTestApp(t)

	clickSquare(a, "e2")
	a.Draw()
	if got := a.ctrl.Phase(); got != interaction.Selected {
		t.Fatalf("Phase() = %v after clicking e2, want selected", got)
	}
	if got := background(squareCell(t, screen, "e2")); got != DefaultTheme.SquareHigh {
		t.Errorf("selected square background = %v, want %v", got, DefaultTheme.SquareHigh)
	}
	for _, sq := range []string{"e3", "e4"} {
		if got := background(squareCell(t, screen, sq)); got != DefaultTheme.SquareHint {
			t.Errorf("%s background = %v, want hint colour", sq, got)
		}
	}

	clickSquare(a, "e4")
	a.Draw()
	m, ok := a.ctrl.LastMove()
	if !ok || m.String() != "e2e4" {
		t.Fatalf("LastMove() = %v, %v, want e2e4", m, ok)
	}
	testutil.AssertEqual(t, "played e2e4", a.Message())
	testutil.AssertContains(t, rowText(screen, statusRow), "Black to move")
	if got := background(squareCell(t, screen, "e4")); got != DefaultTheme.SquareLast {
		t.Errorf("last move background = %v, want %v", got, DefaultTheme.SquareLast)
	}
}

func TestApp_HeldButtonClicksOnce(t *testing.T) {
	a, _ := newTestApp(t)

	x, y := SquareOrigin(chess.MustSquare("e2"))
	a.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	// Dragging to e4 with the button still down is not a second click.
	x, y = SquareOrigin(chess.MustSquare("e4"))
	a.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))

	if sq, ok := a.ctrl.Selected(); !ok || sq != chess.MustSquare("e2") {
		t.Errorf("Selected() = %v, %v, want e2", sq, ok)
	}
	if _, ok := a.ctrl.LastMove(); ok {
		t.Error("held button played a move")
	}
}

func TestApp_ClickOutsideBoard(t *testing.T) {
	a, _ := newTestApp(t)
	clickSquare(a, "e2")
	clickAt(a, 60, 20)

	if got := a.ctrl.Phase(); got != interaction.Selected {
		t.Errorf("Phase() = %v, want selection kept", got)
	}
}

func TestApp_PromotionByClick(t *testing.T) {
	a, screen := newTestApp(t, interaction.WithStartFEN(testutil.PromotionFEN))

	clickSquare(a, "e7")
	clickSquare(a, "e8")
	a.Draw()
	if got := a.ctrl.Phase(); got != interaction.AwaitingPromotion {
		t.Fatalf("Phase() = %v, want awaiting-promotion", got)
	}
	overlay := rowText(screen, promotionRow)
	testutil.AssertContains(t, overlay, promotionLabel)
	testutil.AssertContains(t, overlay, "♕")
	testutil.AssertContains(t, overlay, "♘")
	if got := background(squareCell(t, screen, "e8")); got != DefaultTheme.SquareHint {
		t.Errorf("e8 background = %v while promotion pending, want hint colour", got)
	}

	// Board clicks are ignored while the choice is pending.
	clickSquare(a, "e1")
	testutil.AssertEqual(t, interaction.AwaitingPromotion, a.ctrl.Phase())

	x, y := ChoiceOrigin(1)
	clickAt(a, x+1, y)
	testutil.AssertEqual(t, interaction.Idle, a.ctrl.Phase())
	board := a.ctrl.Board()
	testutil.AssertEqual(t, chess.W(chess.Rook), board.Get(chess.MustSquare("e8")))
	testutil.AssertEqual(t, "played e7e8r", a.Message())
}

func TestApp_PromotionByKey(t *testing.T) {
	a, screen := newTestApp(t, interaction.WithStartFEN(testutil.PromotionFEN))

	clickSquare(a, "e7")
	clickSquare(a, "e8")

	if quit := pressRune(a, 'x'); quit {
		t.Fatal("unrelated key quit the app")
	}
	testutil.AssertEqual(t, interaction.AwaitingPromotion, a.ctrl.Phase())

	// q picks the queen here rather than quitting.
	if quit := pressRune(a, 'q'); quit {
		t.Fatal("q quit while a promotion was pending")
	}
	board := a.ctrl.Board()
	testutil.AssertEqual(t, chess.W(chess.Queen), board.Get(chess.MustSquare("e8")))

	a.Draw()
	if got := rowText(screen, promotionRow); got != "" {
		t.Errorf("promotion row = %q after choosing, want empty", got)
	}
}

func TestApp_GameOverBanner(t *testing.T) {
	a, screen := newTestApp(t, interaction.WithStartFEN(testutil.PromotionFEN))

	clickSquare(a, "e7")
	clickSquare(a, "e8")
	pressRune(a, 'n')
	a.Draw()

	testutil.AssertEqual(t, interaction.GameOver, a.ctrl.Phase())
	status := rowText(screen, statusRow)
	testutil.AssertContains(t, status, "1/2-1/2")
	testutil.AssertContains(t, status, "click to play again")

	clickSquare(a, "a1")
	testutil.AssertEqual(t, interaction.Idle, a.ctrl.Phase())
	testutil.AssertEqual(t, "new game", a.Message())
	testutil.AssertEqual(t, testutil.PromotionFEN, a.ctrl.FEN())
}

func TestApp_CheckHighlight(t *testing.T) {
	a, screen := newTestApp(t, interaction.WithStartFEN("4k3/8/8/8/8/8/8/4R1K1 b - - 0 1"))
	a.Draw()

	if got := background(squareCell(t, screen, "e8")); got != DefaultTheme.SquareCheck {
		t.Errorf("king in check background = %v, want %v", got, DefaultTheme.SquareCheck)
	}
	testutil.AssertContains(t, rowText(screen, statusRow), "Black to move, check")
}

func TestApp_Keys(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		quit bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"Q", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), false},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), false},
		{"interrupt", tcell.NewEventInterrupt(nil), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestApp(t)
			if got := a.HandleEvent(tt.ev); got != tt.quit {
				t.Errorf("HandleEvent() = %v, want %v", got, tt.quit)
			}
		})
	}
}

func TestApp_NewGameKey(t *testing.T) {
	a, _ := newTestApp(t)
	clickSquare(a, "e2")
	clickSquare(a, "e4")

	pressRune(a, 'n')
	testutil.AssertEqual(t, "new game", a.Message())
	if _, ok := a.ctrl.LastMove(); ok {
		t.Error("LastMove() still set after a new game")
	}
}

func TestApp_LogsThroughController(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core).Sugar()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error = %v", err)
	}
	defer screen.Fini()

	ctrl, err := interaction.New(interaction.WithLogger(log))
	testutil.AssertNoError(t, err)
	a := New(screen, ctrl, log)

	clickSquare(a, "g1")
	clickSquare(a, "f3")

	if n := logs.FilterMessage("move played").Len(); n != 1 {
		t.Errorf("logged %d moves, want 1", n)
	}
}

func TestApp_RunQuitsOnKey(t *testing.T) {
	a, screen := newTestApp(t)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := a.Run(context.Background()); err != nil {
		t.Errorf("Run() error = %v", err)
	}
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	a, _ := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := a.Run(ctx); err != context.Canceled {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}
