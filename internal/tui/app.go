// Package tui is the terminal front end. It draws Controller snapshots with
// tcell and turns mouse clicks and key presses into Controller events.
package tui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/interaction"
)

const helpMsg = "click a piece, then a square   n: new game   q/esc: quit"

// App binds a screen to a Controller.
type App struct {
	screen tcell.Screen
	ctrl   *interaction.Controller
	theme  Theme
	log    *zap.SugaredLogger

	msg     string
	buttons tcell.ButtonMask
}

// New creates an App drawing on screen. The screen must already be
// initialised.
func New(screen tcell.Screen, ctrl *interaction.Controller, log *zap.SugaredLogger) *App {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &App{
		screen: screen,
		ctrl:   ctrl,
		theme:  DefaultTheme,
		log:    log,
		msg:    helpMsg,
	}
}

// Message returns the text shown under the status line.
func (a *App) Message() string {
	return a.msg
}

// Draw renders the current snapshot.
func (a *App) Draw() {
	Draw(a.screen, a.ctrl.Snapshot(), a.msg, a.theme)
}

// HandleEvent feeds one terminal event to the Controller and reports
// whether the user asked to quit.
func (a *App) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventInterrupt:
		return true
	}
	return false
}

// handleMouse acts on the press edge of the primary button only, so a
// held button does not click repeatedly.
func (a *App) handleMouse(ev *tcell.EventMouse) {
	prev := a.buttons
	a.buttons = ev.Buttons()
	if ev.Buttons()&tcell.Button1 == 0 || prev&tcell.Button1 != 0 {
		return
	}

	x, y := ev.Position()
	if _, pending := a.ctrl.PendingPromotion(); pending {
		if kind, ok := PromotionAt(x, y); ok {
			a.promote(kind)
		}
		return
	}

	file, rank, ok := SquareAt(x, y)
	if !ok {
		return
	}
	a.click(file, rank)
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	r := ev.Rune()
	if _, pending := a.ctrl.PendingPromotion(); pending {
		if r < 0x80 {
			if kind := chess.PieceKindFromLetter(byte(r)); kind.IsPromotionKind() {
				a.promote(kind)
			}
		}
		return false
	}

	switch r {
	case 'q', 'Q':
		return true
	case 'n', 'N':
		a.ctrl.ResetRequested()
		a.msg = "new game"
	}
	return false
}

func (a *App) click(file, rank int) {
	before := a.ctrl.Phase()
	prev, _ := a.ctrl.LastMove()
	if err := a.ctrl.SquareClicked(file, rank); err != nil {
		a.log.Warnw("click failed", "file", file, "rank", rank, "error", err)
		a.msg = err.Error()
		return
	}

	switch m, ok := a.ctrl.LastMove(); {
	case before == interaction.GameOver:
		a.msg = "new game"
	case ok && m != prev:
		a.msg = "played " + m.String()
	case a.ctrl.Phase() == interaction.AwaitingPromotion:
		a.msg = "choose a piece: click it or press q, r, b or n"
	default:
		a.msg = helpMsg
	}
}

func (a *App) promote(kind chess.PieceKind) {
	if err := a.ctrl.PromotionChosen(kind); err != nil {
		a.log.Warnw("promotion failed", "piece", kind.String(), "error", err)
		a.msg = err.Error()
		return
	}
	if m, ok := a.ctrl.LastMove(); ok {
		a.msg = "played " + m.String()
	}
}

// Run draws and handles events until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			_ = a.screen.PostEvent(tcell.NewEventInterrupt(ctx.Err()))
		case <-done:
		}
	}()

	a.screen.EnableMouse()
	a.Draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if a.HandleEvent(ev) {
			a.log.Debugw("quitting")
			return ctx.Err()
		}
		a.Draw()
	}
}
