package main

import (
	"bufio"
	"context"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/interaction"
	"github.com/lgbarn/chess-go/internal/output"
)

const textHelp = `Commands:
  e2          click a square
  e2e4        click two squares (e7e8q also picks the promotion piece)
  promote q   choose the promotion piece: q, r, b or n
  reset       start a new game
  fen         print the position in FEN
  board       redraw the board
  help        show this help
  quit        leave`

// textSession drives a Controller from line commands.
type textSession struct {
	ctrl *interaction.Controller
	out  output.SnapshotWriter
	log  *zap.SugaredLogger
}

// runText reads commands from in until EOF, "quit" or ctx is done. Each
// command that changes the board writes a new snapshot.
func runText(ctx context.Context, ctrl *interaction.Controller, in io.Reader, out output.SnapshotWriter, log *zap.SugaredLogger) error {
	s := &textSession{ctrl: ctrl, out: out, log: log}
	if err := s.out.WriteSnapshot(ctrl.Snapshot()); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		quit, err := s.exec(scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// exec runs one command line. The error is only set when output fails;
// rejected commands are reported to the user instead.
func (s *textSession) exec(line string) (quit bool, err error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false, nil
	}
	s.log.Debugw("command", "line", line)

	switch cmd := fields[0]; {
	case cmd == "quit" || cmd == "exit":
		return true, nil
	case cmd == "help":
		return false, s.out.WriteMessage(textHelp)
	case cmd == "fen":
		return false, s.out.WriteMessage(s.ctrl.FEN())
	case cmd == "board":
		return false, s.snapshot()
	case cmd == "reset" || cmd == "new":
		s.ctrl.ResetRequested()
		return false, s.snapshot()
	case cmd == "promote" && len(fields) == 2:
		return false, s.promote(fields[1])
	case len(fields) == 1 && len(cmd) == 2:
		return false, s.clickSquare(cmd)
	case len(fields) == 1 && (len(cmd) == 4 || len(cmd) == 5):
		return false, s.move(cmd)
	default:
		return false, s.out.WriteMessage("unknown command " + line + ", type help")
	}
}

func (s *textSession) clickSquare(name string) error {
	sq, ok := chess.ParseSquare(name)
	if !ok {
		return s.out.WriteMessage("not a square: " + name)
	}
	if err := s.click(sq); err != nil {
		return s.out.WriteMessage(err.Error())
	}
	return s.snapshot()
}

// move clicks the from and to squares of a long algebraic move, then
// picks the promotion piece if one is given.
func (s *textSession) move(text string) error {
	from, okFrom := chess.ParseSquare(text[:2])
	to, okTo := chess.ParseSquare(text[2:4])
	if !okFrom || !okTo {
		return s.out.WriteMessage("not a move: " + text)
	}

	switch s.ctrl.Phase() {
	case interaction.GameOver:
		return s.out.WriteMessage("game over, type reset to play again")
	case interaction.AwaitingPromotion:
		return s.out.WriteMessage("choose a promotion piece first")
	case interaction.Selected:
		// Clicking the selected square again clears it.
		sel, _ := s.ctrl.Selected()
		if err := s.click(sel); err != nil {
			return s.out.WriteMessage(err.Error())
		}
	}

	if len(text) == 5 && !isPromotion(s.ctrl.Board(), from, to) {
		return s.out.WriteMessage("illegal move " + text)
	}

	mover := s.ctrl.ToMove()
	if err := s.click(from); err != nil {
		return s.out.WriteMessage(err.Error())
	}
	if s.ctrl.Phase() != interaction.Selected {
		return s.out.WriteMessage("illegal move " + text)
	}
	if err := s.click(to); err != nil {
		return s.out.WriteMessage(err.Error())
	}

	switch {
	case s.ctrl.Phase() == interaction.AwaitingPromotion:
		if len(text) == 5 {
			return s.promote(text[4:])
		}
	case s.ctrl.ToMove() == mover:
		if sel, ok := s.ctrl.Selected(); ok {
			_ = s.click(sel)
		}
		return s.out.WriteMessage("illegal move " + text)
	}
	return s.snapshot()
}

// isPromotion reports whether moving the piece on from to to would
// promote a pawn.
func isPromotion(board chess.Board, from, to chess.Square) bool {
	piece := board.Get(from)
	return piece.Kind == chess.Pawn && to.Rank == chess.PromotionRank(piece.Colour)
}

func (s *textSession) click(sq chess.Square) error {
	return s.ctrl.SquareClicked(sq.File, sq.Rank)
}

func (s *textSession) promote(letter string) error {
	if len(letter) != 1 {
		return s.out.WriteMessage("promote to one of q, r, b or n")
	}
	kind := chess.PieceKindFromLetter(letter[0])
	if _, pending := s.ctrl.PendingPromotion(); !pending {
		return s.out.WriteMessage("no promotion pending")
	}
	if err := s.ctrl.PromotionChosen(kind); err != nil {
		return s.out.WriteMessage(err.Error())
	}
	return s.snapshot()
}

func (s *textSession) snapshot() error {
	return s.out.WriteSnapshot(s.ctrl.Snapshot())
}
