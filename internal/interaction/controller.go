// Package interaction turns raw board clicks into chess moves. The
// Controller tracks which square is selected, which destinations to
// highlight and whether a promotion choice is pending, and re-queries the
// engine on every event. It holds no rules logic of its own.
//
// A Controller is not safe for concurrent use.
package interaction

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/engine"
	"github.com/lgbarn/chess-go/internal/errors"
)

// Phase is the interaction phase of a Controller.
type Phase int

const (
	// Idle waits for the side to move to pick a piece.
	Idle Phase = iota
	// Selected has a piece chosen and its destinations highlighted.
	Selected
	// AwaitingPromotion waits for a promotion piece before a pawn move
	// to the last rank is applied.
	AwaitingPromotion
	// GameOver shows the result; the next click starts a new game.
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Selected:
		return "selected"
	case AwaitingPromotion:
		return "awaiting-promotion"
	case GameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Promotion is a pawn move waiting for its promotion piece.
type Promotion struct {
	From chess.Square
	To   chess.Square
}

// Controller is the interaction state machine for one board.
type Controller struct {
	start *engine.GameState
	state *engine.GameState

	phase    Phase
	selected chess.Square
	dests    chess.SquareSet
	pending  Promotion
	result   engine.Status

	lastMove    chess.Move
	hasLastMove bool

	options  engine.Options
	startFEN string
	log      *zap.SugaredLogger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger transitions are reported to.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithOptions selects the draw rules for every game the Controller plays.
func WithOptions(opts engine.Options) Option {
	return func(c *Controller) {
		c.options = opts
	}
}

// WithStartFEN starts every game, including those after a reset, from fen.
func WithStartFEN(fen string) Option {
	return func(c *Controller) {
		c.startFEN = fen
	}
}

// New creates a Controller at the start position. It fails only if a
// start FEN was given and is invalid.
func New(opts ...Option) (*Controller, error) {
	c := &Controller{
		options:  engine.DefaultOptions(),
		startFEN: engine.InitialFEN,
		log:      zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}

	start, err := engine.NewStateFromFEN(c.startFEN)
	if err != nil {
		return nil, errors.Wrap(err, "start position")
	}
	start.Options = c.options
	c.start = start

	c.reset()
	return c, nil
}

// SquareClicked handles a click on the square at file, rank (both 0-7).
// Coordinates off the board return an error wrapping ErrInvalidSquare and
// change nothing. An engine error while applying the move is returned
// with the state left as it was.
func (c *Controller) SquareClicked(file, rank int) error {
	sq := chess.Sq(file, rank)
	if !sq.Valid() {
		return &errors.SquareError{File: file, Rank: rank}
	}

	switch c.phase {
	case GameOver:
		c.log.Debugw("click after game over, starting new game", "square", sq.String())
		c.reset()
		return nil

	case AwaitingPromotion:
		c.log.Debugw("click ignored while promotion pending", "square", sq.String())
		return nil

	case Selected:
		switch {
		case c.dests.Has(sq):
			return c.moveTo(sq)
		case sq == c.selected:
			c.deselect()
			return nil
		}
	}

	c.selectSquare(sq)
	return nil
}

// PromotionChosen completes a pending promotion with kind. Outside
// AwaitingPromotion it does nothing. An Empty kind returns
// ErrPromotionRequired and King or Pawn return ErrIllegalMove; in both
// cases the promotion stays pending.
func (c *Controller) PromotionChosen(kind chess.PieceKind) error {
	if c.phase != AwaitingPromotion {
		c.log.Debugw("promotion choice ignored", "phase", c.phase.String(), "piece", kind.String())
		return nil
	}

	m, ok := c.findMove(c.pending.From, c.pending.To)
	if !ok {
		// Pending moves are always legal in the current state.
		c.deselect()
		return &errors.MoveError{Err: errors.ErrIllegalMove, FEN: c.FEN()}
	}
	return c.apply(m.WithPromotion(kind))
}

// ResetRequested starts a new game from the start position, whatever
// the current phase.
func (c *Controller) ResetRequested() {
	c.log.Debugw("reset requested", "phase", c.phase.String())
	c.reset()
}

// Phase returns the current interaction phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Board returns a copy of the current board.
func (c *Controller) Board() chess.Board {
	return c.state.Board
}

// ToMove returns the side to move.
func (c *Controller) ToMove() chess.Colour {
	return c.state.ToMove
}

// Selected returns the selected square, if any.
func (c *Controller) Selected() (chess.Square, bool) {
	return c.selected, c.phase == Selected
}

// HighlightedSquares returns the legal destinations of the selected
// piece, or an empty set when nothing is selected. The destinations stay
// highlighted while a promotion choice is pending.
func (c *Controller) HighlightedSquares() chess.SquareSet {
	if c.phase != Selected && c.phase != AwaitingPromotion {
		return 0
	}
	return c.dests
}

// PendingPromotion returns the pawn move waiting for a promotion piece.
func (c *Controller) PendingPromotion() (Promotion, bool) {
	return c.pending, c.phase == AwaitingPromotion
}

// Result returns the engine status of the current position.
func (c *Controller) Result() engine.Status {
	return c.result
}

// LastMove returns the most recently applied move of the current game.
func (c *Controller) LastMove() (chess.Move, bool) {
	return c.lastMove, c.hasLastMove
}

// FEN returns the current position in Forsyth-Edwards Notation.
func (c *Controller) FEN() string {
	return engine.StateToFEN(c.state)
}

// selectSquare selects sq if it holds a piece of the side to move with at
// least one legal move, and otherwise clears the selection.
func (c *Controller) selectSquare(sq chess.Square) {
	piece := c.state.Board.Get(sq)
	if piece.IsEmpty() || piece.Colour != c.state.ToMove {
		c.deselect()
		return
	}

	dests := engine.Destinations(c.state, sq)
	if dests.IsEmpty() {
		c.log.Debugw("piece has no legal moves", "square", sq.String())
		c.deselect()
		return
	}

	c.phase = Selected
	c.selected = sq
	c.dests = dests
	c.log.Debugw("piece selected", "square", sq.String(), "destinations", dests.String())
}

func (c *Controller) deselect() {
	if c.phase == Selected {
		c.log.Debugw("selection cleared", "square", c.selected.String())
	}
	c.phase = Idle
	c.selected = chess.Square{}
	c.dests = 0
	c.pending = Promotion{}
}

// moveTo plays the selected piece to sq, or parks a promotion until the
// piece is chosen.
func (c *Controller) moveTo(sq chess.Square) error {
	m, ok := c.findMove(c.selected, sq)
	if !ok {
		c.deselect()
		return nil
	}

	if m.Class == chess.Promotion {
		c.phase = AwaitingPromotion
		c.pending = Promotion{From: m.From, To: m.To}
		c.log.Debugw("awaiting promotion choice", "from", m.From.String(), "to", m.To.String())
		return nil
	}
	return c.apply(m)
}

func (c *Controller) findMove(from, to chess.Square) (chess.Move, bool) {
	for _, m := range engine.LegalMovesFrom(c.state, from) {
		if m.To == to {
			return m, true
		}
	}
	return chess.Move{}, false
}

func (c *Controller) apply(m chess.Move) error {
	next, err := engine.ApplyMove(c.state, m)
	if err != nil {
		c.log.Debugw("move rejected", "move", m.String(), "error", err)
		return err
	}

	mover := c.state.ToMove
	c.state = next
	c.lastMove = m
	c.hasLastMove = true
	c.deselect()
	c.log.Infow("move played", "colour", mover.String(), "move", m.String(), "fen", c.FEN())

	c.updateResult()
	return nil
}

func (c *Controller) reset() {
	c.state = c.start
	c.lastMove = chess.Move{}
	c.hasLastMove = false
	c.deselect()
	c.log.Infow("new game", "fen", c.FEN())
	c.updateResult()
}

// updateResult re-evaluates the position and ends the game when the
// engine reports a terminal status.
func (c *Controller) updateResult() {
	c.result = c.state.Status()
	if !c.result.IsTerminal() {
		return
	}
	c.phase = GameOver
	c.log.Infow("game over", "result", c.result.Result(), "status", c.result.String())
}
