package interaction

import (
	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/engine"
)

// Snapshot is everything a front end needs to draw one frame. It is a
// value copy and stays valid after the Controller moves on.
type Snapshot struct {
	Board  chess.Board
	ToMove chess.Colour
	Phase  Phase

	Selected     chess.Square
	HasSelection bool
	Highlighted  chess.SquareSet

	Pending              Promotion
	ShowPromotionOverlay bool

	LastMove    chess.Move
	HasLastMove bool

	// InCheck is set when the side to move is in check, including mate.
	InCheck bool
	Result  engine.Status
}

// Snapshot bundles the outbound state of the Controller.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Board:       c.Board(),
		ToMove:      c.state.ToMove,
		Phase:       c.phase,
		Highlighted: c.HighlightedSquares(),
		Result:      c.result,
		InCheck:     engine.IsInCheck(&c.state.Board, c.state.ToMove),
	}
	snap.Selected, snap.HasSelection = c.Selected()
	snap.Pending, snap.ShowPromotionOverlay = c.PendingPromotion()
	snap.LastMove, snap.HasLastMove = c.LastMove()
	return snap
}

// PromotionChoices lists the pieces offered when a pawn promotes, in the
// order a front end should show them.
func PromotionChoices() []chess.PieceKind {
	kinds := chess.PromotionKinds
	return kinds[:]
}
