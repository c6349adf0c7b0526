package output

import (
	"github.com/lgbarn/chess-go/internal/engine"
	"github.com/lgbarn/chess-go/internal/interaction"
)

// JSONSnapshot represents a snapshot in JSON format.
type JSONSnapshot struct {
	Board       string         `json:"board"` // FEN piece placement
	ToMove      string         `json:"toMove"`
	Phase       string         `json:"phase"`
	Selected    string         `json:"selected,omitempty"`
	Highlighted []string       `json:"highlighted,omitempty"`
	Promotion   *JSONPromotion `json:"promotion,omitempty"`
	LastMove    string         `json:"lastMove,omitempty"`
	Check       bool           `json:"check"`
	Status      string         `json:"status"`
	Result      string         `json:"result"`
}

// JSONPromotion is a pending promotion and the pieces on offer.
type JSONPromotion struct {
	From    string   `json:"from"`
	To      string   `json:"to"`
	Choices []string `json:"choices"`
}

// JSONMessage carries a free text reply.
type JSONMessage struct {
	Message string `json:"message"`
}

// SnapshotToJSON converts a snapshot to its JSON representation.
func SnapshotToJSON(snap interaction.Snapshot) *JSONSnapshot {
	js := &JSONSnapshot{
		Board:  engine.BoardToFEN(&snap.Board),
		ToMove: snap.ToMove.String(),
		Phase:  snap.Phase.String(),
		Check:  snap.InCheck,
		Status: snap.Result.String(),
		Result: snap.Result.Result(),
	}

	if snap.HasSelection {
		js.Selected = snap.Selected.String()
	}
	for _, sq := range snap.Highlighted.Squares() {
		js.Highlighted = append(js.Highlighted, sq.String())
	}
	if snap.ShowPromotionOverlay {
		js.Promotion = &JSONPromotion{
			From: snap.Pending.From.String(),
			To:   snap.Pending.To.String(),
		}
		for _, k := range interaction.PromotionChoices() {
			js.Promotion.Choices = append(js.Promotion.Choices, k.String())
		}
	}
	if snap.HasLastMove {
		js.LastMove = snap.LastMove.String()
	}
	return js
}
