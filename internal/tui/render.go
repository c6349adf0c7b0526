package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/interaction"
)

// drawText writes text left to right starting at x, y.
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// squareBg picks the background of a square from the snapshot state.
// Selection wins over hints, hints over check, check over last move.
func squareBg(snap *interaction.Snapshot, sq chess.Square, checked chess.Square, t Theme) tcell.Color {
	switch {
	case snap.HasSelection && sq == snap.Selected:
		return t.SquareHigh
	case snap.Highlighted.Has(sq):
		return t.SquareHint
	case snap.InCheck && sq == checked:
		return t.SquareCheck
	case snap.HasLastMove && (sq == snap.LastMove.From || sq == snap.LastMove.To):
		return t.SquareLast
	case sq.IsLight():
		return t.SquareLight
	default:
		return t.SquareDark
	}
}

// drawSquare draws a board square with its piece in the middle cell.
func drawSquare(s tcell.Screen, sq chess.Square, p chess.Piece, bg tcell.Color, t Theme) {
	x, y := SquareOrigin(sq)
	style := tcell.StyleDefault.Background(bg)
	if p.Colour == chess.White {
		style = style.Foreground(t.White)
	} else {
		style = style.Foreground(t.Black)
	}
	s.SetContent(x, y, ' ', nil, style)
	s.SetContent(x+1, y, p.Symbol(), nil, style)
	s.SetContent(x+2, y, ' ', nil, style)
}

func drawBoard(s tcell.Screen, snap *interaction.Snapshot, t Theme) {
	checked, _ := snap.Board.FindKing(snap.ToMove)
	labelStyle := tcell.StyleDefault.Foreground(t.Label)

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			drawSquare(s, sq, snap.Board.Get(sq), squareBg(snap, sq, checked, t), t)
		}
		_, y := SquareOrigin(chess.Sq(0, rank))
		s.SetContent(leftMargin-2, y, rune(chess.RankBase+rank), nil, labelStyle)
	}
	for file := 0; file < chess.BoardSize; file++ {
		x, _ := SquareOrigin(chess.Sq(file, 0))
		s.SetContent(x+1, fileLabelRow, rune(chess.FileBase+file), nil, labelStyle)
	}
}

func drawStatus(s tcell.Screen, snap *interaction.Snapshot, msg string, t Theme) {
	var status string
	style := tcell.StyleDefault.Foreground(t.Msg)

	switch snap.Phase {
	case interaction.GameOver:
		status = " " + snap.Result.String() + " (" + snap.Result.Result() + "), click to play again "
		style = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(t.Banner)
	case interaction.AwaitingPromotion:
		status = snap.ToMove.String() + " promotes on " + snap.Pending.To.String()
	default:
		status = snap.ToMove.String() + " to move"
		if snap.InCheck {
			status += ", check"
		}
	}

	drawText(s, leftMargin, statusRow, style, status)
	drawText(s, leftMargin, messageRow, tcell.StyleDefault.Foreground(t.Label), msg)
}

// drawPromotion draws the row of promotion choices for the side to move.
func drawPromotion(s tcell.Screen, snap *interaction.Snapshot, t Theme) {
	style := tcell.StyleDefault.Background(t.OverlayBg).Foreground(t.OverlayFg)
	drawText(s, leftMargin, promotionRow, tcell.StyleDefault.Foreground(t.Msg), promotionLabel)

	for i, kind := range interaction.PromotionChoices() {
		x, y := ChoiceOrigin(i)
		drawText(s, x, y, style, " "+string(chess.MakePiece(snap.ToMove, kind).Symbol())+" ")
	}
}

// Draw renders one frame of snap with the status message msg.
func Draw(s tcell.Screen, snap interaction.Snapshot, msg string, t Theme) {
	s.Clear()
	drawBoard(s, &snap, t)
	drawStatus(s, &snap, msg, t)
	if snap.ShowPromotionOverlay {
		drawPromotion(s, &snap, t)
	}
	s.Show()
}
