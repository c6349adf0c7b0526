package tui

import (
	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/interaction"
)

// Screen geometry. Each square is squareWidth cells wide and one row
// high, White at the bottom.
const (
	leftMargin  = 4
	topMargin   = 2
	squareWidth = 3

	fileLabelRow = topMargin + chess.BoardSize
	statusRow    = fileLabelRow + 2
	messageRow   = statusRow + 1
	promotionRow = messageRow + 2

	promotionLabel = "Promote to: "
	choiceWidth    = 4 // three cells of piece plus a gap
)

// SquareOrigin returns the screen cell of the left edge of a square.
func SquareOrigin(sq chess.Square) (x, y int) {
	return leftMargin + sq.File*squareWidth, topMargin + (chess.BoardSize - 1 - sq.Rank)
}

// SquareAt maps a screen cell to board coordinates. ok is false when the
// cell is outside the board.
func SquareAt(x, y int) (file, rank int, ok bool) {
	col := x - leftMargin
	row := y - topMargin
	if col < 0 || row < 0 || col >= chess.BoardSize*squareWidth || row >= chess.BoardSize {
		return 0, 0, false
	}
	return col / squareWidth, chess.BoardSize - 1 - row, true
}

// ChoiceOrigin returns the screen cell of the i-th promotion choice.
func ChoiceOrigin(i int) (x, y int) {
	return leftMargin + len(promotionLabel) + i*choiceWidth, promotionRow
}

// PromotionAt maps a screen cell to the promotion choice drawn there.
func PromotionAt(x, y int) (chess.PieceKind, bool) {
	if y != promotionRow {
		return chess.Empty, false
	}
	col := x - (leftMargin + len(promotionLabel))
	choices := interaction.PromotionChoices()
	if col < 0 || col%choiceWidth == choiceWidth-1 || col/choiceWidth >= len(choices) {
		return chess.Empty, false
	}
	return choices[col/choiceWidth], true
}
