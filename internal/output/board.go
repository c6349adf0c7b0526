package output

import (
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/interaction"
)

// palette holds the colours used for one board. Every entry is disabled
// when colour output is off, so drawing code never branches on it.
type palette struct {
	white    *color.Color
	black    *color.Color
	empty    *color.Color
	selected *color.Color
	target   *color.Color
	lastMove *color.Color
	check    *color.Color
	banner   *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		white:    color.New(color.FgHiWhite, color.Bold),
		black:    color.New(color.FgHiBlue, color.Bold),
		empty:    color.New(color.FgHiBlack),
		selected: color.New(color.FgBlack, color.BgYellow),
		target:   color.New(color.FgBlack, color.BgGreen),
		lastMove: color.New(color.Underline),
		check:    color.New(color.FgHiWhite, color.BgRed),
		banner:   color.New(color.FgHiYellow, color.Bold),
	}
	for _, c := range []*color.Color{p.white, p.black, p.empty, p.selected, p.target, p.lastMove, p.check, p.banner} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// symbol returns the one-character representation of a piece.
func symbol(p chess.Piece, unicode bool) string {
	if p.IsEmpty() {
		return "."
	}
	if unicode {
		return string(p.Symbol())
	}
	return string(p.Letter())
}

// drawBoard writes the board with White at the bottom. Each square is
// three columns wide: "[X]" marks the selected piece, "(X)" a capture
// target, " * " an empty destination.
func drawBoard(sb *strings.Builder, snap *interaction.Snapshot, pal *palette, unicode, coordinates bool) {
	checkedKing, inCheck := snap.Board.FindKing(snap.ToMove)
	inCheck = inCheck && snap.InCheck

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		if coordinates {
			sb.WriteByte(byte(chess.RankBase + rank))
			sb.WriteByte(' ')
		}
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			piece := snap.Board.Get(sq)
			sym := symbol(piece, unicode)

			switch {
			case piece.Colour == chess.White && !piece.IsEmpty():
				sym = pal.white.Sprint(sym)
			case !piece.IsEmpty():
				sym = pal.black.Sprint(sym)
			default:
				sym = pal.empty.Sprint(sym)
			}

			cell := " " + sym + " "
			switch {
			case snap.HasSelection && sq == snap.Selected:
				cell = pal.selected.Sprint("[") + sym + pal.selected.Sprint("]")
			case snap.Highlighted.Has(sq) && piece.IsEmpty():
				cell = " " + pal.target.Sprint("*") + " "
			case snap.Highlighted.Has(sq):
				cell = pal.target.Sprint("(") + sym + pal.target.Sprint(")")
			case inCheck && sq == checkedKing:
				cell = " " + pal.check.Sprint(symbol(piece, unicode)) + " "
			case snap.HasLastMove && (sq == snap.LastMove.From || sq == snap.LastMove.To):
				cell = " " + pal.lastMove.Sprint(symbol(piece, unicode)) + " "
			}
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}

	if coordinates {
		sb.WriteString("  ")
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(' ')
			sb.WriteByte(byte(chess.FileBase + file))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
}

// statusLine describes whose turn it is and what input is expected.
func statusLine(snap *interaction.Snapshot) string {
	switch snap.Phase {
	case interaction.GameOver:
		return "Game over: " + snap.Result.String() + " (" + snap.Result.Result() + ")"
	case interaction.AwaitingPromotion:
		return snap.ToMove.String() + " promotes " + snap.Pending.From.String() + "-" +
			snap.Pending.To.String() + ": choose " + promotionPrompt()
	}

	line := snap.ToMove.String() + " to move"
	if snap.InCheck {
		line += " (check)"
	}
	if snap.Phase == interaction.Selected {
		names := make([]string, 0, snap.Highlighted.Len())
		for _, sq := range snap.Highlighted.Squares() {
			names = append(names, sq.String())
		}
		line += ", " + snap.Selected.String() + " can go to " + strings.Join(names, " ")
	}
	return line
}

func promotionPrompt() string {
	choices := interaction.PromotionChoices()
	letters := make([]string, len(choices))
	for i, k := range choices {
		letters[i] = strings.ToLower(string(k.Letter()))
	}
	return strings.Join(letters[:len(letters)-1], ", ") + " or " + letters[len(letters)-1]
}
