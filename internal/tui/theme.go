package tui

import "github.com/gdamore/tcell/v2"

// Theme is used for colouring the board and labels.
type Theme struct {
	SquareLight tcell.Color
	SquareDark  tcell.Color
	SquareHigh  tcell.Color // selected piece
	SquareHint  tcell.Color // legal destination
	SquareLast  tcell.Color // last move
	SquareCheck tcell.Color // king in check
	White       tcell.Color
	Black       tcell.Color
	Label       tcell.Color
	Msg         tcell.Color
	Banner      tcell.Color
	OverlayBg   tcell.Color
	OverlayFg   tcell.Color
}

// DefaultTheme uses colours from the xterm 256 colour palette.
var DefaultTheme = Theme{
	SquareLight: tcell.ColorBurlyWood,
	SquareDark:  tcell.ColorSaddleBrown,
	SquareHigh:  tcell.ColorYellow,
	SquareHint:  tcell.ColorLightGreen,
	SquareLast:  tcell.ColorDarkKhaki,
	SquareCheck: tcell.ColorRed,
	White:       tcell.ColorWhite,
	Black:       tcell.ColorBlack,
	Label:       tcell.ColorGray,
	Msg:         tcell.ColorSilver,
	Banner:      tcell.ColorGold,
	OverlayBg:   tcell.ColorNavy,
	OverlayFg:   tcell.ColorWhite,
}
