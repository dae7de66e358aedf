package term

import (
	"github.com/benbeisheim/boardview-backend/internal/model"
	"github.com/gdamore/tcell/v2"
)

const (
	leftMargin = 4
	topMargin  = 2
)

// BoardLayout places each tile two cells wide so squares look square.
var BoardLayout = model.Layout{
	TileWidth:  2,
	TileHeight: 1,
	OriginX:    leftMargin + 2,
	OriginY:    topMargin,
}

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// screenCanvas draws a render pass onto a tcell screen
type screenCanvas struct {
	s     tcell.Screen
	theme Theme
}

func (c screenCanvas) squareBg(shade model.Shade) tcell.Color {
	if shade == model.ShadeLight {
		return c.theme.SquareLight
	}
	return c.theme.SquareDark
}

func (c screenCanvas) DrawTile(pos model.Position, x, y int, shade model.Shade) {
	style := tcell.StyleDefault.Background(c.squareBg(shade))
	c.s.SetContent(x, y, ' ', nil, style)
	c.s.SetContent(x+1, y, ' ', nil, style)
}

func (c screenCanvas) DrawPiece(pos model.Position, piece model.Piece, x, y int) {
	fg := c.theme.Black
	if piece.Side == model.SideWhite {
		fg = c.theme.White
	}
	style := tcell.StyleDefault.Background(c.squareBg(model.ShadeOf(pos))).Foreground(fg).Bold(true)
	c.s.SetContent(x, y, piece.Type.Letter(), nil, style)
}

// drawBoard draws rank labels, the squares and the file labels
func drawBoard(s tcell.Screen, board *model.Board, t Theme) {
	rankStyle := tcell.StyleDefault.Foreground(t.Rank)
	for y := 0; y < model.BoardSize; y++ {
		label := model.Position{X: 0, Y: y}.Notation()[1:]
		drawText(s, leftMargin, topMargin+y, rankStyle, label)
	}

	board.Render(screenCanvas{s: s, theme: t}, BoardLayout)

	fileStyle := tcell.StyleDefault.Foreground(t.File)
	drawText(s, BoardLayout.OriginX, topMargin+model.BoardSize, fileStyle, "a b c d e f g h")
}

// drawStatus displays a message below the board
func drawStatus(s tcell.Screen, msg string, t Theme) {
	style := tcell.StyleDefault.Foreground(t.Msg)
	drawText(s, leftMargin, topMargin+model.BoardSize+2, style, msg)
}
