package render

import (
	"github.com/benbeisheim/boardview-backend/internal/model"
)

type FramePiece struct {
	model.Piece
	Sprite string `json:"sprite"`
}

type FrameSquare struct {
	Square string      `json:"square"`
	X      int         `json:"x"`
	Y      int         `json:"y"`
	Shade  model.Shade `json:"shade"`
	Tile   string      `json:"tile"`
	Piece  *FramePiece `json:"piece"`
}

// Frame is everything a graphical client needs to draw one board.
type Frame struct {
	BoardID   string        `json:"boardId"`
	Record    model.Record  `json:"record"`
	Placement string        `json:"placement"`
	Layout    model.Layout  `json:"layout"`
	Squares   []FrameSquare `json:"squares"`
}

// FrameCanvas collects a render pass into frame squares.
type FrameCanvas struct {
	assets  *AssetSet
	squares []FrameSquare
	index   map[model.Position]int
}

func NewFrameCanvas(assets *AssetSet) *FrameCanvas {
	return &FrameCanvas{
		assets:  assets,
		squares: make([]FrameSquare, 0, model.BoardSize*model.BoardSize),
		index:   make(map[model.Position]int, model.BoardSize*model.BoardSize),
	}
}

func (c *FrameCanvas) DrawTile(pos model.Position, x, y int, shade model.Shade) {
	c.index[pos] = len(c.squares)
	c.squares = append(c.squares, FrameSquare{
		Square: pos.Notation(),
		X:      x,
		Y:      y,
		Shade:  shade,
		Tile:   c.assets.Tile(shade),
	})
}

func (c *FrameCanvas) DrawPiece(pos model.Position, piece model.Piece, x, y int) {
	i, ok := c.index[pos]
	if !ok {
		return
	}
	c.squares[i].Piece = &FramePiece{Piece: piece, Sprite: c.assets.Piece(piece)}
}

// NewFrame renders board with layout into a frame.
func NewFrame(boardID string, board *model.Board, rec model.Record, layout model.Layout, assets *AssetSet) Frame {
	canvas := NewFrameCanvas(assets)
	board.Render(canvas, layout)
	return Frame{
		BoardID:   boardID,
		Record:    rec,
		Placement: model.EncodePlacement(board),
		Layout:    layout,
		Squares:   canvas.squares,
	}
}
