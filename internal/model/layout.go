package model

type Shade string

const (
	ShadeLight Shade = "light"
	ShadeDark  Shade = "dark"
)

// ShadeOf colours a tile by parity: equal parity of file and rank is light.
func ShadeOf(p Position) Shade {
	if (p.X+p.Y)%2 == 0 {
		return ShadeLight
	}
	return ShadeDark
}

// Layout maps squares to the visual coordinates of a consumer and back.
type Layout struct {
	TileWidth  int `json:"tileWidth"`
	TileHeight int `json:"tileHeight"`
	OriginX    int `json:"originX"`
	OriginY    int `json:"originY"`
}

func SquareLayout(tileSize int) Layout {
	return Layout{TileWidth: tileSize, TileHeight: tileSize}
}

// Origin returns the top-left corner of the tile at p.
func (l Layout) Origin(p Position) (int, int) {
	return l.OriginX + p.X*l.TileWidth, l.OriginY + p.Y*l.TileHeight
}

// SquareAt returns the square under the point (x, y).
func (l Layout) SquareAt(x, y int) (Position, error) {
	dx, dy := x-l.OriginX, y-l.OriginY
	if dx < 0 || dy < 0 || l.TileWidth <= 0 || l.TileHeight <= 0 {
		return Position{}, &OutOfBoundsError{File: floorDiv(dx, l.TileWidth), Rank: floorDiv(dy, l.TileHeight)}
	}
	pos := Position{X: dx / l.TileWidth, Y: dy / l.TileHeight}
	if !pos.InBounds() {
		return Position{}, &OutOfBoundsError{File: pos.X, Rank: pos.Y}
	}
	return pos, nil
}

func floorDiv(a, b int) int {
	if b <= 0 {
		return -1
	}
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// Canvas receives one render pass of a board.
type Canvas interface {
	DrawTile(pos Position, x, y int, shade Shade)
	DrawPiece(pos Position, piece Piece, x, y int)
}

// Render draws every tile and then its occupant, file by file.
func (b *Board) Render(c Canvas, l Layout) {
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			sq := b.grid[x][y]
			px, py := l.Origin(sq.Position)
			c.DrawTile(sq.Position, px, py, ShadeOf(sq.Position))
			if sq.Piece != nil {
				c.DrawPiece(sq.Position, *sq.Piece, px, py)
			}
		}
	}
}
