package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShadeOf(t *testing.T) {
	assert.Equal(t, ShadeLight, ShadeOf(Position{X: 0, Y: 0}))
	assert.Equal(t, ShadeDark, ShadeOf(Position{X: 1, Y: 0}))
	assert.Equal(t, ShadeDark, ShadeOf(Position{X: 0, Y: 7}))
	assert.Equal(t, ShadeLight, ShadeOf(Position{X: 7, Y: 7}))
}

func TestLayoutOriginAndSquareAt(t *testing.T) {
	l := SquareLayout(64)

	x, y := l.Origin(Position{X: 3, Y: 5})
	assert.Equal(t, 192, x)
	assert.Equal(t, 320, y)

	pos, err := l.SquareAt(192, 320)
	require.NoError(t, err)
	assert.Equal(t, Position{X: 3, Y: 5}, pos)

	pos, err = l.SquareAt(511, 511)
	require.NoError(t, err)
	assert.Equal(t, Position{X: 7, Y: 7}, pos)
}

func TestLayoutSquareAtOffBoard(t *testing.T) {
	l := Layout{TileWidth: 2, TileHeight: 1, OriginX: 6, OriginY: 2}

	pos, err := l.SquareAt(6+2*4, 2+7)
	require.NoError(t, err)
	assert.Equal(t, Position{X: 4, Y: 7}, pos)

	var oob *OutOfBoundsError
	_, err = l.SquareAt(6+16, 2)
	require.True(t, errors.As(err, &oob))
	assert.Equal(t, 8, oob.File)

	_, err = l.SquareAt(5, 2)
	require.True(t, errors.As(err, &oob))
	assert.Equal(t, -1, oob.File)

	_, err = l.SquareAt(6, 10)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

type recordingCanvas struct {
	tiles  map[Position]Shade
	pieces map[Position]Piece
	order  []Position
}

func (c *recordingCanvas) DrawTile(pos Position, x, y int, shade Shade) {
	c.tiles[pos] = shade
	c.order = append(c.order, pos)
}

func (c *recordingCanvas) DrawPiece(pos Position, piece Piece, x, y int) {
	c.pieces[pos] = piece
}

func TestBoardRender(t *testing.T) {
	b := NewBoard()
	_, err := Decode(b, StartingRecord)
	require.NoError(t, err)

	c := &recordingCanvas{tiles: map[Position]Shade{}, pieces: map[Position]Piece{}}
	b.Render(c, SquareLayout(64))

	assert.Len(t, c.tiles, 64)
	assert.Len(t, c.pieces, 32)
	assert.Equal(t, Position{X: 0, Y: 0}, c.order[0])
	assert.Equal(t, Position{X: 0, Y: 1}, c.order[1])
	assert.Equal(t, Piece{Type: King, Side: SideBlack}, c.pieces[Position{X: 4, Y: 7}])
	assert.Equal(t, 32, b.Count())
}
