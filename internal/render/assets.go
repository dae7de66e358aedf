package render

import (
	"fmt"
	"path"

	"github.com/benbeisheim/boardview-backend/internal/model"
)

type pieceKey struct {
	Type model.PieceType
	Side model.Side
}

// AssetSet holds opaque visual handles. Nothing here reads the assets; the
// handles are passed through to whoever draws the frame.
type AssetSet struct {
	LightTile string
	DarkTile  string
	pieces    map[pieceKey]string
}

var (
	pieceTypes = []model.PieceType{model.Pawn, model.Knight, model.Bishop, model.Rook, model.Queen, model.King}
	sides      = []model.Side{model.SideWhite, model.SideBlack}
)

// NewAssetSet names every visual under dir.
func NewAssetSet(dir string) *AssetSet {
	a := &AssetSet{
		LightTile: path.Join(dir, "light_tile.png"),
		DarkTile:  path.Join(dir, "dark_tile.png"),
		pieces:    make(map[pieceKey]string, len(pieceTypes)*len(sides)),
	}
	for _, side := range sides {
		for _, t := range pieceTypes {
			a.pieces[pieceKey{t, side}] = path.Join(dir, fmt.Sprintf("%s_%s.png", side, t))
		}
	}
	return a
}

func (a *AssetSet) Tile(shade model.Shade) string {
	if shade == model.ShadeLight {
		return a.LightTile
	}
	return a.DarkTile
}

func (a *AssetSet) Piece(p model.Piece) string {
	return a.pieces[pieceKey{p.Type, p.Side}]
}
