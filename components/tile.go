package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/isodroid/shared/gamemath"
	"github.com/automoto/isodroid/shared/leveldata"
)

// TileData is one placed level tile. The droid's start tile is placed as
// ground; the droid itself is a Hero entity.
type TileData struct {
	Kind   leveldata.Kind
	Facing gamemath.Direction
	Cell   gamemath.Cell
}

var Tile = donburi.NewComponentType[TileData]()
