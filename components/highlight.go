package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/isodroid/shared/gamemath"
)

// HighlightData marks one cell of the current path in the 2D view.
type HighlightData struct {
	Cell  gamemath.Cell
	Index int
	Alpha float64
}

var Highlight = donburi.NewComponentType[HighlightData]()
