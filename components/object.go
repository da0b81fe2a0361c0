package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/isodroid/shared/gamemath"
)

// ObjectData is an entity's body in 2D space. X and Y are the authoritative
// position; the isometric position is always derived from them.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Position2D returns the entity's 2D position.
func Position2D(e *donburi.Entry) math.Vec2 {
	o := Object.Get(e)
	return math.Vec2{X: o.X, Y: o.Y}
}

// SetPosition2D moves the entity's body.
func SetPosition2D(e *donburi.Entry, p math.Vec2) {
	o := Object.Get(e)
	o.X, o.Y = p.X, p.Y
}

// IsoPosition projects the entity's 2D position into isometric space.
func IsoPosition(e *donburi.Entry) math.Vec2 {
	return gamemath.TwoDToIso(Position2D(e))
}
