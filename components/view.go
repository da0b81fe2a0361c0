package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ViewData places the 2D mini view and the isometric view on screen. Both
// map a point p in their own space to Origin + (p.X, -p.Y) * Scale.
type ViewData struct {
	Origin2D  math.Vec2
	Scale2D   float64
	OriginIso math.Vec2
	ScaleIso  float64
}

var View = donburi.NewComponentType[ViewData]()

// IsoToScreen maps an isometric point to screen pixels.
func (v *ViewData) IsoToScreen(iso math.Vec2) (x, y float64) {
	return v.OriginIso.X + iso.X*v.ScaleIso, v.OriginIso.Y - iso.Y*v.ScaleIso
}

// ScreenToIso maps screen pixels back into isometric space.
func (v *ViewData) ScreenToIso(x, y float64) math.Vec2 {
	return math.Vec2{
		X: (x - v.OriginIso.X) / v.ScaleIso,
		Y: -(y - v.OriginIso.Y) / v.ScaleIso,
	}
}

// TwoDToScreen maps a 2D point to screen pixels in the mini view.
func (v *ViewData) TwoDToScreen(p math.Vec2) (x, y float64) {
	return v.Origin2D.X + p.X*v.Scale2D, v.Origin2D.Y - p.Y*v.Scale2D
}
