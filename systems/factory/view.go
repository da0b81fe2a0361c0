package factory

import (
	"github.com/automoto/isodroid/archetypes"
	"github.com/automoto/isodroid/components"
	cfg "github.com/automoto/isodroid/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateView places both views for the configured screen size.
func CreateView(ecs *ecs.ECS) *donburi.Entry {
	view := archetypes.View.Spawn(ecs)
	components.View.SetValue(view, NewViewData(cfg.C.Width, cfg.C.Height))
	return view
}

// NewViewData lays the views out on a width x height screen.
func NewViewData(width, height int) components.ViewData {
	scale := float64(width) / cfg.View.ReferenceWidth
	if cfg.View.ReferenceWidth <= 0 {
		scale = 1
	}
	w, h := float64(width), float64(height)
	return components.ViewData{
		Origin2D:  math.Vec2{X: w * cfg.View.Origin2DX, Y: h * cfg.View.Origin2DY},
		Scale2D:   scale * cfg.View.Scale2D,
		OriginIso: math.Vec2{X: w * cfg.View.OriginIsoX, Y: h * cfg.View.OriginIsoY},
		ScaleIso:  scale,
	}
}
