package systems

import (
	"image/color"
	"sort"

	"github.com/automoto/isodroid/assets"
	"github.com/automoto/isodroid/assets/animations"
	"github.com/automoto/isodroid/components"
	cfg "github.com/automoto/isodroid/config"
	"github.com/automoto/isodroid/shared/gamemath"
	"github.com/automoto/isodroid/shared/leveldata"
	"github.com/automoto/isodroid/shared/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	drawOp     = &ebiten.DrawImageOptions{}
	isoObjects []*donburi.Entry
)

func getView(ecs *ecs.ECS) (*components.ViewData, bool) {
	entry, ok := components.View.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.View.Get(entry), true
}

// textureNames returns the 2D and isometric texture names for an entity.
func textureNames(e *donburi.Entry) (flat, iso string) {
	if e.HasComponent(components.Hero) {
		h := components.Hero.Get(e)
		return assets.TextureName(leveldata.KindDroid, h.Facing, h.Action),
			assets.IsoTextureName(leveldata.KindDroid, h.Facing, h.Action)
	}
	t := components.Tile.Get(e)
	return assets.TextureName(t.Kind, t.Facing, motion.Idle),
		assets.IsoTextureName(t.Kind, t.Facing, motion.Idle)
}

// Draw2D renders the orthogonal mini view: tiles, path markers, then the hero.
func Draw2D(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := getView(ecs)
	if !ok {
		return
	}

	components.Tile.Each(ecs.World, func(e *donburi.Entry) {
		flat, _ := textureNames(e)
		draw2DSprite(screen, view, components.Position2D(e), assets.Texture(flat))
	})

	if cfg.Highlight.Show {
		components.Highlight.Each(ecs.World, func(e *donburi.Entry) {
			drawHighlight(screen, view, components.Highlight.Get(e))
		})
	}

	components.Hero.Each(ecs.World, func(e *donburi.Entry) {
		flat, _ := textureNames(e)
		draw2DSprite(screen, view, components.Position2D(e), assets.Texture(flat))
	})
}

// draw2DSprite draws img over the tile square whose 2D origin is p.
func draw2DSprite(screen *ebiten.Image, view *components.ViewData, p math.Vec2, img *ebiten.Image) {
	x, y := view.TwoDToScreen(math.Vec2{X: p.X, Y: p.Y + cfg.Tile.Height})
	sx := cfg.Tile.Width * view.Scale2D / float64(img.Bounds().Dx())
	sy := cfg.Tile.Height * view.Scale2D / float64(img.Bounds().Dy())

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(sx, sy)
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, drawOp)
}

func drawHighlight(screen *ebiten.Image, view *components.ViewData, h *components.HighlightData) {
	p := gamemath.GridIndexToTwoD(h.Cell, cfg.Tile.Width, cfg.Tile.Height)
	x, y := view.TwoDToScreen(math.Vec2{X: p.X, Y: p.Y + cfg.Tile.Height})

	// premultiplied alpha
	c := cfg.Highlight.Color
	a := h.Alpha
	tint := color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
	vector.FillRect(screen, float32(x), float32(y),
		float32(cfg.Tile.Width*view.Scale2D), float32(cfg.Tile.Height*view.Scale2D), tint, false)
}

// DrawIso renders the isometric view. Ground tiles form the lower layer in
// any order; walls and the hero follow in their sorted draw order.
func DrawIso(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := getView(ecs)
	if !ok {
		return
	}

	isoObjects = isoObjects[:0]
	components.Depth.Each(ecs.World, func(e *donburi.Entry) {
		if components.Depth.Get(e).Role == components.RoleGround {
			_, iso := textureNames(e)
			drawIsoSprite(screen, view, components.IsoPosition(e), assets.Texture(iso), 0)
			return
		}
		isoObjects = append(isoObjects, e)
	})

	sort.SliceStable(isoObjects, func(i, j int) bool {
		return components.Depth.Get(isoObjects[i]).Order < components.Depth.Get(isoObjects[j]).Order
	})

	for _, e := range isoObjects {
		lift := 0.0
		if e.HasComponent(components.Hero) {
			lift = animations.BobOffset(components.Hero.Get(e).Bob.Frame())
		}
		_, iso := textureNames(e)
		drawIsoSprite(screen, view, components.IsoPosition(e), assets.Texture(iso), lift)
	}
}

// drawIsoSprite draws img with its bottom-left corner on iso. lift shifts
// it vertically in unscaled pixels.
func drawIsoSprite(screen *ebiten.Image, view *components.ViewData, iso math.Vec2, img *ebiten.Image, lift float64) {
	x, y := view.IsoToScreen(iso)
	s := view.ScaleIso
	h := float64(img.Bounds().Dy())

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(s, s)
	drawOp.GeoM.Translate(x, y-h*s+lift*s)
	screen.DrawImage(img, drawOp)
}
