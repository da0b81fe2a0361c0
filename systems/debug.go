package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/isodroid/components"
	cfg "github.com/automoto/isodroid/config"
	"github.com/automoto/isodroid/fonts"
	"github.com/automoto/isodroid/shared/depthsort"
	"github.com/automoto/isodroid/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// DrawDebug renders body outlines in the 2D view, draw orders in the
// isometric view and a status block for the hero and cursor.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}
	view, ok := getView(ecs)
	if !ok {
		return
	}
	face := fonts.Small.Get()

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.HasTags(tags.ResolvGround) {
			return
		}

		// Determine color based on tags
		c := cfg.Cyan
		if obj.HasTags(tags.ResolvWall) {
			c = cfg.Grey
		} else if obj.HasTags(tags.ResolvHero) {
			c = cfg.LightBlue
		}

		x, y := view.TwoDToScreen(math.Vec2{X: obj.X, Y: obj.Y + obj.H})
		w, h := float32(obj.W*view.Scale2D), float32(obj.H*view.Scale2D)
		drawOutline(screen, float32(x), float32(y), w, h, c)

		iso := components.IsoPosition(e)
		ix, iy := view.IsoToScreen(iso)
		order := components.Depth.Get(e).Order
		text.Draw(screen, fmt.Sprintf("%d", order), face, int(ix+cfg.Tile.Width*view.ScaleIso), int(iy), cfg.Yellow)
	})

	lines := []string{fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS())}

	if hero, ok := components.Hero.First(ecs.World); ok {
		h := components.Hero.Get(hero)
		m := components.Motion.Get(hero)
		p := components.Position2D(hero)
		lines = append(lines,
			fmt.Sprintf("hero (%d,%d) %s %s", h.Cell.Col, h.Cell.Row, h.Facing, h.Action),
			fmt.Sprintf("2d (%.1f,%.1f) key %.1f legs %d", p.X, p.Y, depthsort.Key(components.IsoPosition(hero)), m.Runner.Remaining()),
		)
	}

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		level := components.Level.Get(levelEntry)
		input := getOrCreateInput(ecs)
		iso := view.ScreenToIso(float64(input.CursorX), float64(input.CursorY))
		cell := level.Navigator.GoalFromIso(iso)
		lines = append(lines, fmt.Sprintf("cursor (%d,%d) walkable %t", cell.Col, cell.Row, level.Grid.IsTraversable(cell)))
	}

	lineHeight := face.Metrics().Height.Ceil()
	y := screen.Bounds().Dy() - cfg.HUD.Margin - lineHeight*(len(lines)-1)
	for _, line := range lines {
		text.Draw(screen, line, face, cfg.HUD.Margin, y, cfg.White)
		y += lineHeight
	}
}

func drawOutline(screen *ebiten.Image, x, y, w, h float32, c color.Color) {
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
