package systems

import (
	"github.com/automoto/isodroid/components"
	cfg "github.com/automoto/isodroid/config"
	"github.com/automoto/isodroid/shared/gamemath"
	"github.com/automoto/isodroid/shared/motion"
	"github.com/automoto/isodroid/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var arrivals []*donburi.Entry

// UpdateMotion advances every runner by one tick and copies the result onto
// the entity's 2D body.
func UpdateMotion(ecs *ecs.ECS) {
	stepMotion(ecs, 1/float64(ebiten.TPS()))
}

func stepMotion(ecs *ecs.ECS, dt float64) {
	arrivals = arrivals[:0]

	components.Motion.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Motion.Get(e)
		wasMoving := m.Runner.State() == motion.Moving

		m.Runner.Advance(dt)
		components.SetPosition2D(e, m.Runner.Position())

		if !e.HasComponent(components.Hero) {
			return
		}
		hero := components.Hero.Get(e)
		hero.Facing = m.Runner.Facing()
		hero.Action = m.Runner.State()
		hero.Cell = gamemath.TwoDToGridIndex(m.Runner.Position(), cfg.Tile.Width, cfg.Tile.Height)

		if hero.Action == motion.Moving {
			hero.Bob.Update()
		} else {
			hero.Bob.Restart()
		}

		if wasMoving && hero.Action == motion.Idle {
			m.Path = nil
			arrivals = append(arrivals, e)
		}
	})

	for _, e := range arrivals {
		factory.ClearHighlights(ecs)
		saveHero(ecs, e)
	}
}
