package factory

import (
	"github.com/automoto/isodroid/archetypes"
	"github.com/automoto/isodroid/assets/animations"
	"github.com/automoto/isodroid/components"
	cfg "github.com/automoto/isodroid/config"
	"github.com/automoto/isodroid/shared/gamemath"
	"github.com/automoto/isodroid/shared/motion"
	"github.com/automoto/isodroid/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const bobTicksPerFrame = 6

// CreateHero spawns the droid at cell facing facing.
func CreateHero(ecs *ecs.ECS, cell gamemath.Cell, facing gamemath.Direction) *donburi.Entry {
	hero := archetypes.Hero.Spawn(ecs)
	p := gamemath.GridIndexToTwoD(cell, cfg.Tile.Width, cfg.Tile.Height)

	obj := resolv.NewObject(p.X, p.Y, cfg.Tile.Width, cfg.Tile.Height, tags.ResolvHero)
	obj.Data = hero
	components.Object.SetValue(hero, components.ObjectData{Object: obj})

	components.Hero.SetValue(hero, components.HeroData{
		Facing: facing,
		Action: motion.Idle,
		Cell:   cell,
		Spawn:  cell,
		Bob:    animations.NewBob(bobTicksPerFrame),
	})
	components.Depth.SetValue(hero, components.DepthData{Role: components.RoleAgent})

	runner := motion.NewRunner(math.Vec2{X: p.X, Y: p.Y}, facing)
	runner.OnFacing = func(d gamemath.Direction) {
		components.Hero.Get(hero).Facing = d
	}
	components.Motion.SetValue(hero, components.MotionData{Runner: runner})

	return hero
}
