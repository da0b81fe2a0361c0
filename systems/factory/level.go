package factory

import (
	"github.com/automoto/isodroid/archetypes"
	"github.com/automoto/isodroid/components"
	cfg "github.com/automoto/isodroid/config"
	"github.com/automoto/isodroid/shared/leveldata"
	"github.com/automoto/isodroid/shared/motion"
	"github.com/automoto/isodroid/shared/navigation"
	"github.com/automoto/isodroid/shared/pathing"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MotionParams builds movement timing from the current configuration.
func MotionParams() motion.Params {
	p := motion.DefaultParams(cfg.Tile.Width, cfg.Tile.Height)
	p.Velocity = cfg.Tile.Width * cfg.Motion.VelocityFactor
	p.DiagonalMultiplier = cfg.Motion.DiagonalMultiplier
	p.SectorOffset = cfg.Motion.SectorOffset
	return p
}

// CreateLevel spawns the level entity holding levels[levelIndex] and the
// grid and navigator derived from it.
func CreateLevel(ecs *ecs.ECS, levels []*leveldata.Level, levelIndex int) *donburi.Entry {
	if len(levels) == 0 {
		panic("No levels to create")
	}

	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	level := archetypes.Level.Spawn(ecs)
	levelData := &components.LevelData{Levels: levels}
	components.Level.Set(level, levelData)
	SetCurrentLevel(levelData, levelIndex)

	return level
}

// SetCurrentLevel switches to levels[index] and rebuilds the grid. The old
// grid is dropped, never mutated.
func SetCurrentLevel(levelData *components.LevelData, index int) {
	levelData.LevelIndex = index
	levelData.CurrentLevel = levelData.Levels[index]
	levelData.Grid = pathing.NewGrid(levelData.CurrentLevel)
	levelData.Navigator = navigation.New(levelData.Grid, MotionParams())
}

// LevelIndexByName returns the index of the named level, or false.
func LevelIndexByName(levels []*leveldata.Level, name string) (int, bool) {
	for i, l := range levels {
		if l.Name == name {
			return i, true
		}
	}
	return 0, false
}
