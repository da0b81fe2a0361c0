package factory

import (
	"github.com/automoto/isodroid/components"
	"github.com/automoto/isodroid/shared/gamemath"
	"github.com/automoto/isodroid/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BuildRoom places every tile of the current level and the hero on its
// spawn. It returns the hero entry.
func BuildRoom(ecs *ecs.ECS, levelData *components.LevelData) *donburi.Entry {
	level := levelData.CurrentLevel
	level.Each(func(c gamemath.Cell, t leveldata.Tile) {
		CreateTile(ecs, c, t)
	})

	spawn, ok := level.Spawn()
	if !ok {
		panic("level " + level.Name + " has no droid")
	}
	droid, _ := level.At(spawn)
	return CreateHero(ecs, spawn, droid.Facing)
}

// ClearRoom removes the tiles, the hero and the path markers.
func ClearRoom(ecs *ecs.ECS) {
	var entries []*donburi.Entry
	collect := func(e *donburi.Entry) { entries = append(entries, e) }
	components.Tile.Each(ecs.World, collect)
	components.Hero.Each(ecs.World, collect)
	components.Highlight.Each(ecs.World, collect)
	removeEntries(ecs, entries)
}
