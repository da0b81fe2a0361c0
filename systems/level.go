package systems

import (
	"log"

	"github.com/automoto/isodroid/assets"
	"github.com/automoto/isodroid/components"
	cfg "github.com/automoto/isodroid/config"
	"github.com/automoto/isodroid/shared/gamemath"
	"github.com/automoto/isodroid/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevel handles switching between loaded levels.
func UpdateLevel(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	n := len(levelData.Levels)
	if n <= 1 {
		return
	}

	if GetAction(input, cfg.ActionNextLevel).JustPressed {
		ChangeLevel(ecs, (levelData.LevelIndex+1)%n)
	} else if GetAction(input, cfg.ActionPrevLevel).JustPressed {
		ChangeLevel(ecs, (levelData.LevelIndex-1+n)%n)
	}
}

// ChangeLevel replaces the room with levels[index], placing the hero at its
// saved position when there is one.
func ChangeLevel(ecs *ecs.ECS, index int) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if index < 0 || index >= len(levelData.Levels) {
		return
	}

	factory.SetCurrentLevel(levelData, index)
	factory.ClearRoom(ecs)
	hero := factory.BuildRoom(ecs, levelData)
	ResumeHero(ecs, hero)
	SortDepth(ecs)

	SaveLastLevel(levelData.CurrentLevel.Name)
}

// UpdateReload rebuilds the levels when their files change on disk.
func UpdateReload(ecs *ecs.ECS) {
	entry, ok := components.Reload.First(ecs.World)
	if !ok {
		return
	}
	reload := components.Reload.Get(entry)
	if reload.Watcher == nil {
		return
	}

	changed := false
drain:
	for {
		select {
		case name, ok := <-reload.Watcher.Events:
			if !ok {
				reload.Watcher = nil
				break drain
			}
			log.Printf("Level file changed: %s", name)
			changed = true
		case err, ok := <-reload.Watcher.Errors:
			if !ok {
				reload.Watcher = nil
				break drain
			}
			log.Printf("Warning: Level watcher error: %v", err)
		default:
			break drain
		}
	}

	if changed {
		ReloadLevels(ecs, reload.Source)
	}
}

// ReloadLevels loads every level from source again and rebuilds the room.
// A level that fails to load leaves the running levels in place. The hero
// keeps its cell if that cell is still walkable.
func ReloadLevels(ecs *ecs.ECS, source assets.LevelSource) bool {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return false
	}
	levelData := components.Level.Get(levelEntry)

	levels, err := source.LoadAll()
	if err != nil {
		log.Printf("Warning: Could not reload levels: %v", err)
		return false
	}
	if len(levels) == 0 {
		log.Printf("Warning: No levels found on reload, keeping %s", levelData.CurrentLevel.Name)
		return false
	}

	current := levelData.CurrentLevel.Name
	var heroCell gamemath.Cell
	var heroFacing gamemath.Direction
	hadHero := false
	if hero, ok := components.Hero.First(ecs.World); ok {
		h := components.Hero.Get(hero)
		heroCell, heroFacing, hadHero = h.Cell, h.Facing, true
	}

	index, found := factory.LevelIndexByName(levels, current)
	levelData.Levels = levels
	factory.SetCurrentLevel(levelData, index)
	factory.ClearRoom(ecs)
	hero := factory.BuildRoom(ecs, levelData)

	if found && hadHero && levelData.Grid.IsTraversable(heroCell) {
		placeHero(ecs, hero, heroCell, heroFacing)
	}
	SortDepth(ecs)
	return true
}
