package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/isodroid/components"
	"github.com/automoto/isodroid/shared/motion"
	"github.com/automoto/isodroid/shared/navigation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// noticeSeconds is how long a rejected tap stays on the HUD.
const noticeSeconds = 2

// GetOrCreateStatus returns the singleton Status component, creating if needed
func GetOrCreateStatus(ecs *ecs.ECS) *components.StatusData {
	entry, ok := components.Status.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Status))
	}
	return components.Status.Get(entry)
}

// UpdateHUD refreshes the HUD text from the level and hero.
func UpdateHUD(ecs *ecs.ECS) {
	status := GetOrCreateStatus(ecs)
	status.Tick()

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		level := components.Level.Get(levelEntry)
		status.Level = fmt.Sprintf("%s  %d/%d", level.CurrentLevel.Name, level.LevelIndex+1, len(level.Levels))
	}

	hero, ok := components.Hero.First(ecs.World)
	if !ok {
		status.Hero, status.Path = "", ""
		return
	}
	h := components.Hero.Get(hero)
	m := components.Motion.Get(hero)
	status.Hero = fmt.Sprintf("cell %d,%d  facing %s  %s", h.Cell.Col, h.Cell.Row, h.Facing, h.Action)

	if h.Action == motion.Moving && len(m.Path) > 0 {
		goal := m.Path[len(m.Path)-1]
		status.Path = fmt.Sprintf("to %d,%d  %d cells  %d left", goal.Col, goal.Row, len(m.Path), m.Runner.Remaining())
	} else {
		status.Path = ""
	}
}

// noticeFor explains a rejected navigation request.
func noticeFor(err error) string {
	switch {
	case errors.Is(err, navigation.ErrGoalBlocked):
		return "can't stand there"
	case errors.Is(err, navigation.ErrUnreachable):
		return "no way through"
	case errors.Is(err, navigation.ErrNoMove):
		return ""
	}
	return err.Error()
}

func showNotice(ecs *ecs.ECS, err error) {
	if msg := noticeFor(err); msg != "" {
		GetOrCreateStatus(ecs).SetNotice(msg, noticeSeconds*ebiten.TPS())
	}
}
