package systems

import (
	"errors"
	"log"

	"github.com/automoto/isodroid/components"
	cfg "github.com/automoto/isodroid/config"
	"github.com/automoto/isodroid/shared/gamemath"
	"github.com/automoto/isodroid/shared/motion"
	"github.com/automoto/isodroid/shared/navigation"
	"github.com/automoto/isodroid/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateNavigation turns a tap into a path for the hero. A tap on the hero's
// own cell stops it; other taps that cannot be served leave the current
// motion untouched.
func UpdateNavigation(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	hero, ok := components.Hero.First(ecs.World)
	if !ok {
		return
	}

	if GetAction(input, cfg.ActionStop).JustPressed {
		StopHero(ecs, hero)
	}
	if GetAction(input, cfg.ActionResetHero).JustPressed {
		ResetHero(ecs, hero)
	}

	if input.Tapped {
		RequestPath(ecs, hero, input.TapIso)
	}
}

// RequestPath plans from the hero's current position to the cell under iso
// and starts the hero along it. It reports whether a path was accepted.
func RequestPath(ecs *ecs.ECS, hero *donburi.Entry, iso math.Vec2) bool {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return false
	}
	level := components.Level.Get(levelEntry)

	plan, err := level.Navigator.Plan(components.Position2D(hero), iso)
	if errors.Is(err, navigation.ErrNoMove) {
		// The new queue is empty, so the hero halts where it stands.
		StopHero(ecs, hero)
		return false
	}
	if err != nil {
		if cfg.Debug.LogNavigation {
			log.Printf("navigation: tap at (%.1f, %.1f) ignored: %v", iso.X, iso.Y, err)
		}
		showNotice(ecs, err)
		return false
	}
	if cfg.Debug.LogNavigation {
		log.Printf("navigation: %d cells to %v", len(plan.Path), plan.Goal())
	}

	m := components.Motion.Get(hero)
	m.Runner.Start(plan.Segments)
	m.Path = plan.Path
	components.Hero.Get(hero).Action = motion.Moving

	if cfg.Highlight.Show {
		factory.CreateHighlights(ecs, plan.Path)
	}
	return true
}

// StopHero cancels the hero's path where it stands.
func StopHero(ecs *ecs.ECS, hero *donburi.Entry) {
	m := components.Motion.Get(hero)
	if m.Runner.State() != motion.Moving {
		return
	}
	m.Runner.Stop()
	m.Path = nil
	components.Hero.Get(hero).Action = motion.Idle
	factory.ClearHighlights(ecs)
}

// ResetHero returns the hero to its spawn cell and forgets the saved
// position for the level.
func ResetHero(ecs *ecs.ECS, hero *donburi.Entry) {
	h := components.Hero.Get(hero)
	facing := gamemath.S
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		level := components.Level.Get(levelEntry)
		if t, ok := level.CurrentLevel.At(h.Spawn); ok {
			facing = t.Facing
		}
	}
	placeHero(ecs, hero, h.Spawn, facing)
	saveHero(ecs, hero)
}

// placeHero teleports the hero onto cell, cancelling any motion.
func placeHero(ecs *ecs.ECS, hero *donburi.Entry, cell gamemath.Cell, facing gamemath.Direction) {
	p := gamemath.GridIndexToTwoD(cell, cfg.Tile.Width, cfg.Tile.Height)

	m := components.Motion.Get(hero)
	m.Runner.Teleport(p, facing)
	m.Path = nil
	components.SetPosition2D(hero, p)

	h := components.Hero.Get(hero)
	h.Cell = cell
	h.Facing = facing
	h.Action = motion.Idle
	h.Bob.Restart()

	factory.ClearHighlights(ecs)
}
