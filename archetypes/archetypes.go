package archetypes

import (
	"github.com/automoto/isodroid/components"
	cfg "github.com/automoto/isodroid/config"
	"github.com/automoto/isodroid/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ground = newArchetype(
		tags.Ground,
		components.Tile,
		components.Object,
		components.Depth,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Tile,
		components.Object,
		components.Depth,
	)
	Hero = newArchetype(
		tags.Hero,
		components.Hero,
		components.Object,
		components.Motion,
		components.Depth,
	)
	Highlight = newArchetype(
		tags.Highlight,
		components.Highlight,
	)
	Level = newArchetype(
		components.Level,
	)
	View = newArchetype(
		components.View,
	)
	Reload = newArchetype(
		components.Reload,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
