package factory

import (
	"github.com/automoto/isodroid/archetypes"
	"github.com/automoto/isodroid/components"
	"github.com/automoto/isodroid/shared/gamemath"
	"github.com/automoto/isodroid/shared/navigation"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHighlights replaces the path markers with one per cell of path.
func CreateHighlights(ecs *ecs.ECS, path []gamemath.Cell) {
	ClearHighlights(ecs)
	for _, h := range navigation.Highlights(path) {
		e := archetypes.Highlight.Spawn(ecs)
		components.Highlight.SetValue(e, components.HighlightData{
			Cell:  h.Cell,
			Index: h.Index,
			Alpha: h.Alpha,
		})
	}
}

// ClearHighlights removes every path marker.
func ClearHighlights(ecs *ecs.ECS) {
	var entries []*donburi.Entry
	components.Highlight.Each(ecs.World, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	removeEntries(ecs, entries)
}

func removeEntries(ecs *ecs.ECS, entries []*donburi.Entry) {
	for _, e := range entries {
		ecs.World.Remove(e.Entity())
	}
}
