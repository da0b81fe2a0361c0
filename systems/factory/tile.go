package factory

import (
	"github.com/automoto/isodroid/archetypes"
	"github.com/automoto/isodroid/components"
	cfg "github.com/automoto/isodroid/config"
	"github.com/automoto/isodroid/shared/gamemath"
	"github.com/automoto/isodroid/shared/leveldata"
	"github.com/automoto/isodroid/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTile places a ground or wall tile at cell. Droid tiles are placed as
// ground under the hero.
func CreateTile(ecs *ecs.ECS, cell gamemath.Cell, tile leveldata.Tile) *donburi.Entry {
	p := gamemath.GridIndexToTwoD(cell, cfg.Tile.Width, cfg.Tile.Height)

	var e *donburi.Entry
	var obj *resolv.Object
	role := components.RoleGround
	if tile.Kind == leveldata.KindWall {
		e = archetypes.Wall.Spawn(ecs)
		obj = resolv.NewObject(p.X, p.Y, cfg.Tile.Width, cfg.Tile.Height, tags.ResolvWall)
		role = components.RoleObject
	} else {
		e = archetypes.Ground.Spawn(ecs)
		obj = resolv.NewObject(p.X, p.Y, cfg.Tile.Width, cfg.Tile.Height, tags.ResolvGround)
		tile.Kind = leveldata.KindGround
	}
	obj.Data = e

	components.Object.SetValue(e, components.ObjectData{Object: obj})
	components.Tile.SetValue(e, components.TileData{
		Kind:   tile.Kind,
		Facing: tile.Facing,
		Cell:   cell,
	})
	components.Depth.SetValue(e, components.DepthData{Role: role})

	return e
}
