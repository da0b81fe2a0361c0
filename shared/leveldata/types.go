// Package leveldata provides TMX level parsing for the isometric room.
// It has no dependencies on ebitengine or donburi.
package leveldata

import (
	"errors"

	"github.com/automoto/isodroid/shared/gamemath"
)

var (
	// ErrMalformedLevel is returned for tile data that has no visual asset.
	ErrMalformedLevel = errors.New("malformed level")
	// ErrNoSpawn is returned when a level has no droid tile.
	ErrNoSpawn = errors.New("level has no droid spawn")
)

// TileLayerName is the TMX tile layer holding the room.
const TileLayerName = "tiles"

// Kind is the category of a level tile.
type Kind int

const (
	KindGround Kind = iota
	KindWall
	KindDroid
)

var kindNames = map[Kind]string{
	KindGround: "ground",
	KindWall:   "wall",
	KindDroid:  "droid",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps a tileset "kind" property to a Kind.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Kinds lists every known tile kind.
func Kinds() []Kind {
	return []Kind{KindGround, KindWall, KindDroid}
}

// Tile is one cell of level data.
type Tile struct {
	Kind   Kind
	Facing gamemath.Direction
}

// Level is a parsed room.
type Level struct {
	Name       string
	Width      int // in tiles
	Height     int // in tiles
	TileWidth  int
	TileHeight int
	Tiles      [][]Tile // [row][col]
}

// At returns the tile at c. ok is false outside the room.
func (l *Level) At(c gamemath.Cell) (Tile, bool) {
	if c.Row < 0 || c.Row >= len(l.Tiles) {
		return Tile{}, false
	}
	row := l.Tiles[c.Row]
	if c.Col < 0 || c.Col >= len(row) {
		return Tile{}, false
	}
	return row[c.Col], true
}

// Spawn returns the first droid tile in row-major order.
func (l *Level) Spawn() (gamemath.Cell, bool) {
	for r, row := range l.Tiles {
		for c, t := range row {
			if t.Kind == KindDroid {
				return gamemath.Cell{Col: c, Row: r}, true
			}
		}
	}
	return gamemath.Cell{}, false
}

// Each calls fn for every tile in row-major order.
func (l *Level) Each(fn func(c gamemath.Cell, t Tile)) {
	for r, row := range l.Tiles {
		for c, t := range row {
			fn(gamemath.Cell{Col: c, Row: r}, t)
		}
	}
}
