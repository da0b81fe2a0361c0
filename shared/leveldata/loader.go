package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/isodroid/shared/gamemath"
)

// Load parses a TMX file into a Level. It takes an fs.FS so callers can pass
// embed.FS (built-in levels) or os.DirFS (a directory being hot reloaded).
//
// Every cell of the tiles layer must reference a tileset tile with a known
// "kind" and a "facing" in 0..7, and the room must contain a droid.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:       strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == TileLayerName {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("%s: no %q layer: %w", tmxPath, TileLayerName, ErrMalformedLevel)
	}
	if len(layer.Tiles) < levelMap.Width*levelMap.Height {
		return nil, fmt.Errorf("%s: layer has %d tiles, want %d: %w",
			tmxPath, len(layer.Tiles), levelMap.Width*levelMap.Height, ErrMalformedLevel)
	}

	level.Tiles = make([][]Tile, levelMap.Height)
	for y := 0; y < levelMap.Height; y++ {
		level.Tiles[y] = make([]Tile, levelMap.Width)
		for x := 0; x < levelMap.Width; x++ {
			t, err := parseTile(layer.Tiles[y*levelMap.Width+x])
			if err != nil {
				return nil, fmt.Errorf("%s: cell (%d,%d): %w", tmxPath, x, y, err)
			}
			level.Tiles[y][x] = t
		}
	}

	if _, ok := level.Spawn(); !ok {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}

	return level, nil
}

func parseTile(lt *tiled.LayerTile) (Tile, error) {
	if lt == nil || lt.IsNil() {
		return Tile{}, fmt.Errorf("empty cell: %w", ErrMalformedLevel)
	}

	tilesetTile, err := lt.Tileset.GetTilesetTile(lt.ID)
	if err != nil {
		return Tile{}, fmt.Errorf("tile %d has no tileset entry: %w", lt.ID, ErrMalformedLevel)
	}

	kindName := tilesetTile.Properties.GetString("kind")
	kind, ok := ParseKind(kindName)
	if !ok {
		return Tile{}, fmt.Errorf("tile %d: unknown kind %q: %w", lt.ID, kindName, ErrMalformedLevel)
	}

	facingValues := tilesetTile.Properties.Get("facing")
	if len(facingValues) == 0 {
		return Tile{}, fmt.Errorf("tile %d: missing facing: %w", lt.ID, ErrMalformedLevel)
	}
	facing, err := strconv.Atoi(facingValues[0])
	if err != nil || !gamemath.Direction(facing).Valid() {
		return Tile{}, fmt.Errorf("tile %d: bad facing %q: %w", lt.ID, facingValues[0], ErrMalformedLevel)
	}

	return Tile{Kind: kind, Facing: gamemath.Direction(facing)}, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys, loads each, and
// returns them sorted by name.
func LoadAll(fsys fs.FS, levelsDir string) ([]*Level, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make([]*Level, 0, len(matches))
	for _, match := range matches {
		level, err := Load(fsys, match)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Name < levels[j].Name
	})
	return levels, nil
}
