package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/automoto/isodroid/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

const levelsDir = "levels"

// LevelSource is where level TMX files are read from: the embedded set, or a
// directory on disk when one is configured.
type LevelSource struct {
	FS  fs.FS
	Dir string
}

// EmbeddedLevels returns the built-in levels.
func EmbeddedLevels() LevelSource {
	return LevelSource{FS: assetFS, Dir: levelsDir}
}

// DiskLevels returns levels read from dir on disk.
func DiskLevels(dir string) LevelSource {
	return LevelSource{FS: os.DirFS(dir), Dir: "."}
}

// NewLevelSource picks DiskLevels when dir is set and EmbeddedLevels otherwise.
func NewLevelSource(dir string) LevelSource {
	if dir == "" {
		return EmbeddedLevels()
	}
	return DiskLevels(dir)
}

// LoadAll loads every level in the source, sorted by name.
func (s LevelSource) LoadAll() ([]*leveldata.Level, error) {
	return leveldata.LoadAll(s.FS, s.Dir)
}

// Load loads one level by name (file stem).
func (s LevelSource) Load(name string) (*leveldata.Level, error) {
	return leveldata.Load(s.FS, path.Join(s.Dir, name+".tmx"))
}

// MustLoadLevels loads every level in the source. A broken or empty level set
// is a fatal configuration error.
func (s LevelSource) MustLoadLevels() []*leveldata.Level {
	levels, err := s.LoadAll()
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	if len(levels) == 0 {
		panic("No level files found in " + s.Dir)
	}
	return levels
}

// MustLoadLevel loads the named built-in level.
func MustLoadLevel(name string) *leveldata.Level {
	level, err := EmbeddedLevels().Load(name)
	if err != nil {
		panic(fmt.Sprintf("Failed to load level %s: %v", name, err))
	}
	return level
}
