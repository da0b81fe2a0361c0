package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/isodroid/components"
	cfg "github.com/automoto/isodroid/config"
	"github.com/automoto/isodroid/shared/gamemath"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// itemStore is the subset of *gdata.Manager used for saving.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var saveStore itemStore

// SavedHero is where the hero last stood in one level.
type SavedHero struct {
	Col    int `json:"col"`
	Row    int `json:"row"`
	Facing int `json:"facing"`
}

// SavedSession remembers which level was open.
type SavedSession struct {
	Level string `json:"level"`
}

const sessionKey = "session"

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Save.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	saveStore = m
	return nil
}

func heroKey(level string) string {
	return "hero_" + level
}

// LoadHero returns the saved hero position for a level, or nil if none.
func LoadHero(level string) (*SavedHero, error) {
	var saved SavedHero
	ok, err := loadItem(heroKey(level), &saved)
	if !ok || err != nil {
		return nil, err
	}
	return &saved, nil
}

// SaveHero stores the hero position for a level.
func SaveHero(level string, cell gamemath.Cell, facing gamemath.Direction) error {
	return saveItem(heroKey(level), &SavedHero{Col: cell.Col, Row: cell.Row, Facing: int(facing)})
}

// LoadLastLevel returns the level open at the end of the last session.
func LoadLastLevel() string {
	var session SavedSession
	if ok, _ := loadItem(sessionKey, &session); !ok {
		return ""
	}
	return session.Level
}

// SaveLastLevel records the level now open.
func SaveLastLevel(level string) error {
	return saveItem(sessionKey, &SavedSession{Level: level})
}

func loadItem(key string, v any) (bool, error) {
	if saveStore == nil {
		return false, nil
	}

	data, err := saveStore.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false, err
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if saveStore == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}

	if err := saveStore.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}

// saveHero stores the hero's cell in the current level. Only resting
// positions on the grid are worth keeping.
func saveHero(ecs *ecs.ECS, hero *donburi.Entry) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	h := components.Hero.Get(hero)
	_ = SaveHero(level.CurrentLevel.Name, h.Cell, h.Facing)
}

// ResumeHero moves the hero to its saved cell in the current level. Saved
// cells that are no longer walkable are ignored.
func ResumeHero(ecs *ecs.ECS, hero *donburi.Entry) bool {
	if !cfg.Save.Resume {
		return false
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return false
	}
	level := components.Level.Get(levelEntry)

	saved, err := LoadHero(level.CurrentLevel.Name)
	if err != nil || saved == nil {
		return false
	}

	cell := gamemath.Cell{Col: saved.Col, Row: saved.Row}
	facing := gamemath.Direction(saved.Facing)
	if !level.Grid.IsTraversable(cell) || !facing.Valid() {
		log.Printf("Warning: Ignoring saved hero position %v in %s", cell, level.CurrentLevel.Name)
		return false
	}

	placeHero(ecs, hero, cell, facing)
	return true
}
