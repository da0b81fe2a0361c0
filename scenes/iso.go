package scenes

import (
	"log"
	"sync"

	"github.com/automoto/isodroid/archetypes"
	"github.com/automoto/isodroid/assets"
	"github.com/automoto/isodroid/components"
	cfg "github.com/automoto/isodroid/config"
	"github.com/automoto/isodroid/shared/leveldata"
	"github.com/automoto/isodroid/systems"
	"github.com/automoto/isodroid/systems/factory"
	"github.com/automoto/isodroid/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// IsoScene shows one level in both views and walks the droid wherever the
// player taps.
type IsoScene struct {
	ecs     *ecs.ECS
	source  assets.LevelSource
	hud     *ui.HUD
	watcher *leveldata.Watcher
	once    sync.Once
}

// NewIsoScene creates the scene. Levels are read from source on first update.
func NewIsoScene(source assets.LevelSource) *IsoScene {
	return &IsoScene{source: source}
}

func (s *IsoScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *IsoScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Background)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

// Close stops watching level files.
func (s *IsoScene) Close() error {
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Close()
}

func (s *IsoScene) configure() {
	// Render every texture up front so the first frames don't stall
	assets.SetTextureSize(assets.TextureSize{
		TileWidth:  int(cfg.Tile.Width),
		TileHeight: int(cfg.Tile.Height),
		IsoWidth:   cfg.Tile.IsoWidth,
		IsoHeight:  cfg.Tile.IsoHeight,
	})
	assets.PreloadTextures()
	levels := s.source.MustLoadLevels()

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateLevel)
	ecs.AddSystem(systems.UpdateReload)
	ecs.AddSystem(systems.UpdateNavigation)
	ecs.AddSystem(systems.UpdateMotion)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateDepth)
	ecs.AddSystem(systems.UpdateHUD)
	ecs.AddSystem(s.updateHUD)

	ecs.AddRenderer(cfg.Default, systems.Draw2D)
	ecs.AddRenderer(cfg.Default, systems.DrawIso)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, s.drawHUD)

	s.ecs = ecs

	// Create the level entity and its grid FIRST.
	level := factory.CreateLevel(s.ecs, levels, startLevel(levels))
	levelData := components.Level.Get(level)
	factory.CreateView(s.ecs)
	systems.GetOrCreateSettings(s.ecs)

	hero := factory.BuildRoom(s.ecs, levelData)
	if systems.ResumeHero(s.ecs, hero) {
		log.Printf("Resumed hero in %s", levelData.CurrentLevel.Name)
	}
	systems.SortDepth(s.ecs)

	s.hud = ui.NewHUD()
	s.watch()
}

// startLevel picks the level from the last session, falling back to the
// configured start level.
func startLevel(levels []*leveldata.Level) int {
	if cfg.Save.Resume {
		if name := systems.LoadLastLevel(); name != "" {
			if i, ok := factory.LevelIndexByName(levels, name); ok {
				return i
			}
		}
	}
	if i, ok := factory.LevelIndexByName(levels, cfg.Level.Start); ok {
		return i
	}
	log.Printf("Warning: Level %q not found, starting with %s", cfg.Level.Start, levels[0].Name)
	return 0
}

func (s *IsoScene) watch() {
	if !cfg.Level.Watch || cfg.Level.Dir == "" {
		return
	}
	w, err := leveldata.NewWatcher(cfg.Level.Dir, cfg.Reload.Debounce)
	if err != nil {
		log.Printf("Warning: Could not watch %s: %v", cfg.Level.Dir, err)
		return
	}
	s.watcher = w

	reload := archetypes.Reload.Spawn(s.ecs)
	components.Reload.SetValue(reload, components.ReloadData{
		Watcher: w,
		Source:  s.source,
	})
	log.Printf("Watching %s for level changes", cfg.Level.Dir)
}

func (s *IsoScene) updateHUD(ecs *ecs.ECS) {
	s.hud.Refresh(systems.GetOrCreateStatus(ecs))
	s.hud.Update()
}

func (s *IsoScene) drawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !systems.GetOrCreateSettings(ecs).ShowHUD {
		return
	}
	s.hud.Draw(screen)
}
