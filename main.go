package main

import (
	"errors"
	"flag"
	"image"
	"io/fs"
	"log"

	"github.com/automoto/isodroid/assets"
	"github.com/automoto/isodroid/config"
	"github.com/automoto/isodroid/fonts"
	"github.com/automoto/isodroid/scenes"
	"github.com/automoto/isodroid/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "isodroid.yaml", "YAML file overriding the built-in settings")
	levelsDir := flag.String("levels", "", "directory of TMX levels to use instead of the embedded ones")
	levelName := flag.String("level", "", "level to start in")
	debug := flag.Bool("debug", false, "start with the debug overlay on")
	watch := flag.Bool("watch", false, "reload levels when files in -levels change")
	flag.Parse()

	if err := config.LoadOverrides(*configPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *levelsDir != "" {
		config.Level.Dir = *levelsDir
	}
	if *levelName != "" {
		config.Level.Start = *levelName
	}
	if *debug {
		config.Debug.Enabled = true
		config.Debug.LogNavigation = true
	}
	if *watch {
		config.Level.Watch = true
	}

	if err := fonts.LoadDefaultFonts(config.HUD.FontSize, config.Debug.FontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width*config.C.WindowScale, config.C.Height*config.C.WindowScale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence so the hero resumes where it stopped
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	scene := scenes.NewIsoScene(assets.NewLevelSource(config.Level.Dir))
	runErr := ebiten.RunGame(NewGame(scene))
	if err := scene.Close(); err != nil {
		log.Printf("Warning: Could not stop level watcher: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
