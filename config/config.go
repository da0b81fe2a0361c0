package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; renderers are ordered by registration.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	WindowScale int    `yaml:"window_scale"`
	Title       string `yaml:"title"`
}

// ViewConfig places the two views on screen. Origins are fractions of the
// logical screen size; both views scale with Width / ReferenceWidth.
type ViewConfig struct {
	ReferenceWidth float64 `yaml:"reference_width"`

	Origin2DX float64 `yaml:"origin_2d_x"`
	Origin2DY float64 `yaml:"origin_2d_y"`
	Scale2D   float64 `yaml:"scale_2d"`

	OriginIsoX float64 `yaml:"origin_iso_x"`
	OriginIsoY float64 `yaml:"origin_iso_y"`
}

// TileConfig contains the logical 2D tile size and the isometric sprite size
type TileConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	IsoWidth  int     `yaml:"iso_width"`
	IsoHeight int     `yaml:"iso_height"` // full sprite height, block walls included
}

// MotionConfig contains hero movement timing
type MotionConfig struct {
	VelocityFactor     float64 `yaml:"velocity_factor"`     // tile widths per second
	DiagonalMultiplier float64 `yaml:"diagonal_multiplier"` // applied to diagonal steps after the first
	SectorOffset       float64 `yaml:"sector_offset"`       // degrees added before bucketing an angle
}

// DepthConfig contains depth sort cadence
type DepthConfig struct {
	SortEvery int `yaml:"sort_every"` // frames between sorts
}

// HighlightConfig contains path highlight styling in the 2D view
type HighlightConfig struct {
	Color color.RGBA `yaml:"-"`
	Show  bool       `yaml:"show"`
}

// LevelConfig selects where levels come from
type LevelConfig struct {
	Dir   string `yaml:"dir"`   // on-disk TMX directory; empty uses the embedded levels
	Start string `yaml:"start"` // level name without extension
	Watch bool   `yaml:"watch"` // hot reload TMX files from Dir
}

// SaveConfig contains persistence options
type SaveConfig struct {
	AppName string `yaml:"app_name"`
	Resume  bool   `yaml:"resume"`
}

// ReloadConfig contains level hot reload options
type ReloadConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// HUDConfig contains HUD layout
type HUDConfig struct {
	FontSize float64 `yaml:"font_size"`
	Margin   int     `yaml:"margin"`
	Show     bool    `yaml:"show"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled       bool    `yaml:"enabled"`        // start with the overlay on
	LogNavigation bool    `yaml:"log_navigation"` // log rejected navigation requests
	FontSize      float64 `yaml:"font_size"`
}

// Global configuration instances
var C *Config
var View ViewConfig
var Tile TileConfig
var Motion MotionConfig
var Depth DepthConfig
var Highlight HighlightConfig
var Level LevelConfig
var Save SaveConfig
var Reload ReloadConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Background   = color.RGBA{R: 24, G: 26, B: 32, A: 255}
)

func init() {
	C = &Config{
		Width:       667,
		Height:      375,
		WindowScale: 2,
		Title:       "isodroid",
	}

	// View Config
	View = ViewConfig{
		ReferenceWidth: 667,

		Origin2DX: 0.02,
		Origin2DY: 0.07,
		Scale2D:   0.4,

		OriginIsoX: 0.5,
		OriginIsoY: 0.25,
	}

	Tile = TileConfig{
		Width:     32,
		Height:    32,
		IsoWidth:  64,
		IsoHeight: 64,
	}

	Motion = MotionConfig{
		VelocityFactor:     2.0,
		DiagonalMultiplier: 1.4,
		SectorOffset:       22.5,
	}

	Depth = DepthConfig{
		SortEvery: 6,
	}

	Highlight = HighlightConfig{
		Color: Red,
		Show:  true,
	}

	Level = LevelConfig{
		Start: "droid_room",
	}

	Save = SaveConfig{
		AppName: "isodroid",
		Resume:  true,
	}

	Reload = ReloadConfig{
		Debounce: 100 * time.Millisecond,
	}

	HUD = HUDConfig{
		FontSize: 12,
		Margin:   8,
		Show:     true,
	}

	Debug = DebugConfig{
		FontSize: 10,
	}
}

// DeviceScale is the scale applied to both views for the current screen width.
func DeviceScale() float64 {
	if View.ReferenceWidth <= 0 {
		return 1
	}
	return float64(C.Width) / View.ReferenceWidth
}
