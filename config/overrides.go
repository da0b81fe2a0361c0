package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrides mirrors the global configuration in a YAML document. Sections
// and keys that are absent keep their built-in defaults.
type overrides struct {
	Display   Config          `yaml:"display"`
	View      ViewConfig      `yaml:"view"`
	Tile      TileConfig      `yaml:"tile"`
	Motion    MotionConfig    `yaml:"motion"`
	Depth     DepthConfig     `yaml:"depth"`
	Highlight HighlightConfig `yaml:"highlight"`
	Level     LevelConfig     `yaml:"level"`
	Save      SaveConfig      `yaml:"save"`
	Reload    ReloadConfig    `yaml:"reload"`
	HUD       HUDConfig       `yaml:"hud"`
	Debug     DebugConfig     `yaml:"debug"`
}

// LoadOverrides reads a YAML file and applies it on top of the defaults.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := ApplyOverrides(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// ApplyOverrides decodes a YAML document over the current configuration.
// Nothing is changed if the document is invalid.
func ApplyOverrides(data []byte) error {
	o := overrides{
		Display:   *C,
		View:      View,
		Tile:      Tile,
		Motion:    Motion,
		Depth:     Depth,
		Highlight: Highlight,
		Level:     Level,
		Save:      Save,
		Reload:    Reload,
		HUD:       HUD,
		Debug:     Debug,
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if err := o.validate(); err != nil {
		return err
	}

	display := o.Display
	C = &display
	View = o.View
	Tile = o.Tile
	Motion = o.Motion
	Depth = o.Depth
	Highlight = o.Highlight
	Level = o.Level
	Save = o.Save
	Reload = o.Reload
	HUD = o.HUD
	Debug = o.Debug
	return nil
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

func (o *overrides) validate() error {
	switch {
	case o.Display.Width <= 0 || o.Display.Height <= 0:
		return fmt.Errorf("%w: display size %dx%d", ErrInvalid, o.Display.Width, o.Display.Height)
	case o.Tile.Width <= 0 || o.Tile.Height <= 0:
		return fmt.Errorf("%w: tile size %vx%v", ErrInvalid, o.Tile.Width, o.Tile.Height)
	case o.Motion.VelocityFactor <= 0:
		return fmt.Errorf("%w: velocity_factor must be positive", ErrInvalid)
	case o.Motion.DiagonalMultiplier <= 0:
		return fmt.Errorf("%w: diagonal_multiplier must be positive", ErrInvalid)
	case o.Depth.SortEvery < 1:
		return fmt.Errorf("%w: sort_every must be at least 1", ErrInvalid)
	case o.View.Scale2D <= 0:
		return fmt.Errorf("%w: scale_2d must be positive", ErrInvalid)
	}
	return nil
}
