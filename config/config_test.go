package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshot saves the globals and restores them when the test ends.
func snapshot(t *testing.T) {
	t.Helper()
	display := *C
	view, tile, motion, depth := View, Tile, Motion, Depth
	highlight, level, save, reload, hud, debug := Highlight, Level, Save, Reload, HUD, Debug
	t.Cleanup(func() {
		C = &display
		View, Tile, Motion, Depth = view, tile, motion, depth
		Highlight, Level, Save, Reload, HUD, Debug = highlight, level, save, reload, hud, debug
	})
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, 32.0, Tile.Width)
	assert.Equal(t, 2.0, Motion.VelocityFactor)
	assert.Equal(t, 1.4, Motion.DiagonalMultiplier)
	assert.Equal(t, 22.5, Motion.SectorOffset)
	assert.Equal(t, 6, Depth.SortEvery)
	assert.Equal(t, "droid_room", Level.Start)
	assert.InDelta(t, 1.0, DeviceScale(), 1e-9)
}

func TestApplyOverridesKeepsUnsetValues(t *testing.T) {
	snapshot(t)

	err := ApplyOverrides([]byte(`
motion:
  diagonal_multiplier: 1.5
depth:
  sort_every: 3
reload:
  debounce: 250ms
debug:
  enabled: true
`))
	require.NoError(t, err)

	assert.Equal(t, 1.5, Motion.DiagonalMultiplier)
	assert.Equal(t, 2.0, Motion.VelocityFactor, "untouched key")
	assert.Equal(t, 22.5, Motion.SectorOffset, "untouched key")
	assert.Equal(t, 3, Depth.SortEvery)
	assert.Equal(t, 250*time.Millisecond, Reload.Debounce)
	assert.True(t, Debug.Enabled)
	assert.Equal(t, 667, C.Width, "untouched section")
	assert.Equal(t, Red, Highlight.Color)
}

func TestApplyOverridesRejectsInvalid(t *testing.T) {
	snapshot(t)

	for name, doc := range map[string]string{
		"zero tile":      "tile:\n  width: 0\n",
		"zero cadence":   "depth:\n  sort_every: 0\n",
		"zero velocity":  "motion:\n  velocity_factor: 0\n",
		"negative scale": "view:\n  scale_2d: -1\n",
	} {
		err := ApplyOverrides([]byte(doc))
		assert.ErrorIs(t, err, ErrInvalid, name)
	}

	err := ApplyOverrides([]byte("motion: [1, 2"))
	assert.Error(t, err)

	assert.Equal(t, 32.0, Tile.Width, "failed overrides change nothing")
	assert.Equal(t, 6, Depth.SortEvery)
}

func TestLoadOverrides(t *testing.T) {
	snapshot(t)

	path := filepath.Join(t.TempDir(), "isodroid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level:\n  start: other_room\n  dir: levels\n"), 0o644))

	require.NoError(t, LoadOverrides(path))
	assert.Equal(t, "other_room", Level.Start)
	assert.Equal(t, "levels", Level.Dir)

	err := LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDeviceScale(t *testing.T) {
	snapshot(t)

	C.Width = 1334
	assert.InDelta(t, 2.0, DeviceScale(), 1e-9)
	View.ReferenceWidth = 0
	assert.InDelta(t, 1.0, DeviceScale(), 1e-9)
}
