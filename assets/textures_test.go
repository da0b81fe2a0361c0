package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/isodroid/shared/gamemath"
	"github.com/automoto/isodroid/shared/leveldata"
	"github.com/automoto/isodroid/shared/motion"
)

var testSize = TextureSize{TileWidth: 32, TileHeight: 32, IsoWidth: 64, IsoHeight: 64}

func TestTextureNames(t *testing.T) {
	assert.Equal(t, "droid_ne_move", TextureName(leveldata.KindDroid, gamemath.NE, motion.Moving))
	assert.Equal(t, "ground_n_idle", TextureName(leveldata.KindGround, gamemath.N, motion.Idle))
	assert.Equal(t, "iso_3d_wall_sw_idle", IsoTextureName(leveldata.KindWall, gamemath.SW, motion.Idle))
}

func TestParseTextureNameRoundTrip(t *testing.T) {
	for _, kind := range leveldata.Kinds() {
		for d := gamemath.N; d <= gamemath.NW; d++ {
			for _, action := range []motion.State{motion.Idle, motion.Moving} {
				key, ok := ParseTextureName(TextureName(kind, d, action))
				require.True(t, ok)
				assert.Equal(t, TextureKey{Kind: kind, Facing: d, Action: action}, key)

				key, ok = ParseTextureName(IsoTextureName(kind, d, action))
				require.True(t, ok)
				assert.True(t, key.Iso)
			}
		}
	}
}

func TestParseTextureNameRejects(t *testing.T) {
	for _, name := range []string{
		"", "droid", "droid_ne", "lava_n_idle", "droid_up_idle", "droid_n_run",
		"iso_3d_", "iso_2d_droid_n_idle", "droid_n_idle_extra",
	} {
		_, ok := ParseTextureName(name)
		assert.False(t, ok, name)
	}
}

func TestTextureUnknownPanics(t *testing.T) {
	assert.PanicsWithValue(t, "Texture lava_n_idle not found", func() { Texture("lava_n_idle") })
}

func TestRender2DShapes(t *testing.T) {
	ground := Render2D(TextureKey{Kind: leveldata.KindGround}, testSize)
	assert.Equal(t, 32, ground.Bounds().Dx())
	assert.Equal(t, groundTop, ground.RGBAAt(16, 16))
	assert.Equal(t, groundEdge, ground.RGBAAt(0, 0))

	droid := Render2D(TextureKey{Kind: leveldata.KindDroid, Facing: gamemath.E}, testSize)
	assert.Equal(t, uint8(0), droid.RGBAAt(0, 0).A, "corners stay clear")
	assert.Equal(t, droidNose, droid.RGBAAt(23, 16), "nose points east")

	moving := Render2D(TextureKey{Kind: leveldata.KindDroid, Facing: gamemath.W, Action: motion.Moving}, testSize)
	assert.Equal(t, droidMove, moving.RGBAAt(22, 16))
	assert.Equal(t, droidNose, moving.RGBAAt(8, 16), "nose points west")
}

func TestRenderIsoAnchoredBottomLeft(t *testing.T) {
	ground := RenderIso(TextureKey{Kind: leveldata.KindGround, Iso: true}, testSize)
	// diamond centre sits a quarter width above the bottom edge
	assert.Equal(t, groundTop, ground.RGBAAt(32, 48))
	assert.Equal(t, uint8(0), ground.RGBAAt(32, 10).A, "nothing above a ground diamond")
	assert.Equal(t, uint8(0), ground.RGBAAt(1, 63).A, "bottom-left corner outside the diamond")

	wall := RenderIso(TextureKey{Kind: leveldata.KindWall, Iso: true}, testSize)
	assert.Equal(t, wallTop, wall.RGBAAt(20, 16))
	assert.Equal(t, wallLeft, wall.RGBAAt(10, 40))
	assert.Equal(t, wallRight, wall.RGBAAt(54, 40))

	droid := RenderIso(TextureKey{Kind: leveldata.KindDroid, Iso: true}, testSize)
	assert.Equal(t, droidIdle, droid.RGBAAt(32-8, 48-13))
}

func TestHeadingIso(t *testing.T) {
	x, y := headingIso(gamemath.N)
	assert.Greater(t, x, 0.0, "north leans right")
	assert.Less(t, y, 0.0, "and up")

	x, y = headingIso(gamemath.E)
	assert.Greater(t, x, 0.0)
	assert.Greater(t, y, 0.0, "east leans down")

	x, y = headingIso(gamemath.SW)
	assert.Less(t, x, 0.0)
	assert.InDelta(t, 0.0, y, 1e-9)
}
