package assets

import (
	"fmt"
	"image"
	"image/color"
	stdmath "math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/isodroid/shared/gamemath"
	"github.com/automoto/isodroid/shared/leveldata"
	"github.com/automoto/isodroid/shared/motion"
)

// IsoPrefix marks the isometric variant of a texture name.
const IsoPrefix = "iso_3d_"

// TextureName is the 2D texture for a tile kind, heading and action, e.g.
// "droid_ne_move".
func TextureName(kind leveldata.Kind, facing gamemath.Direction, action motion.State) string {
	return fmt.Sprintf("%s_%s_%s", kind, facing.Short(), strings.ToLower(action.String()))
}

// IsoTextureName is TextureName for the isometric view.
func IsoTextureName(kind leveldata.Kind, facing gamemath.Direction, action motion.State) string {
	return IsoPrefix + TextureName(kind, facing, action)
}

// TextureKey is a parsed texture name.
type TextureKey struct {
	Iso    bool
	Kind   leveldata.Kind
	Facing gamemath.Direction
	Action motion.State
}

// ParseTextureName reverses TextureName and IsoTextureName.
func ParseTextureName(name string) (TextureKey, bool) {
	var key TextureKey
	if rest, ok := strings.CutPrefix(name, IsoPrefix); ok {
		key.Iso = true
		name = rest
	}

	parts := strings.Split(name, "_")
	if len(parts) != 3 {
		return TextureKey{}, false
	}

	kind, ok := leveldata.ParseKind(parts[0])
	if !ok {
		return TextureKey{}, false
	}
	key.Kind = kind

	found := false
	for d := gamemath.N; d <= gamemath.NW; d++ {
		if d.Short() == parts[1] {
			key.Facing = d
			found = true
			break
		}
	}
	if !found {
		return TextureKey{}, false
	}

	switch parts[2] {
	case "idle":
		key.Action = motion.Idle
	case "move":
		key.Action = motion.Moving
	default:
		return TextureKey{}, false
	}
	return key, true
}

// TextureSize is the 2D tile size and isometric sprite size textures are
// drawn at. Isometric sprites are anchored at their bottom-left corner; the
// ground diamond fills the bottom IsoWidth x IsoWidth/2 of the image.
type TextureSize struct {
	TileWidth, TileHeight int
	IsoWidth, IsoHeight   int
}

type textureCache struct {
	size   TextureSize
	images map[string]*ebiten.Image
}

var textures = &textureCache{
	size:   TextureSize{TileWidth: 32, TileHeight: 32, IsoWidth: 64, IsoHeight: 64},
	images: map[string]*ebiten.Image{},
}

// SetTextureSize drops cached textures and renders future ones at size.
func SetTextureSize(size TextureSize) {
	textures.size = size
	textures.images = map[string]*ebiten.Image{}
}

// Texture returns the named texture, rendering it on first use. An unknown
// name is a programming error and panics.
func Texture(name string) *ebiten.Image {
	if img, ok := textures.images[name]; ok {
		return img
	}

	key, ok := ParseTextureName(name)
	if !ok {
		panic(fmt.Sprintf("Texture %s not found", name))
	}

	var rgba *image.RGBA
	if key.Iso {
		rgba = RenderIso(key, textures.size)
	} else {
		rgba = Render2D(key, textures.size)
	}
	img := ebiten.NewImageFromImage(rgba)
	textures.images[name] = img
	return img
}

// PreloadTextures renders every texture up front.
func PreloadTextures() {
	for _, kind := range leveldata.Kinds() {
		for d := gamemath.N; d <= gamemath.NW; d++ {
			for _, action := range []motion.State{motion.Idle, motion.Moving} {
				Texture(TextureName(kind, d, action))
				Texture(IsoTextureName(kind, d, action))
			}
		}
	}
}

var (
	groundTop   = color.RGBA{R: 92, G: 110, B: 84, A: 255}
	groundEdge  = color.RGBA{R: 70, G: 86, B: 64, A: 255}
	wallTop     = color.RGBA{R: 168, G: 160, B: 150, A: 255}
	wallLeft    = color.RGBA{R: 120, G: 112, B: 104, A: 255}
	wallRight   = color.RGBA{R: 96, G: 90, B: 84, A: 255}
	wallFacing  = color.RGBA{R: 210, G: 196, B: 120, A: 255}
	droidIdle   = color.RGBA{R: 80, G: 150, B: 230, A: 255}
	droidMove   = color.RGBA{R: 120, G: 200, B: 255, A: 255}
	droidNose   = color.RGBA{R: 250, G: 240, B: 90, A: 255}
	droidShadow = color.RGBA{R: 0, G: 0, B: 0, A: 90}
)

// heading2D is the unit vector of d on screen in the 2D view (y down).
func heading2D(d gamemath.Direction) (x, y float64) {
	rad := float64(d) * gamemath.SectorWidth * stdmath.Pi / 180
	return stdmath.Sin(rad), -stdmath.Cos(rad)
}

// headingIso is the on-screen direction of d in the isometric view.
func headingIso(d gamemath.Direction) (x, y float64) {
	rad := float64(d) * gamemath.SectorWidth * stdmath.Pi / 180
	a, b := stdmath.Sin(rad), stdmath.Cos(rad)
	x, y = a+b, (a-b)/2
	n := stdmath.Hypot(x, y)
	return x / n, y / n
}

// Render2D draws a top-down tile.
func Render2D(key TextureKey, size TextureSize) *image.RGBA {
	w, h := size.TileWidth, size.TileHeight
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	switch key.Kind {
	case leveldata.KindGround:
		fillRect(img, 0, 0, w, h, groundEdge)
		fillRect(img, 1, 1, w-1, h-1, groundTop)
	case leveldata.KindWall:
		fillRect(img, 0, 0, w, h, wallLeft)
		hx, hy := heading2D(key.Facing)
		cx, cy := float64(w)/2, float64(h)/2
		fillCircle(img, cx+hx*float64(w)/3, cy+hy*float64(h)/3, float64(w)/8, wallFacing)
	case leveldata.KindDroid:
		body := droidIdle
		if key.Action == motion.Moving {
			body = droidMove
		}
		cx, cy := float64(w)/2, float64(h)/2
		r := float64(w) * 0.4
		fillCircle(img, cx, cy, r, body)
		hx, hy := heading2D(key.Facing)
		fillCircle(img, cx+hx*r*0.6, cy+hy*r*0.6, r*0.3, droidNose)
	}
	return img
}

// RenderIso draws an isometric sprite anchored at its bottom-left corner.
func RenderIso(key TextureKey, size TextureSize) *image.RGBA {
	w, h := size.IsoWidth, size.IsoHeight
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	hw, hh := float64(w)/2, float64(w)/4 // half diamond
	baseX, baseY := hw, float64(h)-hh   // base diamond centre

	switch key.Kind {
	case leveldata.KindGround:
		fillDiamond(img, baseX, baseY, hw, hh, groundEdge)
		fillDiamond(img, baseX, baseY, hw-2, hh-1, groundTop)
	case leveldata.KindWall:
		lift := float64(h) - 2*hh
		topY := baseY - lift
		// side faces: the base diamond swept up to the top
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				fx, fy := float64(x)+0.5, float64(y)+0.5
				if !inPrism(fx, fy, baseX, topY, baseY, hw, hh) {
					continue
				}
				if fx < baseX {
					img.SetRGBA(x, y, wallLeft)
				} else {
					img.SetRGBA(x, y, wallRight)
				}
			}
		}
		fillDiamond(img, baseX, topY, hw, hh, wallTop)
		hx, hy := headingIso(key.Facing)
		fillCircle(img, baseX+hx*hw*0.5, topY+hy*hh*0.5, hh/4, wallFacing)
	case leveldata.KindDroid:
		body := droidIdle
		if key.Action == motion.Moving {
			body = droidMove
		}
		fillEllipse(img, baseX, baseY, hw*0.4, hh*0.4, droidShadow)
		r := hw * 0.35
		cy := baseY - r*1.2
		fillCircle(img, baseX, cy, r, body)
		hx, hy := headingIso(key.Facing)
		fillCircle(img, baseX+hx*r*0.6, cy+hy*r*0.6, r*0.3, droidNose)
	}
	return img
}

// inPrism reports whether (x, y) lies in a diamond of half size hw x hh
// swept vertically from centre topY down to centre baseY.
func inPrism(x, y, cx, topY, baseY, hw, hh float64) bool {
	dy := 0.0
	switch {
	case y < topY:
		dy = topY - y
	case y > baseY:
		dy = y - baseY
	}
	return stdmath.Abs(x-cx)/hw+dy/hh <= 1
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func inDiamond(x, y, cx, cy, hw, hh float64) bool {
	return stdmath.Abs(x-cx)/hw+stdmath.Abs(y-cy)/hh <= 1
}

func fillDiamond(img *image.RGBA, cx, cy, hw, hh float64, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if inDiamond(float64(x)+0.5, float64(y)+0.5, cx, cy, hw, hh) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func fillEllipse(img *image.RGBA, cx, cy, rx, ry float64, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	fillEllipse(img, cx, cy, r, r, c)
}
