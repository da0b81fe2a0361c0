package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/isodroid/components"
	cfg "github.com/automoto/isodroid/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// HUD is the status panel in the top-right corner of the screen.
type HUD struct {
	UI *ebitenui.UI

	levelLabel  *widget.Label
	heroLabel   *widget.Label
	pathLabel   *widget.Label
	noticeLabel *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	normalFace text.Face
	smallFace  text.Face
}

// NewHUD builds the status panel.
func NewHUD() *HUD {
	h := &HUD{}
	h.loadFonts()
	h.buildUI()
	return h
}

func (h *HUD) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	h.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.HUD.FontSize,
	}
	h.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.HUD.FontSize - 2,
	}
}

func (h *HUD) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Keeps the panel off the screen edge
	corner := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.HUD.Margin)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	padding := widget.Insets{Top: 4, Bottom: 4, Left: 6, Right: 6}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.BlackOverlay)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(2),
		)),
	)

	h.levelLabel = h.newLabel(&h.normalFace, cfg.White)
	h.heroLabel = h.newLabel(&h.smallFace, cfg.LightGreen)
	h.pathLabel = h.newLabel(&h.smallFace, cfg.LightBlue)
	h.noticeLabel = h.newLabel(&h.smallFace, color.RGBA{255, 100, 100, 255})

	panel.AddChild(h.levelLabel)
	panel.AddChild(h.heroLabel)
	panel.AddChild(h.pathLabel)
	panel.AddChild(h.noticeLabel)
	corner.AddChild(panel)
	rootContainer.AddChild(corner)

	h.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (h *HUD) newLabel(face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", face, &widget.LabelColor{
			Idle: c,
		}),
	)
}

// Refresh copies status into the labels.
func (h *HUD) Refresh(status *components.StatusData) {
	h.levelLabel.Label = status.Level
	h.heroLabel.Label = status.Hero
	h.pathLabel.Label = status.Path
	h.noticeLabel.Label = status.Notice
}

// Update runs the ebitenui layout pass.
func (h *HUD) Update() {
	h.UI.Update()
}

// Draw renders the panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	h.UI.Draw(screen)
}
