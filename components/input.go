package components

import (
	cfg "github.com/automoto/isodroid/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions, plus the pointer release seen this frame.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	Tapped bool      // a click or touch ended this frame
	TapIso math.Vec2 // where, in isometric space
	TapX   int       // where, in screen pixels
	TapY   int

	CursorX, CursorY int
}

var Input = donburi.NewComponentType[InputData]()
