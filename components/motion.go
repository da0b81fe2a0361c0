package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/isodroid/shared/gamemath"
	"github.com/automoto/isodroid/shared/motion"
)

// MotionData drives an entity along a planned path.
type MotionData struct {
	Runner *motion.Runner
	Path   []gamemath.Cell // the accepted path, kept for highlights and the HUD
}

var Motion = donburi.NewComponentType[MotionData]()
