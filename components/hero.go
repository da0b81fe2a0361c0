package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/isodroid/assets/animations"
	"github.com/automoto/isodroid/shared/gamemath"
	"github.com/automoto/isodroid/shared/motion"
)

type HeroData struct {
	Facing gamemath.Direction
	Action motion.State
	Cell   gamemath.Cell // cell under the hero's 2D position
	Spawn  gamemath.Cell
	Bob    *animations.Loop
}

var Hero = donburi.NewComponentType[HeroData]()
