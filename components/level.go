package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/isodroid/shared/leveldata"
	"github.com/automoto/isodroid/shared/navigation"
	"github.com/automoto/isodroid/shared/pathing"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	LevelIndex   int
	Levels       []*leveldata.Level
	Grid         *pathing.Grid
	Navigator    *navigation.Navigator
}

var Level = donburi.NewComponentType[LevelData]()
