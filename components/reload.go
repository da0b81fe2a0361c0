package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/isodroid/assets"
	"github.com/automoto/isodroid/shared/leveldata"
)

// ReloadData ties a level watcher to the source it reloads from.
type ReloadData struct {
	Watcher *leveldata.Watcher
	Source  assets.LevelSource
}

var Reload = donburi.NewComponentType[ReloadData]()
