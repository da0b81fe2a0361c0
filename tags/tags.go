package tags

import "github.com/yohamta/donburi"

var (
	Hero      = donburi.NewTag().SetName("Hero")
	Ground    = donburi.NewTag().SetName("Ground")
	Wall      = donburi.NewTag().SetName("Wall")
	Highlight = donburi.NewTag().SetName("Highlight")
)

// Resolv tags for 2D bodies
const (
	ResolvGround = "ground"
	ResolvWall   = "solid"
	ResolvHero   = "Hero"
)
