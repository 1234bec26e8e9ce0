package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Enemy   = donburi.NewTag().SetName("Enemy")
	Item    = donburi.NewTag().SetName("Item")
	Scenery = donburi.NewTag().SetName("Scenery")
	Effect  = donburi.NewTag().SetName("Effect")
)

// Resolv tags for static placement geometry
const (
	ResolvSolid = "solid"
	ResolvTree  = "tree"
)
