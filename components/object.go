package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links a static entity to its placement object in the terrain
// space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space indexes static world geometry for placement checks.
var Space = donburi.NewComponentType[resolv.Space]()
