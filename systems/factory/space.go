package factory

import (
	"github.com/automoto/hollowfield/archetypes"
	"github.com/automoto/hollowfield/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the resolv space that holds static scenery. It only
// answers placement queries; overlap resolution never goes through it.
// Cell sizes below one pixel are raised to one.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, max(cellWidth, 1), max(cellHeight, 1))
	components.Space.Set(space, spaceData)
	return space
}
