package factory

import (
	"github.com/automoto/hollowfield/archetypes"
	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/automoto/hollowfield/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScenery creates a static world object. Its collision footprint is
// also registered in the placement space so spawns can be kept clear of it.
func CreateScenery(ecs *ecs.ECS, t *cfg.EntityType, anchor spatial.Point) *donburi.Entry {
	scenery := archetypes.Scenery.Spawn(ecs)
	components.Spatial.SetValue(scenery, nextSpatial(t, anchor))

	b := components.Spatial.Get(scenery).Bounds(cfg.C.Scale())
	w, h := float64(b.W), float64(b.H)
	obj := resolv.NewObject(float64(b.X), float64(b.Y), w, h, tags.ResolvSolid, t.Name)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = scenery // Link for O(1) lookup

	components.Object.SetValue(scenery, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return scenery
}

// CreateWall places a terrain wall with its anchor at the bottom middle of
// the tile. typeName falls back to "wall" when the tile names none.
func CreateWall(ecs *ecs.ECS, typeName string, anchor spatial.Point) (*donburi.Entry, error) {
	if typeName == "" {
		typeName = "wall"
	}
	t, err := cfg.Types.Get(typeName)
	if err != nil {
		return nil, err
	}
	return CreateScenery(ecs, t, anchor), nil
}
