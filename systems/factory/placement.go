package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrBlocked is returned when a spawn footprint would overlap solid geometry.
var ErrBlocked = errors.New("spawn blocked")

// SpawnAtFootprintCenter spawns typeName so that its collision box is
// centered on center, e.g. under a mouse click. It refuses to place dynamic
// entities on top of static geometry.
func SpawnAtFootprintCenter(ecs *ecs.ECS, typeName string, center spatial.Point) (*donburi.Entry, error) {
	t, err := cfg.Types.Get(typeName)
	if err != nil {
		return nil, err
	}
	scale := cfg.C.Scale()
	anchor := spatial.CollisionCenterToAnchor(center, t.CollisionOffset(), t.CollisionSize(), scale)
	bounds := spatial.AnchorToCollisionBounds(anchor, t.CollisionOffset(), t.CollisionSize(), scale)

	if blocker := PlacementBlocker(ecs, bounds); blocker != nil {
		return nil, fmt.Errorf("%w: %s at %v overlaps %s", ErrBlocked, typeName, anchor,
			components.Spatial.Get(blocker).Type.Name)
	}
	return SpawnType(ecs, t, anchor)
}

// PlacementBlocker returns the first static entity whose collision box
// intersects bounds, or nil. The resolv space narrows the search to nearby
// cells and the exact test uses the same half-open rule as collision.
func PlacementBlocker(ecs *ecs.ECS, bounds spatial.Rect) *donburi.Entry {
	if bounds.Empty() {
		return nil
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)

	probe := resolv.NewObject(float64(bounds.X), float64(bounds.Y), float64(bounds.W), float64(bounds.H))
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, cfg.Collision.PlacementTags...)
	if check == nil {
		return nil
	}
	scale := cfg.C.Scale()
	for _, obj := range check.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !entry.HasComponent(components.Spatial) {
			continue
		}
		if spatial.Intersects(bounds, components.Spatial.Get(entry).Bounds(scale)) {
			return entry
		}
	}
	return nil
}
