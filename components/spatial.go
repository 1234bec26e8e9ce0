package components

import (
	"github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/yohamta/donburi"
)

// SpatialData is the one position record every world entity carries. Anchor
// is the ground contact point; everything else is read from the entity type
// so that tuning the catalog never leaves stale geometry behind.
type SpatialData struct {
	Anchor spatial.Point
	Type   *config.EntityType // Shared catalog entry, never copied per instance
	Seq    uint64             // Spawn order, used to keep equal depth keys stable
}

// Bounds returns the collision box at the given scale.
func (s *SpatialData) Bounds(scale spatial.Scale) spatial.Rect {
	return spatial.AnchorToCollisionBounds(s.Anchor, s.Type.CollisionOffset(), s.Type.CollisionSize(), scale)
}

// RenderOrigin returns the top-left corner the sprite is drawn from.
func (s *SpatialData) RenderOrigin(scale spatial.Scale) spatial.Point {
	return spatial.AnchorToRenderOrigin(s.Anchor, s.Type.SpriteSize(), scale)
}

// VisualCenter returns the middle of the sprite body.
func (s *SpatialData) VisualCenter(scale spatial.Scale) spatial.Point {
	return spatial.AnchorToVisualCenter(s.Anchor, s.Type.SpriteSize(), scale)
}

func (s *SpatialData) Layer() spatial.Layer {
	return s.Type.Layer
}

func (s *SpatialData) Kind() config.Kind {
	return s.Type.Kind
}

// DepthKey is the anchor Y, untouched by any visual offset.
func (s *SpatialData) DepthKey() int32 {
	return s.Anchor.Y
}

func (s *SpatialData) Mass() float32 {
	return s.Type.EffectiveMass()
}

func (s *SpatialData) Static() bool {
	return s.Type.Static
}

// ApplyPush moves the anchor. Static entities ignore it.
func (s *SpatialData) ApplyPush(dx, dy int32) {
	if s.Type.Static {
		return
	}
	s.Anchor = s.Anchor.Add(spatial.Point{X: dx, Y: dy})
}

var Spatial = donburi.NewComponentType[SpatialData]()
