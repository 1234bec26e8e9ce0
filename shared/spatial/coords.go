// Package spatial holds the coordinate model shared by collision and rendering.
//
// Every entity stores exactly one position, its anchor: the point where it
// touches the ground, horizontally centered and vertically at the base of
// its sprite. Rectangles for drawing, hitting and placing are derived from
// the anchor through the four transforms in this file and nowhere else.
package spatial

// Point is a world-space integer position.
type Point struct {
	X, Y int32
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Size is an unscaled width and height.
type Size struct {
	W, H uint32
}

// Scale multiplies every unscaled quantity when producing render or
// collision rectangles.
type Scale uint32

func (s Scale) length(v uint32) int32 {
	return int32(v * uint32(s))
}

func (s Scale) offset(v int32) int32 {
	return v * int32(s)
}

// AnchorToRenderOrigin returns the top-left corner the sprite texture is
// drawn at.
func AnchorToRenderOrigin(anchor Point, sprite Size, scale Scale) Point {
	return Point{
		X: anchor.X - scale.length(sprite.W)/2,
		Y: anchor.Y - scale.length(sprite.H),
	}
}

// AnchorToVisualCenter returns the middle of the sprite body. Effects and
// attacks that should originate from the body rather than the feet use it.
func AnchorToVisualCenter(anchor Point, sprite Size, scale Scale) Point {
	return Point{
		X: anchor.X,
		Y: anchor.Y - scale.length(sprite.H)/2,
	}
}

// AnchorToCollisionBounds returns the physical footprint of an entity. It is
// the only legitimate source of an AABB.
func AnchorToCollisionBounds(anchor, offset Point, size Size, scale Scale) Rect {
	return Rect{
		X: anchor.X + scale.offset(offset.X),
		Y: anchor.Y + scale.offset(offset.Y),
		W: size.W * uint32(scale),
		H: size.H * uint32(scale),
	}
}

// CollisionCenterToAnchor is the inverse of AnchorToCollisionBounds keyed by
// the footprint center. Placement code uses it when a position is given as
// "put the footprint here" rather than as an anchor.
func CollisionCenterToAnchor(center, offset Point, size Size, scale Scale) Point {
	return Point{
		X: center.X - scale.length(size.W)/2 - scale.offset(offset.X),
		Y: center.Y - scale.length(size.H)/2 - scale.offset(offset.Y),
	}
}
