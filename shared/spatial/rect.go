package spatial

// Rect is an axis-aligned box covering [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y int32
	W, H uint32
}

func (r Rect) Left() int32   { return r.X }
func (r Rect) Top() int32    { return r.Y }
func (r Rect) Right() int32  { return r.X + int32(r.W) }
func (r Rect) Bottom() int32 { return r.Y + int32(r.H) }

// Empty reports whether r has no area. Empty boxes never intersect.
func (r Rect) Empty() bool {
	return r.W == 0 || r.H == 0
}

// Center returns the integer midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + int32(r.W)/2, Y: r.Y + int32(r.H)/2}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Intersects reports whether a and b overlap. Boxes that only share an edge
// do not intersect.
func Intersects(a, b Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.Left() < b.Right() && b.Left() < a.Right() &&
		a.Top() < b.Bottom() && b.Top() < a.Bottom()
}

// Overlap returns the penetration depth of a and b on each axis. Both values
// are positive when the boxes intersect and zero otherwise.
func Overlap(a, b Rect) (x, y int32) {
	if !Intersects(a, b) {
		return 0, 0
	}
	x = min(a.Right(), b.Right()) - max(a.Left(), b.Left())
	y = min(a.Bottom(), b.Bottom()) - max(a.Top(), b.Top())
	return x, y
}
