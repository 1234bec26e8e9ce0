package spatial

import "math"

// MinMass replaces non-positive or NaN masses before resolution.
const MinMass float32 = 1e-3

// InfiniteMass is the mass of static participants.
var InfiniteMass = float32(math.Inf(1))

// Body is one participant of a resolution step.
type Body struct {
	Bounds Rect
	Mass   float32
}

// NewBody builds the resolution view of a collidable. Static collidables get
// infinite mass regardless of mass.
func NewBody(c Collidable, mass float32) Body {
	if IsStatic(c) {
		mass = InfiniteMass
	}
	return Body{Bounds: c.Bounds(), Mass: mass}
}

// Static reports whether b has infinite mass.
func (b Body) Static() bool {
	return math.IsInf(float64(b.Mass), 1)
}

// ClampMass returns m, or MinMass when m is not strictly positive.
func ClampMass(m float32) float32 {
	if m > 0 {
		return m
	}
	return MinMass
}

// Axis names the separation axis chosen for a pair.
type Axis uint8

const (
	AxisNone Axis = iota
	AxisX
	AxisY
)

// ShallowAxis picks the axis with the smaller overlap. Ties go to X.
func ShallowAxis(a, b Rect) (Axis, int32) {
	ox, oy := Overlap(a, b)
	if ox == 0 || oy == 0 {
		return AxisNone, 0
	}
	if ox <= oy {
		return AxisX, ox
	}
	return AxisY, oy
}

// Ratios returns the share of the overlap each participant moves by.
// A static participant takes 0 and leaves the full overlap to the other;
// two static participants both take 0.
func Ratios(massA, massB float32) (ratioA, ratioB float32) {
	a, b := Body{Mass: massA}, Body{Mass: massB}
	switch {
	case a.Static() && b.Static():
		return 0, 0
	case a.Static():
		return 0, 1
	case b.Static():
		return 1, 0
	}
	massA, massB = ClampMass(massA), ClampMass(massB)
	total := massA + massB
	return massB / total, massA / total
}

// Resolve computes the displacement that separates a and b along their
// shallow axis. The other axis is left alone. Displacements are whole units:
// a's share is rounded and b takes the remainder, so the pair always ends up
// exactly edge to edge unless one side is static.
//
// A moves toward the negative side of the axis when its center is at or
// before b's, and toward the positive side otherwise.
func Resolve(a, b Body) (da, db Point) {
	axis, overlap := ShallowAxis(a.Bounds, b.Bounds)
	if axis == AxisNone {
		return Point{}, Point{}
	}

	ratioA, ratioB := Ratios(a.Mass, b.Mass)
	if ratioA == 0 && ratioB == 0 {
		return Point{}, Point{}
	}

	var moveA, moveB int32
	switch {
	case ratioB == 0:
		moveA = overlap
	case ratioA == 0:
		moveB = overlap
	default:
		moveA = int32(math.Round(float64(float32(overlap) * ratioA)))
		moveB = overlap - moveA
	}

	ca, cb := a.Bounds.Center(), b.Bounds.Center()
	sign := int32(-1)
	if (axis == AxisX && ca.X > cb.X) || (axis == AxisY && ca.Y > cb.Y) {
		sign = 1
	}

	if axis == AxisX {
		return Point{X: sign * moveA}, Point{X: -sign * moveB}
	}
	return Point{Y: sign * moveA}, Point{Y: -sign * moveB}
}

// ResolvePair resolves two collidables and applies the displacement to every
// participant that can be pushed.
func ResolvePair(a, b Collidable, massA, massB float32) (da, db Point) {
	da, db = Resolve(NewBody(a, massA), NewBody(b, massB))
	if p, ok := a.(Pushable); ok && da != (Point{}) {
		p.ApplyPush(da.X, da.Y)
	}
	if p, ok := b.(Pushable); ok && db != (Point{}) {
		p.ApplyPush(db.X, db.Y)
	}
	return da, db
}
