package spatial

// Collidable is the capability an entity exposes to take part in collision.
type Collidable interface {
	Bounds() Rect
	Layer() Layer
}

// Static marks immovable world geometry. Static collidables are never
// displaced by resolution.
type Static interface {
	Collidable
	Static()
}

// IsStatic reports whether c is immovable.
func IsStatic(c Collidable) bool {
	_, ok := c.(Static)
	return ok
}

// Pushable is implemented by collidables that can be displaced.
type Pushable interface {
	Collidable
	ApplyPush(dx, dy int32)
}

// Overlapping returns the indices of pool entries that intersect
// pool[subject] on a compatible layer, in pool order. The subject itself and
// nil entries are skipped; an out-of-range subject yields nil.
func Overlapping(pool []Collidable, subject int, m *Matrix) []int {
	if subject < 0 || subject >= len(pool) || pool[subject] == nil {
		return nil
	}
	var hits []int
	for i := range pool {
		if i == subject {
			continue
		}
		if Interacts(pool[subject], pool[i], m) {
			hits = append(hits, i)
		}
	}
	return hits
}

// Interacts reports whether a and b intersect on a compatible layer pair.
func Interacts(a, b Collidable, m *Matrix) bool {
	if a == nil || b == nil {
		return false
	}
	if !m.Compatible(a.Layer(), b.Layer()) {
		return false
	}
	return Intersects(a.Bounds(), b.Bounds())
}
