package spatial

// box is a plain collidable with no owning entity.
type box struct {
	Rect Rect
	On   Layer
}

func (b box) Bounds() Rect { return b.Rect }
func (b box) Layer() Layer { return b.On }

// staticBox is a box that never moves.
type staticBox struct {
	box
}

func (staticBox) Static() {}
