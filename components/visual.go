package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// VisualData holds draw-only state. Offsets shift the sprite on screen and
// never feed the depth key.
type VisualData struct {
	OffsetX    float64
	OffsetY    float64
	FacingLeft bool
	Hidden     bool
}

var Visual = donburi.NewComponentType[VisualData]()

// SpriteData is an optional texture supplied by the animation side. Entities
// without one are drawn as a flat shape in their type color.
type SpriteData struct {
	Image *ebiten.Image
}

var Sprite = donburi.NewComponentType[SpriteData]()

// BobData drives a looping vertical float (items) or a one-shot hop
// (players). The tween output is written to VisualData.OffsetY.
type BobData struct {
	Loop *gween.Sequence
	Hop  *gween.Sequence
}

var Bob = donburi.NewComponentType[BobData]()
