package components

import (
	"image/color"

	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/yohamta/donburi"
)

// FlashData tracks sprite flash effect (hit flash, damage flash)
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // color multipliers (1,1,1 = white, 1,0.5,0.5 = red tint)
}

var Flash = donburi.NewComponentType[FlashData]()

// EffectData is a transient world-space effect such as an impact burst. It
// is drawn above all entities and is never depth-sorted against them.
type EffectData struct {
	Origin    spatial.Point
	Frames    int // frames remaining
	MaxFrames int
	Radius    float32
	Color     color.RGBA
}

// Progress returns how far the effect has played, from 0 to 1.
func (e *EffectData) Progress() float32 {
	if e.MaxFrames <= 0 {
		return 1
	}
	return 1 - float32(e.Frames)/float32(e.MaxFrames)
}

var Effect = donburi.NewComponentType[EffectData]()
