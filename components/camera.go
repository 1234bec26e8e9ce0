package components

import (
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // World point shown at the screen center
}

// Offset returns the translation from world space to screen space.
func (c *CameraData) Offset(screenW, screenH int) (float64, float64) {
	return float64(screenW)/2 - c.Position.X, float64(screenH)/2 - c.Position.Y
}

// ScreenToWorld converts a screen position to the world point under it.
func (c *CameraData) ScreenToWorld(x, y, screenW, screenH int) spatial.Point {
	ox, oy := c.Offset(screenW, screenH)
	return spatial.Point{X: int32(float64(x) - ox), Y: int32(float64(y) - oy)}
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenShakeData is attached to the camera while a shake plays.
type ScreenShakeData struct {
	Intensity float64
	Duration  int
	Elapsed   int
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
