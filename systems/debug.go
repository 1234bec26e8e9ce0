package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugBoxColor     = color.RGBA{0, 255, 255, 255}
	debugOverlapColor = color.RGBA{255, 0, 0, 255}
	debugStaticColor  = color.RGBA{100, 100, 100, 255}
	debugAnchorColor  = color.RGBA{255, 255, 0, 255}
)

// DrawDebug outlines every collision box and marks every anchor. Boxes that
// currently overlap another box on a compatible layer are drawn in red.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	debug := GetOrCreateDebug(ecs)
	if !debug.ShowCollision {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := cameraOffset(ecs, width, height)
	view := viewRect(ecs, width, height)

	pool, bodies := collisionBodies(ecs.World, cfg.C.Scale())
	for i, body := range bodies {
		b := body.Bounds()
		if !spatial.Intersects(view, b) {
			continue
		}

		c := debugBoxColor
		switch {
		case body.sp.Static():
			c = debugStaticColor
		case len(spatial.Overlapping(pool, i, cfg.Collision.Matrix)) > 0:
			c = debugOverlapColor
		}
		x, y := float32(float64(b.X)+camX), float32(float64(b.Y)+camY)
		vector.StrokeRect(screen, x, y, float32(b.W), float32(b.H), 1, c, false)

		ax, ay := float32(float64(body.sp.Anchor.X)+camX), float32(float64(body.sp.Anchor.Y)+camY)
		vector.FillRect(screen, ax-2, ay, 5, 1, debugAnchorColor, false)
		vector.FillRect(screen, ax, ay-2, 1, 5, debugAnchorColor, false)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %0.1f  FPS %0.1f  entities %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(), len(bodies)), 4, height-16)
}
