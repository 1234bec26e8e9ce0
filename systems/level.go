package systems

import (
	"image/color"

	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var gridColor = color.RGBA{R: 0, G: 0, B: 0, A: 24}

// DrawLevel fills the ground under the level. Walls and scenery are
// entities and are drawn, depth sorted, by DrawEntities.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(color.Black)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.Level == nil {
		return
	}
	level := levelData.Level

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := cameraOffset(ecs, width, height)

	if levelData.Background != nil {
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Translate(camX, camY)
		screen.DrawImage(levelData.Background, opts)
		return
	}

	vector.FillRect(screen, float32(camX), float32(camY), float32(level.Width), float32(level.Height), cfg.Ground, false)

	// Faint tile grid
	if level.TileW <= 0 || level.TileH <= 0 {
		return
	}
	for x := 0; x <= level.Width; x += level.TileW {
		vector.FillRect(screen, float32(float64(x)+camX), float32(camY), 1, float32(level.Height), gridColor, false)
	}
	for y := 0; y <= level.Height; y += level.TileH {
		vector.FillRect(screen, float32(camX), float32(float64(y)+camY), float32(level.Width), 1, gridColor, false)
	}
}
