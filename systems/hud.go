package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
	hudLineGap   = 14
)

// DrawHUD renders the player's health bar and item tally in the top-left
// corner. It is screen space and ignores the camera.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)

	drawBar(screen, hudMargin, hudMargin, hudBarWidth, hudBarHeight, hp.Fraction(),
		color.RGBA{40, 40, 40, 255}, color.RGBA{40, 220, 40, 255})

	if !fonts.Loaded(fonts.Regular) {
		return
	}
	inv := components.Inventory.Get(playerEntry)
	y := hudMargin + hudBarHeight + hudLineGap
	text.Draw(screen, hudItemLine(inv), fonts.Regular.Get(), hudMargin, y, cfg.White)

	if msg, ok := GetStatus(ecs); ok {
		w := float32(screen.Bounds().Dx())
		vector.FillRect(screen, 0, float32(screen.Bounds().Dy()-22), w, 22, cfg.BlackOverlay, false)
		text.Draw(screen, msg, fonts.Small.Get(), hudMargin, screen.Bounds().Dy()-8, cfg.Yellow)
	}
}

// hudItemLine summarizes the inventory, e.g. "Items 4  Value 8".
func hudItemLine(inv *components.InventoryData) string {
	count := 0
	for _, n := range inv.Counts {
		count += n
	}
	return fmt.Sprintf("Items %d  Value %d", count, inv.Value)
}
