package systems

import (
	"errors"

	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/automoto/hollowfield/systems/factory"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateSpawner places the configured spawn type where the world was
// clicked, centering its collision footprint on the cursor.
func UpdateSpawner(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if !input.Clicked {
		return
	}

	at := spatial.Point{X: int32(input.CursorX), Y: int32(input.CursorY)}
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		at = components.Camera.Get(cameraEntry).ScreenToWorld(input.CursorX, input.CursorY, cfg.C.Width, cfg.C.Height)
	}

	_, err := factory.SpawnAtFootprintCenter(e, cfg.C.SpawnType, at)
	switch {
	case errors.Is(err, factory.ErrBlocked):
		SetStatus(e, "Something is in the way")
	case err != nil:
		zap.L().Warn("click spawn failed", zap.String("type", cfg.C.SpawnType), zap.Error(err))
	}
}
