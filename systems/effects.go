package systems

import (
	"github.com/automoto/hollowfield/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes sprite flashes and transient world effects.
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateTransientEffects(ecs)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// updateTransientEffects counts effects down and removes the ones that have
// finished.
func updateTransientEffects(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.Effect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.Effect.Get(e)
		fx.Frames--
		if fx.Frames <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}

// TriggerFlash tints an entity's sprite for a number of frames.
func TriggerFlash(entry *donburi.Entry, frames int, r, g, b float32) {
	if !entry.HasComponent(components.Flash) {
		return
	}
	components.Flash.SetValue(entry, components.FlashData{Duration: frames, R: r, G: g, B: b})
}

// DrawEffects renders transient effects as expanding rings above every
// entity.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())

	components.Effect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.Effect.Get(e)
		p := fx.Progress()
		c := fx.Color
		c.A = uint8(float32(c.A) * (1 - p))
		radius := fx.Radius * (0.5 + p)
		vector.StrokeCircle(screen,
			float32(float64(fx.Origin.X)+camX),
			float32(float64(fx.Origin.Y)+camY),
			radius, 2, c, false)
	})
}
