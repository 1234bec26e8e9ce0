package factory

import (
	"image/color"

	"github.com/automoto/hollowfield/archetypes"
	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnEffect creates a short burst centered on origin. Effects are drawn on
// their own layer and are never depth-sorted against entities.
func SpawnEffect(ecs *ecs.ECS, origin spatial.Point, c color.RGBA) *donburi.Entry {
	entry := archetypes.Effect.Spawn(ecs)
	components.Effect.SetValue(entry, components.EffectData{
		Origin:    origin,
		Frames:    cfg.Render.EffectFrames,
		MaxFrames: cfg.Render.EffectFrames,
		Radius:    cfg.Render.EffectRadius,
		Color:     c,
	})
	return entry
}
