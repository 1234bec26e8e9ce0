package factory

import (
	"github.com/automoto/hollowfield/archetypes"
	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateItem(ecs *ecs.ECS, t *cfg.EntityType, anchor spatial.Point) *donburi.Entry {
	var item *donburi.Entry
	if t.Bob {
		item = archetypes.Item.Spawn(ecs, components.Bob)
		components.Bob.SetValue(item, components.BobData{Loop: NewBobLoop()})
	} else {
		item = archetypes.Item.Spawn(ecs)
	}

	components.Spatial.SetValue(item, nextSpatial(t, anchor))
	components.Item.SetValue(item, components.ItemData{Value: t.Value})
	newIdentity(item)

	return item
}

// NewBobLoop returns one up-and-down float cycle. The bob system restarts it
// when it finishes. The output is a visual offset in pixels and never moves
// the anchor.
func NewBobLoop() *gween.Sequence {
	half := cfg.Bob.Period / 2
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, -cfg.Bob.Amplitude, half, ease.InOutSine),
		gween.New(-cfg.Bob.Amplitude, 0, half, ease.InOutSine),
	)
	return seq
}

// NewHop returns a one-shot hop that rises and lands back on the ground.
func NewHop() *gween.Sequence {
	half := cfg.Player.HopDuration / 2
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, -cfg.Player.HopHeight, half, ease.OutQuad),
		gween.New(-cfg.Player.HopHeight, 0, half, ease.InQuad),
	)
	return seq
}
