package systems

import (
	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBob advances item floats and player hops. Both only write the
// sprite's vertical offset, so an entity never changes depth while it bobs.
func UpdateBob(ecs *ecs.ECS) {
	dt := float32(1) / float32(max(cfg.C.TPS, 1))

	components.Bob.Each(ecs.World, func(e *donburi.Entry) {
		bob := components.Bob.Get(e)
		visual := components.Visual.Get(e)

		var offset float32
		if bob.Loop != nil {
			current, _, done := bob.Loop.Update(dt)
			if done {
				bob.Loop.Reset()
			}
			offset += current
		}
		if bob.Hop != nil {
			current, _, done := bob.Hop.Update(dt)
			if done {
				bob.Hop = nil
				current = 0
			}
			offset += current
		}
		visual.OffsetY = float64(offset)
	})
}
