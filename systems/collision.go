package systems

import (
	"cmp"
	"slices"

	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// entityBody adapts a world entity to the collision capabilities. Bounds are
// recomputed on every call so a push applied earlier in the pass is seen by
// later pairs.
type entityBody struct {
	entry *donburi.Entry
	sp    *components.SpatialData
	scale spatial.Scale
}

func (b *entityBody) Bounds() spatial.Rect   { return b.sp.Bounds(b.scale) }
func (b *entityBody) Layer() spatial.Layer   { return b.sp.Layer() }
func (b *entityBody) ApplyPush(dx, dy int32) { b.sp.ApplyPush(dx, dy) }

// staticBody is an entityBody that resolution never moves.
type staticBody struct {
	*entityBody
}

func (staticBody) Static() {}

// collisionBodies returns every spatial entity in spawn order.
func collisionBodies(w donburi.World, scale spatial.Scale) ([]spatial.Collidable, []*entityBody) {
	var bodies []*entityBody
	components.Spatial.Each(w, func(e *donburi.Entry) {
		sp := components.Spatial.Get(e)
		if sp.Type == nil {
			return
		}
		bodies = append(bodies, &entityBody{entry: e, sp: sp, scale: scale})
	})
	slices.SortFunc(bodies, func(a, b *entityBody) int {
		return cmp.Compare(a.sp.Seq, b.sp.Seq)
	})

	pool := make([]spatial.Collidable, len(bodies))
	for i, b := range bodies {
		if b.sp.Static() {
			pool[i] = staticBody{b}
		} else {
			pool[i] = b
		}
	}
	return pool, bodies
}

// UpdateCollisions runs one resolution pass over every pair of entities in
// spawn order. Pairs whose layers ask for a push are separated right away;
// pairs that ask for contact publish an event that combat handles after the
// pass. A pair is evaluated once per frame, so an entity pushed into a third
// one late in the pass is settled on the next frame.
func UpdateCollisions(ecs *ecs.ECS) {
	m := cfg.Collision.Matrix
	pool, bodies := collisionBodies(ecs.World, cfg.C.Scale())

	for i := 0; i < len(pool); i++ {
		for j := i + 1; j < len(pool); j++ {
			a, b := pool[i], pool[j]
			if spatial.IsStatic(a) && spatial.IsStatic(b) {
				continue
			}
			resp := m.Response(a.Layer(), b.Layer())
			if resp == 0 || !spatial.Intersects(a.Bounds(), b.Bounds()) {
				continue
			}

			if resp.Has(spatial.ResponseContact) {
				components.Contact.Publish(ecs.World, components.ContactEvent{
					A:      bodies[i].entry,
					B:      bodies[j].entry,
					LayerA: a.Layer(),
					LayerB: b.Layer(),
				})
			}
			if resp.Has(spatial.ResponsePush) {
				spatial.ResolvePair(a, b, bodies[i].sp.Mass(), bodies[j].sp.Mass())
			}
		}
	}
}
