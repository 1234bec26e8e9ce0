package factory

import (
	"fmt"
	"sync/atomic"

	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var spawnSeq atomic.Uint64

// nextSpatial stamps a new spatial record with the next spawn sequence
// number. The sequence is what keeps equal depth keys and collision pair
// order stable from frame to frame.
func nextSpatial(t *cfg.EntityType, anchor spatial.Point) components.SpatialData {
	return components.SpatialData{
		Anchor: anchor,
		Type:   t,
		Seq:    spawnSeq.Add(1),
	}
}

// Spawn creates an entity of the named catalog type at anchor.
func Spawn(ecs *ecs.ECS, typeName string, anchor spatial.Point) (*donburi.Entry, error) {
	t, err := cfg.Types.Get(typeName)
	if err != nil {
		return nil, err
	}
	return SpawnType(ecs, t, anchor)
}

// SpawnType creates an entity of type t at anchor, dispatching on its kind.
func SpawnType(ecs *ecs.ECS, t *cfg.EntityType, anchor spatial.Point) (*donburi.Entry, error) {
	switch t.Kind {
	case cfg.KindPlayer:
		return CreatePlayer(ecs, t, anchor), nil
	case cfg.KindEnemy:
		return CreateEnemy(ecs, t, anchor), nil
	case cfg.KindItem:
		return CreateItem(ecs, t, anchor), nil
	case cfg.KindScenery:
		return CreateScenery(ecs, t, anchor), nil
	}
	return nil, fmt.Errorf("entity type %q: cannot spawn kind %s", t.Name, t.Kind)
}

func newIdentity(entry *donburi.Entry) {
	setIdentity(entry, uuid.Nil)
}

func setIdentity(entry *donburi.Entry, id uuid.UUID) {
	if id == uuid.Nil {
		id = uuid.New()
	}
	components.Identity.SetValue(entry, components.IdentityData{ID: id})
}

// AssignID replaces a freshly spawned entity's id, used when restoring a
// saved world.
func AssignID(entry *donburi.Entry, id uuid.UUID) {
	if entry.HasComponent(components.Identity) {
		setIdentity(entry, id)
	}
}
