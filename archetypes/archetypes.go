package archetypes

import (
	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Spatial,
		components.Visual,
		components.Health,
		components.Inventory,
		components.Identity,
		components.Bob,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Spatial,
		components.Visual,
		components.Health,
		components.Identity,
		components.Flash,
	)
	Item = newArchetype(
		tags.Item,
		components.Item,
		components.Spatial,
		components.Visual,
		components.Identity,
	)
	Scenery = newArchetype(
		tags.Scenery,
		components.Spatial,
		components.Visual,
		components.Object,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Effect,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
