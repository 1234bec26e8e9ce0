package factory

import (
	"github.com/automoto/hollowfield/archetypes"
	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, t *cfg.EntityType, anchor spatial.Point) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Spatial.SetValue(player, nextSpatial(t, anchor))
	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: 1, Y: 0},
	})
	components.Health.SetValue(player, components.HealthData{
		Current: t.Health,
		Max:     t.Health,
	})
	components.Inventory.SetValue(player, components.InventoryData{
		Counts: make(map[string]int),
	})
	newIdentity(player)

	// Flash is permanently attached to avoid archetype thrashing
	components.Flash.SetValue(player, components.FlashData{R: 1, G: 1, B: 1})

	return player
}
