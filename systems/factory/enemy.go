package factory

import (
	"github.com/automoto/hollowfield/archetypes"
	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateEnemy(ecs *ecs.ECS, t *cfg.EntityType, anchor spatial.Point) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	components.Spatial.SetValue(enemy, nextSpatial(t, anchor))
	components.Enemy.SetValue(enemy, components.EnemyData{
		Direction: components.Vector{X: -1, Y: 0},
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: t.Health,
		Max:     t.Health,
	})
	newIdentity(enemy)
	components.Flash.SetValue(enemy, components.FlashData{R: 1, G: 1, B: 1})

	return enemy
}
