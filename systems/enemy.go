package systems

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/shared/gamemath"
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/automoto/hollowfield/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// wanderDirections are the headings an idle enemy picks from. The zero
// entry makes it stand still for a while.
var wanderDirections = []components.Vector{
	{X: 0, Y: 0},
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}

func UpdateEnemies(ecs *ecs.ECS) {
	// Get player position for AI decisions
	var target *spatial.Point
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		anchor := components.Spatial.Get(playerEntry).Anchor
		target = &anchor
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.InvulnFrames > 0 {
			enemy.InvulnFrames--
		}

		// Update health bar timer
		if e.HasComponent(components.HealthBar) {
			healthBar := components.HealthBar.Get(e)
			healthBar.TimeToLive--
			if healthBar.TimeToLive <= 0 {
				donburi.Remove[components.HealthBarData](e, components.HealthBar)
			}
		}

		updateEnemyAI(e, enemy, target)
	})
}

func updateEnemyAI(enemyEntry *donburi.Entry, enemy *components.EnemyData, target *spatial.Point) {
	sp := components.Spatial.Get(enemyEntry)

	if target != nil && chase(enemy, sp.Anchor, *target) {
		moveEnemy(enemyEntry, enemy, sp)
		return
	}

	enemy.WanderTimer--
	if enemy.WanderTimer <= 0 {
		enemy.Direction = wanderDirections[rand.IntN(len(wanderDirections))]
		enemy.WanderTimer = cfg.Enemy.WanderInterval
	}
	moveEnemy(enemyEntry, enemy, sp)
}

// chase points the enemy at target when it is within range and reports
// whether it is chasing.
func chase(enemy *components.EnemyData, from, target spatial.Point) bool {
	dx := float64(target.X - from.X)
	dy := float64(target.Y - from.Y)
	dist := math.Hypot(dx, dy)
	if dist > cfg.Enemy.ChaseRange {
		return false
	}
	if dist <= cfg.Enemy.StopDistance {
		enemy.Direction = components.Vector{}
		return true
	}
	x, y := gamemath.Normalize(dx, dy)
	enemy.Direction = components.Vector{X: x, Y: y}
	return true
}

func moveEnemy(enemyEntry *donburi.Entry, enemy *components.EnemyData, sp *components.SpatialData) {
	speed := sp.Type.Speed
	dx := gamemath.Step(enemy.Direction.X*speed, &enemy.RemainderX)
	dy := gamemath.Step(enemy.Direction.Y*speed, &enemy.RemainderY)
	sp.Anchor = sp.Anchor.Add(spatial.Point{X: dx, Y: dy})

	if enemy.Direction.X != 0 {
		components.Visual.Get(enemyEntry).FacingLeft = enemy.Direction.X < 0
	}
}
