package systems

import (
	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/automoto/hollowfield/systems/factory"
	"github.com/automoto/hollowfield/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// RegisterCombat subscribes the contact handlers to the world. Call it once
// per world before the first UpdateCollisions.
func RegisterCombat(e *ecs.ECS) {
	components.Contact.Subscribe(e.World, func(w donburi.World, ev components.ContactEvent) {
		handleContact(e, ev)
	})
}

// UpdateCombat delivers the contact events published by the collision pass,
// then keeps health values within their valid range and removes defeated
// enemies. Must run AFTER UpdateCollisions.
func UpdateCombat(ecs *ecs.ECS) {
	components.Contact.ProcessEvents(ecs.World)

	var defeated []*donburi.Entry
	for e := range components.Health.Iter(ecs.World) {
		hp := components.Health.Get(e)
		hp.Current = max(0, min(hp.Max, hp.Current))

		if hp.Current > 0 {
			continue
		}
		if e.HasComponent(tags.Enemy) {
			defeated = append(defeated, e)
		} else if e.HasComponent(components.Player) {
			revivePlayer(e)
		}
	}

	scale := cfg.C.Scale()
	for _, e := range defeated {
		sp := components.Spatial.Get(e)
		factory.SpawnEffect(ecs, sp.VisualCenter(scale), sp.Type.RGBA())
		zap.L().Debug("enemy defeated", zap.String("type", sp.Type.Name))
		e.Remove()
	}
}

func handleContact(e *ecs.ECS, ev components.ContactEvent) {
	if !ev.A.Valid() || !ev.B.Valid() {
		return // one side was removed by an earlier event this frame
	}

	player, other, ok := ev.Involves(spatial.LayerPlayer)
	if !ok {
		return
	}
	switch {
	case other.HasComponent(tags.Enemy):
		handleEnemyContact(e, player, other)
	case other.HasComponent(tags.Item):
		handlePickup(e, player, other)
	}
}

// handleEnemyContact hurts the player unless it is hopping, in which case
// the enemy takes the hit instead. Either way the loser is knocked back.
func handleEnemyContact(e *ecs.ECS, playerEntry, enemyEntry *donburi.Entry) {
	scale := cfg.C.Scale()
	playerSp := components.Spatial.Get(playerEntry)
	enemySp := components.Spatial.Get(enemyEntry)

	if isHopping(playerEntry) {
		enemy := components.Enemy.Get(enemyEntry)
		if enemy.InvulnFrames > 0 {
			return
		}
		enemy.InvulnFrames = cfg.Combat.EnemyInvulnFrames
		components.Health.Get(enemyEntry).Current -= max(playerSp.Type.ContactDamage, cfg.Combat.StompDamage)
		donburi.Add(enemyEntry, components.HealthBar, &components.HealthBarData{
			TimeToLive: cfg.Combat.HealthBarDuration,
		})
		TriggerFlash(enemyEntry, cfg.Combat.HitFlashFrames, 1, 1, 1)
		knockback(enemySp, playerSp, enemySp.Type.Knockback, scale)
		factory.SpawnEffect(e, enemySp.VisualCenter(scale), cfg.White)
		return
	}

	player := components.Player.Get(playerEntry)
	if player.InvulnFrames > 0 {
		return
	}
	player.InvulnFrames = cfg.Combat.PlayerInvulnFrames
	components.Health.Get(playerEntry).Current -= enemySp.Type.ContactDamage
	TriggerFlash(playerEntry, cfg.Combat.DamageFlashFrames, 1, 0.5, 0.5)
	knockback(playerSp, enemySp, enemySp.Type.Knockback, scale)
	TriggerScreenShake(e, cfg.Combat.HitShakeIntensity, cfg.Combat.HitShakeFrames)
	factory.SpawnEffect(e, playerSp.VisualCenter(scale), cfg.LightRed)
}

// knockback pushes target away from source along the axis the two are most
// separated on. The move goes through ApplyPush so static targets stay put.
func knockback(target, source *components.SpatialData, distance int32, scale spatial.Scale) {
	if distance == 0 {
		return
	}
	distance *= int32(scale)
	tc, sc := target.Bounds(scale).Center(), source.Bounds(scale).Center()
	dx, dy := tc.X-sc.X, tc.Y-sc.Y

	if abs32(dx) >= abs32(dy) {
		target.ApplyPush(sign32(dx)*distance, 0)
		return
	}
	target.ApplyPush(0, sign32(dy)*distance)
}

func handlePickup(e *ecs.ECS, playerEntry, itemEntry *donburi.Entry) {
	sp := components.Spatial.Get(itemEntry)
	item := components.Item.Get(itemEntry)
	components.Inventory.Get(playerEntry).Add(sp.Type.Name, item.Value)

	factory.SpawnEffect(e, sp.VisualCenter(cfg.C.Scale()), sp.Type.RGBA())
	itemEntry.Remove()
}

// revivePlayer restores a defeated player in place with a long grace period.
func revivePlayer(e *donburi.Entry) {
	hp := components.Health.Get(e)
	hp.Current = hp.Max
	components.Player.Get(e).InvulnFrames = cfg.Combat.PlayerInvulnFrames * 2
	zap.L().Info("player revived", zap.Int("health", hp.Current))
}

func isHopping(e *donburi.Entry) bool {
	return e.HasComponent(components.Bob) && components.Bob.Get(e).Hop != nil
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// sign32 returns -1 for negative values and 1 otherwise, so coincident
// centers still produce a push.
func sign32(v int32) int32 {
	if v < 0 {
		return -1
	}
	return 1
}
