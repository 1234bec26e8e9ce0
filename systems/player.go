package systems

import (
	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/shared/gamemath"
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/automoto/hollowfield/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(input, playerEntry)
	})
}

func updateSinglePlayer(input *components.InputData, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	sp := components.Spatial.Get(playerEntry)

	handleMovementInput(input, player, sp.Type.Speed)
	handleHopInput(input, playerEntry)

	dx := gamemath.Step(player.SpeedX, &player.RemainderX)
	dy := gamemath.Step(player.SpeedY, &player.RemainderY)
	sp.Anchor = sp.Anchor.Add(spatial.Point{X: dx, Y: dy})

	if player.Direction.X != 0 {
		components.Visual.Get(playerEntry).FacingLeft = player.Direction.X < 0
	}

	// Decrement invulnerability timer
	if player.InvulnFrames > 0 {
		player.InvulnFrames--
	}
}

// handleMovementInput accelerates toward the held direction and lets friction
// bring the player to rest otherwise. Diagonals are normalized so they are
// not faster than straight moves.
func handleMovementInput(input *components.InputData, player *components.PlayerData, maxSpeed float64) {
	var dirX, dirY float64
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		dirX--
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		dirX++
	}
	if GetAction(input, cfg.ActionMoveUp).Pressed {
		dirY--
	}
	if GetAction(input, cfg.ActionMoveDown).Pressed {
		dirY++
	}
	dirX, dirY = gamemath.Normalize(dirX, dirY)

	if dirX != 0 {
		player.SpeedX += dirX * cfg.Player.Acceleration
		player.Direction.X = dirX
	} else {
		player.SpeedX = gamemath.ApplyFriction(player.SpeedX, cfg.Player.Friction)
	}
	if dirY != 0 {
		player.SpeedY += dirY * cfg.Player.Acceleration
	} else {
		player.SpeedY = gamemath.ApplyFriction(player.SpeedY, cfg.Player.Friction)
	}

	limitX, limitY := maxSpeed, maxSpeed
	if dirX != 0 && dirY != 0 {
		limitX, limitY = maxSpeed*abs(dirX), maxSpeed*abs(dirY)
	}
	player.SpeedX = gamemath.ClampSpeed(player.SpeedX, limitX)
	player.SpeedY = gamemath.ClampSpeed(player.SpeedY, limitY)
}

// handleHopInput starts a hop unless one is already playing. A hop only
// offsets the sprite; the anchor stays on the ground.
func handleHopInput(input *components.InputData, playerEntry *donburi.Entry) {
	if !GetAction(input, cfg.ActionHop).JustPressed {
		return
	}
	bob := components.Bob.Get(playerEntry)
	if bob.Hop != nil {
		return
	}
	bob.Hop = factory.NewHop()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
