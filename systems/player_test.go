package systems

import (
	"testing"

	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func press(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func TestPlayerMovesWithInput(t *testing.T) {
	e := newTestECS(t)
	hero := spawn(t, e, "hero", 100, 100)

	for range 10 {
		press(e, cfg.ActionMoveRight)
		UpdatePlayer(e)
	}
	assert.Greater(t, anchorOf(hero).X, int32(100))
	assert.Equal(t, int32(100), anchorOf(hero).Y)
	assert.False(t, components.Visual.Get(hero).FacingLeft)

	player := components.Player.Get(hero)
	assert.LessOrEqual(t, player.SpeedX, components.Spatial.Get(hero).Type.Speed)

	for range 10 {
		press(e, cfg.ActionMoveLeft)
		UpdatePlayer(e)
	}
	assert.True(t, components.Visual.Get(hero).FacingLeft)
}

func TestPlayerFrictionStops(t *testing.T) {
	e := newTestECS(t)
	hero := spawn(t, e, "hero", 100, 100)
	press(e, cfg.ActionMoveDown)
	UpdatePlayer(e)

	for range 20 {
		press(e)
		UpdatePlayer(e)
	}
	assert.Zero(t, components.Player.Get(hero).SpeedY)
}

func TestHopOnlyOffsetsSprite(t *testing.T) {
	e := newTestECS(t)
	hero := spawn(t, e, "hero", 100, 100)

	press(e, cfg.ActionHop)
	UpdatePlayer(e)
	require.NotNil(t, components.Bob.Get(hero).Hop)

	press(e)
	for range 5 {
		UpdateBob(e)
	}
	assert.Negative(t, components.Visual.Get(hero).OffsetY)
	assert.Equal(t, spatial.Point{X: 100, Y: 100}, anchorOf(hero))
	assert.Equal(t, int32(100), components.Spatial.Get(hero).DepthKey())

	for range cfg.C.TPS {
		UpdateBob(e)
	}
	assert.Nil(t, components.Bob.Get(hero).Hop)
	assert.Zero(t, components.Visual.Get(hero).OffsetY)
}

func TestItemBobLoops(t *testing.T) {
	e := newTestECS(t)
	coin := spawn(t, e, "coin", 100, 100)

	var lowest float64
	for range cfg.C.TPS * 3 {
		UpdateBob(e)
		lowest = min(lowest, components.Visual.Get(coin).OffsetY)
	}
	assert.Negative(t, lowest)
	assert.GreaterOrEqual(t, lowest, -float64(cfg.Bob.Amplitude)-0.001)
	assert.NotNil(t, components.Bob.Get(coin).Loop)
	assert.Equal(t, spatial.Point{X: 100, Y: 100}, anchorOf(coin))
}

func TestEnemyChasesPlayerInRange(t *testing.T) {
	e := newTestECS(t)
	spawn(t, e, "hero", 100, 100)
	slime := spawn(t, e, "slime", 160, 100)

	UpdateEnemies(e)

	enemy := components.Enemy.Get(slime)
	assert.InDelta(t, -1, enemy.Direction.X, 1e-9)
	assert.InDelta(t, 0, enemy.Direction.Y, 1e-9)
	assert.True(t, components.Visual.Get(slime).FacingLeft)
}

func TestPauseToggles(t *testing.T) {
	e := newTestECS(t)
	press(e, cfg.ActionPause)
	UpdatePause(e)
	assert.True(t, IsPaused(e))

	press(e, cfg.ActionPause) // held, not a new press
	UpdatePause(e)
	assert.True(t, IsPaused(e))

	press(e)
	UpdatePause(e)
	press(e, cfg.ActionPause)
	UpdatePause(e)
	assert.False(t, IsPaused(e))

	press(e, cfg.ActionQuit)
	UpdatePause(e)
	assert.True(t, GetOrCreatePause(e).Quit)
}

func TestDebugToggle(t *testing.T) {
	e := newTestECS(t)
	before := GetOrCreateDebug(e).ShowCollision
	press(e, cfg.ActionDebug)
	UpdatePause(e)
	assert.Equal(t, !before, GetOrCreateDebug(e).ShowCollision)
}

func TestClickSpawnsAtFootprintCenter(t *testing.T) {
	e := newTestECS(t)
	input := getOrCreateInput(e)
	input.CursorX, input.CursorY = 200, 150
	input.Clicked = true

	UpdateSpawner(e)

	var found bool
	components.Spatial.Each(e.World, func(entry *donburi.Entry) {
		sp := components.Spatial.Get(entry)
		if sp.Type.Name == cfg.C.SpawnType {
			found = true
			assert.Equal(t, spatial.Point{X: 200, Y: 150}, sp.Bounds(cfg.C.Scale()).Center())
		}
	})
	assert.True(t, found)
}

func TestStatusExpires(t *testing.T) {
	e := newTestECS(t)
	SetStatus(e, "hello")
	msg, ok := GetStatus(e)
	assert.True(t, ok)
	assert.Equal(t, "hello", msg)

	for range statusFrames {
		UpdateMessage(e)
	}
	_, ok = GetStatus(e)
	assert.False(t, ok)
}
