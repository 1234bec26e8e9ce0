package factory

import (
	"testing"

	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/shared/leveldata"
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	return ecs.NewECS(donburi.NewWorld())
}

func TestSpawnDispatchesOnKind(t *testing.T) {
	e := newTestECS(t)

	hero, err := Spawn(e, "hero", spatial.Point{X: 10, Y: 20})
	require.NoError(t, err)
	assert.True(t, hero.HasComponent(components.Player))
	assert.Equal(t, 100, components.Health.Get(hero).Current)
	assert.NotEqual(t, uuid.Nil, components.Identity.Get(hero).ID)

	slime, err := Spawn(e, "slime", spatial.Point{X: 30, Y: 20})
	require.NoError(t, err)
	assert.True(t, slime.HasComponent(components.Enemy))

	coin, err := Spawn(e, "coin", spatial.Point{X: 50, Y: 20})
	require.NoError(t, err)
	assert.True(t, coin.HasComponent(components.Bob))
	assert.NotNil(t, components.Bob.Get(coin).Loop)
	assert.Equal(t, 1, components.Item.Get(coin).Value)

	tree, err := Spawn(e, "tree", spatial.Point{X: 70, Y: 20})
	require.NoError(t, err)
	assert.True(t, components.Spatial.Get(tree).Static())

	assert.Less(t, components.Spatial.Get(hero).Seq, components.Spatial.Get(slime).Seq)
	assert.Less(t, components.Spatial.Get(slime).Seq, components.Spatial.Get(coin).Seq)
	assert.Less(t, components.Spatial.Get(coin).Seq, components.Spatial.Get(tree).Seq)
}

func TestSpawnUnknownType(t *testing.T) {
	_, err := Spawn(newTestECS(t), "dragon", spatial.Point{})
	assert.ErrorIs(t, err, cfg.ErrUnknownEntityType)
}

func TestSpawnSharesCatalogType(t *testing.T) {
	e := newTestECS(t)
	a, err := Spawn(e, "slime", spatial.Point{})
	require.NoError(t, err)
	b, err := Spawn(e, "slime", spatial.Point{X: 100})
	require.NoError(t, err)
	assert.Same(t, components.Spatial.Get(a).Type, components.Spatial.Get(b).Type)
}

func TestSpawnAtFootprintCenter(t *testing.T) {
	e := newTestECS(t)
	CreateSpace(e, 640, 480, 32, 32)

	coin, err := SpawnAtFootprintCenter(e, "coin", spatial.Point{X: 300, Y: 300})
	require.NoError(t, err)
	bounds := components.Spatial.Get(coin).Bounds(cfg.C.Scale())
	assert.Equal(t, spatial.Point{X: 300, Y: 300}, bounds.Center())
}

func TestSpawnAtFootprintCenterBlocked(t *testing.T) {
	e := newTestECS(t)
	CreateSpace(e, 640, 480, 32, 32)
	_, err := Spawn(e, "tree", spatial.Point{X: 100, Y: 110})
	require.NoError(t, err)

	_, err = SpawnAtFootprintCenter(e, "coin", spatial.Point{X: 100, Y: 100})
	assert.ErrorIs(t, err, ErrBlocked)

	// Touching the trunk edge is not an overlap.
	_, err = SpawnAtFootprintCenter(e, "coin", spatial.Point{X: 100, Y: 98})
	assert.NoError(t, err)
}

func TestCreateSpaceClampsCellSize(t *testing.T) {
	e := newTestECS(t)
	entry := CreateSpace(e, 320, 320, 0, 0)
	require.NotNil(t, components.Space.Get(entry))

	tree, err := Spawn(e, "tree", spatial.Point{X: 100, Y: 110})
	require.NoError(t, err)
	bounds := components.Spatial.Get(tree).Bounds(cfg.C.Scale())
	blocker := PlacementBlocker(e, bounds)
	require.NotNil(t, blocker)
	assert.Equal(t, tree.Entity(), blocker.Entity())
}

func TestPlacementBlockerWithoutSpace(t *testing.T) {
	e := newTestECS(t)
	assert.Nil(t, PlacementBlocker(e, spatial.Rect{X: 0, Y: 0, W: 10, H: 10}))
}

func TestPopulateLevel(t *testing.T) {
	e := newTestECS(t)
	level := &leveldata.Level{
		Name:    "test",
		Width:   320,
		Height:  320,
		TileW:   32,
		TileH:   32,
		Terrain: []leveldata.Tile{{Col: 0, Row: 0}, {Col: 1, Row: 0, Type: "wall"}},
		Items:   []leveldata.Spawn{{Type: "coin", X: 100, Y: 100}, {Type: "nope", X: 1, Y: 1}},
		Players: []leveldata.Spawn{{Type: "hero", X: 200, Y: 200}},
	}
	PopulateLevel(e, level)

	_, ok := components.Space.First(e.World)
	assert.True(t, ok)

	var walls, players, items int
	components.Spatial.Each(e.World, func(entry *donburi.Entry) {
		switch components.Spatial.Get(entry).Type.Name {
		case "wall":
			walls++
		case "hero":
			players++
		case "coin":
			items++
		}
	})
	assert.Equal(t, 2, walls)
	assert.Equal(t, 1, players)
	assert.Equal(t, 1, items)

	// The wall footprint fills its tile exactly.
	blocker := PlacementBlocker(e, spatial.Rect{X: 40, Y: 10, W: 4, H: 4})
	require.NotNil(t, blocker)
	assert.Equal(t, spatial.Rect{X: 32, Y: 0, W: 32, H: 32}, components.Spatial.Get(blocker).Bounds(cfg.C.Scale()))
}

func TestSpawnEffect(t *testing.T) {
	e := newTestECS(t)
	fx := SpawnEffect(e, spatial.Point{X: 5, Y: 6}, cfg.Yellow)
	data := components.Effect.Get(fx)
	assert.Equal(t, cfg.Render.EffectFrames, data.Frames)
	assert.Equal(t, float32(0), data.Progress())
}
