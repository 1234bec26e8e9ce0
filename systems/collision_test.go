package systems

import (
	"testing"

	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestCollisionSplitsEqualMasses(t *testing.T) {
	e := newTestECS(t)
	a := spawn(t, e, "hero", 100, 100)
	b := spawn(t, e, "hero", 120, 100)

	UpdateCollisions(e)

	assert.Equal(t, spatial.Point{X: 94, Y: 100}, anchorOf(a))
	assert.Equal(t, spatial.Point{X: 126, Y: 100}, anchorOf(b))

	scale := cfg.C.Scale()
	ab := components.Spatial.Get(a).Bounds(scale)
	bb := components.Spatial.Get(b).Bounds(scale)
	assert.Equal(t, ab.Right(), bb.Left(), "separated edge to edge")
	assert.False(t, spatial.Intersects(ab, bb))
}

func TestCollisionStaticNeverMoves(t *testing.T) {
	e := newTestECS(t)
	wall := spawn(t, e, "wall", 100, 100)
	hero := spawn(t, e, "hero", 120, 110)

	assert.Equal(t, spatial.Rect{X: 84, Y: 68, W: 32, H: 32}, components.Spatial.Get(wall).Bounds(cfg.C.Scale()))

	UpdateCollisions(e)

	assert.Equal(t, spatial.Point{X: 100, Y: 100}, anchorOf(wall))
	assert.Equal(t, spatial.Point{X: 132, Y: 110}, anchorOf(hero))
}

func TestCollisionStaticPairsAreSkipped(t *testing.T) {
	e := newTestECS(t)
	a := spawn(t, e, "wall", 100, 100)
	b := spawn(t, e, "wall", 110, 100)

	UpdateCollisions(e)

	assert.Equal(t, spatial.Point{X: 100, Y: 100}, anchorOf(a))
	assert.Equal(t, spatial.Point{X: 110, Y: 100}, anchorOf(b))
}

func TestCollisionPublishesContactWithoutPush(t *testing.T) {
	e := newTestECS(t)
	hero := spawn(t, e, "hero", 100, 100)
	coin := spawn(t, e, "coin", 100, 90)

	var got []components.ContactEvent
	components.Contact.Subscribe(e.World, func(w donburi.World, ev components.ContactEvent) {
		got = append(got, ev)
	})

	UpdateCollisions(e)
	assert.Empty(t, got, "events are delivered after the pass")
	components.Contact.ProcessEvents(e.World)

	require.Len(t, got, 1)
	self, other, ok := got[0].Involves(spatial.LayerItem)
	require.True(t, ok)
	assert.Equal(t, coin.Entity(), self.Entity())
	assert.Equal(t, hero.Entity(), other.Entity())

	assert.Equal(t, spatial.Point{X: 100, Y: 100}, anchorOf(hero))
	assert.Equal(t, spatial.Point{X: 100, Y: 90}, anchorOf(coin))
}

func TestCollisionIgnoresIncompatibleLayers(t *testing.T) {
	e := newTestECS(t)
	coin := spawn(t, e, "coin", 100, 100)
	gem := spawn(t, e, "gem", 100, 100)
	spawn(t, e, "wall", 100, 100)

	var events int
	components.Contact.Subscribe(e.World, func(w donburi.World, ev components.ContactEvent) {
		events++
	})

	UpdateCollisions(e)
	components.Contact.ProcessEvents(e.World)

	assert.Zero(t, events)
	assert.Equal(t, spatial.Point{X: 100, Y: 100}, anchorOf(coin))
	assert.Equal(t, spatial.Point{X: 100, Y: 100}, anchorOf(gem))
}

func TestCollisionHeavierMovesLess(t *testing.T) {
	e := newTestECS(t)
	hero := spawn(t, e, "hero", 100, 100)
	brute := spawn(t, e, "brute", 100, 104)

	UpdateCollisions(e)

	heroMoved := 100 - anchorOf(hero).Y
	bruteMoved := anchorOf(brute).Y - 104
	assert.Positive(t, heroMoved)
	assert.Greater(t, heroMoved, bruteMoved)

	scale := cfg.C.Scale()
	assert.False(t, spatial.Intersects(
		components.Spatial.Get(hero).Bounds(scale),
		components.Spatial.Get(brute).Bounds(scale)))
}
