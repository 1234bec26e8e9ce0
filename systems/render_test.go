package systems

import (
	"testing"

	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/shared/depth"
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var testView = spatial.Rect{X: 0, Y: 0, W: 640, H: 480}

func drawOrder(e *ecs.ECS, view spatial.Rect) []string {
	var order []string
	depth.RenderAll(visibleDrawables(e, view, func(entry *donburi.Entry, sp *components.SpatialData) {
		order = append(order, sp.Type.Name)
	}))
	return order
}

func TestDrawOrderFollowsAnchorY(t *testing.T) {
	e := newTestECS(t)
	spawn(t, e, "hero", 100, 200)
	spawn(t, e, "tree", 300, 125)
	spawn(t, e, "coin", 200, 50)
	spawn(t, e, "slime", 400, 125)

	assert.Equal(t, []string{"coin", "tree", "slime", "hero"}, drawOrder(e, testView))
	// Stable from frame to frame
	assert.Equal(t, []string{"coin", "tree", "slime", "hero"}, drawOrder(e, testView))
}

func TestVisualOffsetDoesNotChangeDepth(t *testing.T) {
	e := newTestECS(t)
	coin := spawn(t, e, "coin", 200, 150)
	spawn(t, e, "rock", 220, 160)

	components.Visual.Get(coin).OffsetY = 40
	assert.Equal(t, []string{"coin", "rock"}, drawOrder(e, testView))

	components.Visual.Get(coin).OffsetY = -40
	assert.Equal(t, []string{"coin", "rock"}, drawOrder(e, testView))
}

func TestDrawCullsAndSkipsHidden(t *testing.T) {
	e := newTestECS(t)
	spawn(t, e, "rock", 2000, 2000)
	hidden := spawn(t, e, "slime", 100, 100)
	components.Visual.Get(hidden).Hidden = true
	spawn(t, e, "hero", 100, 120)

	assert.Equal(t, []string{"hero"}, drawOrder(e, testView))
}

func TestDrawCullsSpritesTouchingTheEdge(t *testing.T) {
	e := newTestECS(t)
	// Rock sprite is 32 wide at scale 2, so its right edge sits on x = 0.
	spawn(t, e, "rock", -16, 100)
	assert.Empty(t, drawOrder(e, testView))
}

func TestSpriteRect(t *testing.T) {
	e := newTestECS(t)
	tree := spawn(t, e, "tree", 100, 200)
	r := spriteRect(components.Spatial.Get(tree), cfg.C.Scale())
	assert.Equal(t, spatial.Rect{X: 68, Y: 104, W: 64, H: 96}, r)
}

func TestHealthBarSitsAboveSprite(t *testing.T) {
	e := newTestECS(t)
	slime := spawn(t, e, "slime", 100, 100)
	sp := components.Spatial.Get(slime)

	x, y := healthBarPosition(sp, cfg.C.Scale())
	origin := sp.RenderOrigin(cfg.C.Scale())
	assert.Equal(t, 100-cfg.Render.HealthBarWidth/2, x)
	assert.Equal(t, float64(origin.Y)-cfg.Render.HealthBarGap-cfg.Render.HealthBarHeight, y)

	// Above the whole sprite, not just the ground footprint
	bounds := sp.Bounds(cfg.C.Scale())
	assert.Less(t, y+cfg.Render.HealthBarHeight, float64(bounds.Y))

	components.Visual.Get(slime).OffsetY = -12
	_, bobbed := healthBarPosition(sp, cfg.C.Scale())
	assert.Equal(t, y, bobbed)
}

func TestEntityDrawableDepthIgnoresOffset(t *testing.T) {
	e := newTestECS(t)
	coin := spawn(t, e, "coin", 50, 75)
	components.Visual.Get(coin).OffsetY = -30

	items := visibleDrawables(e, testView, func(*donburi.Entry, *components.SpatialData) {})
	require.Len(t, items, 1)
	assert.Equal(t, int32(75), items[0].DepthKey())
}

func TestViewRectWithoutCamera(t *testing.T) {
	e := newTestECS(t)
	pad := int32(cfg.Render.CullPadding)
	v := viewRect(e, 640, 360)
	assert.Equal(t, -pad, v.X)
	assert.Equal(t, uint32(640+2*pad), v.W)
}

func TestDrawersCoverEveryKind(t *testing.T) {
	for k := cfg.KindPlayer; k < cfg.KindCount; k++ {
		_, ok := drawers[k]
		require.True(t, ok, k.String())
	}
}
