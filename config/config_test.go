package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestEmbeddedCatalog(t *testing.T) {
	hero, err := Types.Get("hero")
	require.NoError(t, err)
	assert.Equal(t, KindPlayer, hero.Kind)
	assert.Equal(t, spatial.LayerPlayer, hero.Layer)
	assert.Equal(t, spatial.Point{X: -8, Y: -16}, hero.CollisionOffset())
	assert.Equal(t, spatial.Size{W: 16, H: 16}, hero.CollisionSize())

	tree := Types.MustGet("tree")
	assert.True(t, tree.Static)
	assert.True(t, (spatial.Body{Mass: tree.EffectiveMass()}).Static())

	_, err = Types.Get("dragon")
	assert.ErrorIs(t, err, ErrUnknownEntityType)
}

func TestCatalogExtends(t *testing.T) {
	brute := Types.MustGet("brute")
	assert.Equal(t, KindEnemy, brute.Kind, "kind inherited from slime")
	assert.Equal(t, spatial.LayerEnemy, brute.Layer)
	assert.Equal(t, float32(4), brute.Mass)
	assert.Equal(t, 25, brute.ContactDamage)
	assert.Equal(t, int32(12), brute.Knockback, "knockback inherited from slime")
	assert.Equal(t, "slime", brute.Extends)

	gem := Types.MustGet("gem")
	assert.True(t, gem.Bob)
	assert.Equal(t, 5, gem.Value)
	assert.Equal(t, Types.MustGet("coin").Collision, gem.Collision)
}

func TestParseCatalogErrors(t *testing.T) {
	_, err := ParseCatalog([]byte("types: {}"))
	assert.Error(t, err)

	_, err = ParseCatalog([]byte(`
types:
  a: {extends: b, kind: item, layer: item}
  b: {extends: a, kind: item, layer: item}
`))
	assert.ErrorContains(t, err, "cycle")

	_, err = ParseCatalog([]byte(`
types:
  a: {extends: missing}
`))
	assert.ErrorIs(t, err, ErrUnknownEntityType)

	_, err = ParseCatalog([]byte(`
types:
  a: {kind: wizard, layer: player}
`))
	assert.ErrorContains(t, err, "unknown entity kind")
}

func TestLoadCatalogFromReader(t *testing.T) {
	c, err := LoadCatalog(strings.NewReader(`
types:
  crate:
    kind: scenery
    layer: environment
    static: true
    sprite: {w: 10, h: 10}
    collision: {offset: {x: -5, y: -5}, size: {w: 10, h: 5}}
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"crate"}, c.Names())
	crate := c.MustGet("crate")
	assert.Equal(t, KindScenery, crate.Kind)
	assert.True(t, crate.Static)
}

func TestCatalogExtendsExplicitZeroOverrides(t *testing.T) {
	c, err := ParseCatalog([]byte(`
types:
  log:
    kind: scenery
    layer: environment
    static: true
    mass: 3
    sprite: {w: 16, h: 8}
    collision: {offset: {x: -8, y: -6}, size: {w: 16, h: 6}}
  rolling_log:
    extends: log
    static: false
    collision: {offset: {x: 0}, size: {w: 0, h: 0}}
`))
	require.NoError(t, err)

	child := c.MustGet("rolling_log")
	assert.False(t, child.Static, "explicit false replaces inherited true")
	assert.Equal(t, spatial.Point{X: 0, Y: -6}, child.CollisionOffset(), "only the keys given are replaced")
	assert.Equal(t, spatial.Size{}, child.CollisionSize())
	assert.Equal(t, float32(3), child.EffectiveMass())
	assert.Equal(t, spatial.Size{W: 16, H: 8}, child.SpriteSize())
	assert.Equal(t, KindScenery, child.Kind)
	assert.Equal(t, "log", child.Extends)

	base := c.MustGet("log")
	assert.True(t, base.Static, "base is not modified by the child")
	assert.Equal(t, spatial.Size{W: 16, H: 6}, base.CollisionSize())

	// An empty box never intersects anything.
	bounds := spatial.AnchorToCollisionBounds(spatial.Point{X: 10, Y: 10}, child.CollisionOffset(), child.CollisionSize(), 2)
	assert.False(t, spatial.Intersects(bounds, bounds))
}

func TestCatalogExtendsChain(t *testing.T) {
	c, err := ParseCatalog([]byte(`
types:
  a: {kind: enemy, layer: enemy, mass: 1, health: 10, speed: 2}
  b: {extends: a, health: 0}
  c: {extends: b, speed: 0.5}
`))
	require.NoError(t, err)

	leaf := c.MustGet("c")
	assert.Equal(t, 0, leaf.Health)
	assert.Equal(t, 0.5, leaf.Speed)
	assert.Equal(t, float32(1), leaf.Mass)
	assert.Equal(t, 10, c.MustGet("a").Health)
}

func TestEffectiveMassClampsNonPositive(t *testing.T) {
	c, err := ParseCatalog([]byte(`
types:
  ghost: {kind: enemy, layer: enemy, mass: -2}
`))
	require.NoError(t, err)
	ghost := c.MustGet("ghost")
	assert.Equal(t, spatial.MinMass, ghost.EffectiveMass())

	core, logs := observer.New(zap.WarnLevel)
	c.Validate(zap.New(core))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "non-positive mass clamped", logs.All()[0].Message)
}

func TestLoadOverrides(t *testing.T) {
	saved := *C
	t.Cleanup(func() { *C = saved })

	path := filepath.Join(t.TempDir(), "hollow.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sprite_scale: 3\nwidth: 800\n"), 0o644))
	t.Setenv("HOLLOW_TPS", "30")

	require.NoError(t, Load(path))
	assert.Equal(t, spatial.Scale(3), C.Scale())
	assert.Equal(t, 800, C.Width)
	assert.Equal(t, 30, C.TPS)
	assert.Equal(t, saved.Height, C.Height)
}

func TestLoadMissingFile(t *testing.T) {
	saved := *C
	t.Cleanup(func() { *C = saved })

	err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, saved, *C)
}

func TestLoadRejectsZeroScale(t *testing.T) {
	saved := *C
	t.Cleanup(func() { *C = saved })

	t.Setenv("HOLLOW_SPRITE_SCALE", "0")
	assert.Error(t, Load(""))
	assert.Equal(t, saved.SpriteScale, C.SpriteScale)
}

func TestKindNames(t *testing.T) {
	k, err := ParseKind("scenery")
	require.NoError(t, err)
	assert.Equal(t, KindScenery, k)
	assert.Equal(t, "scenery", k.String())

	_, err = ParseKind("none")
	assert.Error(t, err)
}
