package systems

import (
	"testing"

	"github.com/automoto/hollowfield/components"
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/automoto/hollowfield/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	return ecs.NewECS(donburi.NewWorld())
}

func spawn(t *testing.T, e *ecs.ECS, typeName string, x, y int32) *donburi.Entry {
	t.Helper()
	entry, err := factory.Spawn(e, typeName, spatial.Point{X: x, Y: y})
	require.NoError(t, err)
	return entry
}

func anchorOf(entry *donburi.Entry) spatial.Point {
	return components.Spatial.Get(entry).Anchor
}
