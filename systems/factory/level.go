package factory

import (
	"github.com/automoto/hollowfield/archetypes"
	"github.com/automoto/hollowfield/components"
	"github.com/automoto/hollowfield/shared/leveldata"
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{Level: level})
	return entry
}

// PopulateLevel creates the placement space, terrain walls and every object
// spawn in the level. Unknown types are logged and skipped so a level edited
// against a newer catalog still loads.
func PopulateLevel(ecs *ecs.ECS, level *leveldata.Level) {
	CreateSpace(ecs, level.Width, level.Height, max(level.TileW, 16), max(level.TileH, 16))

	for _, tile := range level.Terrain {
		x, y := level.Anchor(tile)
		if _, err := CreateWall(ecs, tile.Type, spatial.Point{X: x, Y: y}); err != nil {
			zap.L().Warn("skipping terrain tile",
				zap.Int("col", tile.Col),
				zap.Int("row", tile.Row),
				zap.Error(err),
			)
		}
	}

	groups := [][]leveldata.Spawn{level.Scenery, level.Enemies, level.Items, level.Players}
	for _, group := range groups {
		for _, s := range group {
			anchor := spatial.Point{X: int32(s.X), Y: int32(s.Y)}
			if _, err := Spawn(ecs, s.Type, anchor); err != nil {
				zap.L().Warn("skipping level spawn",
					zap.String("level", level.Name),
					zap.String("type", s.Type),
					zap.Error(err),
				)
			}
		}
	}
}
