// Package leveldata parses TMX level files into plain placement data. It has
// no dependencies on ebitengine, donburi, or resolv.
package leveldata

// Object group and layer names read from TMX files.
const (
	TerrainLayer = "terrain"
	GroupScenery = "Scenery"
	GroupEnemies = "EnemySpawn"
	GroupItems   = "ItemSpawn"
	GroupPlayers = "PlayerSpawn"
)

// Level holds everything needed to populate a world from one TMX file.
// Coordinates are world pixels.
type Level struct {
	Name    string
	Width   int
	Height  int
	TileW   int
	TileH   int
	Terrain []Tile
	Scenery []Spawn
	Enemies []Spawn
	Items   []Spawn
	Players []Spawn
}

// Tile is a solid terrain cell in tile coordinates.
type Tile struct {
	Col, Row int
	Type     string // Entity type from the tile's "type" property, "" for the default wall
}

// Anchor returns the ground contact point of the tile: the middle of its
// bottom edge.
func (l *Level) Anchor(t Tile) (x, y int32) {
	return int32(t.Col*l.TileW + l.TileW/2), int32((t.Row + 1) * l.TileH)
}

// Spawn places an entity type with its anchor at X, Y.
type Spawn struct {
	Type string
	X, Y float64
}

// SpawnCount returns the number of object spawns in the level.
func (l *Level) SpawnCount() int {
	return len(l.Scenery) + len(l.Enemies) + len(l.Items) + len(l.Players)
}
