package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Load parses a TMX file from fsys. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
		TileW:  levelMap.TileWidth,
		TileH:  levelMap.TileHeight,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != TerrainLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				var typeName string
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					typeName = tilesetTile.Properties.GetString("type")
				}

				level.Terrain = append(level.Terrain, Tile{Col: x, Row: y, Type: typeName})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		var dst *[]Spawn
		switch og.Name {
		case GroupScenery:
			dst = &level.Scenery
		case GroupEnemies:
			dst = &level.Enemies
		case GroupItems:
			dst = &level.Items
		case GroupPlayers:
			dst = &level.Players
		default:
			continue
		}
		for _, o := range og.Objects {
			typeName := o.Properties.GetString("type")
			if typeName == "" {
				typeName = o.Class
			}
			*dst = append(*dst, Spawn{Type: typeName, X: o.X, Y: o.Y})
		}
	}

	// Left-to-right for consistent player assignment
	sort.SliceStable(level.Players, func(i, j int) bool {
		return level.Players[i].X < level.Players[j].X
	})

	return level, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
