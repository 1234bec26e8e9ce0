package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/automoto/hollowfield/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelFS returns the filesystem levels are read from. Paths that exist on
// disk win over the embedded copies so levels can be edited without a
// rebuild.
func LevelFS(levelPath string) fs.FS {
	if _, err := os.Stat(levelPath); err == nil {
		return os.DirFS(".")
	}
	return assetFS
}

// LoadLevel reads a TMX level from disk or the embedded assets.
func LoadLevel(levelPath string) (*leveldata.Level, error) {
	level, err := leveldata.Load(LevelFS(levelPath), path.Clean(levelPath))
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", levelPath, err)
	}
	return level, nil
}

// MustLoadLevel is LoadLevel for the levels shipped with the game.
func MustLoadLevel(levelPath string) *leveldata.Level {
	level, err := LoadLevel(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

// EmbeddedLevels lists the names of the levels built into the binary.
func EmbeddedLevels() ([]string, error) {
	_, names, err := leveldata.LoadAll(assetFS, "levels")
	return names, err
}
