package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. HOLLOW_SPRITE_SCALE=3.
const EnvPrefix = "HOLLOW"

// Load applies overrides from an optional config file and the environment on
// top of the defaults in C. An empty path reads the environment only.
// C is left untouched when anything fails.
func Load(path string) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("title", C.Title)
	v.SetDefault("width", C.Width)
	v.SetDefault("height", C.Height)
	v.SetDefault("sprite_scale", C.SpriteScale)
	v.SetDefault("tps", C.TPS)
	v.SetDefault("debug", C.Debug)
	v.SetDefault("level", C.Level)
	v.SetDefault("catalog", C.Catalog)
	v.SetDefault("save_slot", C.SaveSlot)
	v.SetDefault("spawn_type", C.SpawnType)

	if path != "" {
		v.SetConfigFile(path)
		// An explicit path must exist; a missing file is an error.
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	next := *C
	if err := v.Unmarshal(&next); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if next.SpriteScale == 0 {
		return errors.New("sprite_scale must be at least 1")
	}
	if next.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", next.TPS)
	}

	if next.Catalog != "" {
		catalog, err := LoadCatalogFile(next.Catalog)
		if err != nil {
			return err
		}
		Types = catalog
	}

	*C = next
	return nil
}
