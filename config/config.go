package config

import (
	"image/color"

	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in ascending order every frame.
const (
	LayerTerrain ecs.LayerID = iota
	LayerEntities
	LayerEffects
	LayerWorldHUD
	LayerScreenUI
)

// Default is the layer entities are created on.
const Default = LayerEntities

// Config holds general game configuration
type Config struct {
	Title       string `mapstructure:"title"`
	Width       int    `mapstructure:"width"`
	Height      int    `mapstructure:"height"`
	SpriteScale uint32 `mapstructure:"sprite_scale"`
	TPS         int    `mapstructure:"tps"`
	Debug       bool   `mapstructure:"debug"`

	// Level is the TMX file under assets/levels to load.
	Level string `mapstructure:"level"`
	// Catalog optionally replaces the embedded entity catalog.
	Catalog string `mapstructure:"catalog"`
	// SaveSlot names the gdata item the world snapshot is written to.
	SaveSlot string `mapstructure:"save_slot"`
	// SpawnType is the catalog entry placed by clicking in the world.
	SpawnType string `mapstructure:"spawn_type"`
}

// Scale returns the sprite scale as passed to every spatial transform.
func (c *Config) Scale() spatial.Scale {
	if c.SpriteScale == 0 {
		return 1
	}
	return spatial.Scale(c.SpriteScale)
}

// CollisionConfig contains collision rules
type CollisionConfig struct {
	Matrix *spatial.Matrix
	// PlacementTags are the resolv tags a spawned footprint must stay clear of.
	PlacementTags []string
}

// CombatConfig contains contact damage and pickup tuning
type CombatConfig struct {
	PlayerInvulnFrames int
	EnemyInvulnFrames  int
	HealthBarDuration  int // frames
	HitFlashFrames     int
	DamageFlashFrames  int
	HitShakeIntensity  float64
	HitShakeFrames     int
	StompDamage        int // damage a hopping player deals on contact
}

// PlayerConfig contains player movement tuning
type PlayerConfig struct {
	Acceleration float64
	Friction     float64
	HopHeight    float32 // pixels the sprite rises during a hop
	HopDuration  float32 // seconds
}

// EnemyConfig contains enemy AI tuning
type EnemyConfig struct {
	ChaseRange     float64
	StopDistance   float64
	WanderInterval int // frames between wander direction changes
}

// BobConfig contains the float animation of dropped items
type BobConfig struct {
	Amplitude float32
	Period    float32 // seconds for a full up-and-down cycle
}

// RenderConfig contains world rendering parameters
type RenderConfig struct {
	CullPadding     float64
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarGap    float64
	EffectFrames    int
	EffectRadius    float32
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowCollision bool // Draw collision boxes and anchors
	SkipLevel     bool // Start with an empty world instead of loading a level
}

// Global configuration instances
var C *Config
var Collision CollisionConfig
var Combat CombatConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Bob BobConfig
var Render RenderConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Ground       = color.RGBA{R: 58, G: 82, B: 48, A: 255}
)

func init() {
	C = &Config{
		Title:       "Hollowfield",
		Width:       640,
		Height:      360,
		SpriteScale: 2,
		TPS:         60,
		Level:       "levels/meadow.tmx",
		SaveSlot:    "world",
		SpawnType:   "coin",
	}

	Collision = CollisionConfig{
		Matrix:        spatial.DefaultMatrix(),
		PlacementTags: []string{"solid"},
	}

	Combat = CombatConfig{
		PlayerInvulnFrames: 45,
		EnemyInvulnFrames:  20,
		HealthBarDuration:  180,
		HitFlashFrames:     6,
		DamageFlashFrames:  5,
		HitShakeIntensity:  3,
		HitShakeFrames:     10,
		StompDamage:        15,
	}

	Player = PlayerConfig{
		Acceleration: 0.6,
		Friction:     0.4,
		HopHeight:    10,
		HopDuration:  0.35,
	}

	Enemy = EnemyConfig{
		ChaseRange:     160,
		StopDistance:   4,
		WanderInterval: 90,
	}

	Bob = BobConfig{
		Amplitude: 3,
		Period:    1.2,
	}

	Render = RenderConfig{
		CullPadding:     64,
		HealthBarWidth:  24,
		HealthBarHeight: 3,
		HealthBarGap:    4,
		EffectFrames:    12,
		EffectRadius:    10,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	Debug = DebugConfig{
		ShowCollision: false,
		SkipLevel:     false,
	}
}
