package main

import (
	"flag"
	"os"

	"github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/fonts"
	"github.com/automoto/hollowfield/logging"
	"github.com/automoto/hollowfield/scenes"
	"github.com/automoto/hollowfield/shared/leveldata"
	"github.com/automoto/hollowfield/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	if config.Debug.SkipLevel {
		return &Game{scene: scenes.NewWorldSceneWithLevel(emptyLevel())}
	}
	return &Game{scene: scenes.NewWorldScene(config.C.Level)}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

// emptyLevel is an open field with only the player in it.
func emptyLevel() *leveldata.Level {
	return &leveldata.Level{
		Name:   "empty",
		Width:  config.C.Width,
		Height: config.C.Height,
		TileW:  32,
		TileH:  32,
		Players: []leveldata.Spawn{{
			Type: "hero",
			X:    float64(config.C.Width) / 2,
			Y:    float64(config.C.Height) / 2,
		}},
	}
}

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	debug := flag.Bool("debug", false, "verbose logging and collision overlay")
	level := flag.String("level", "", "TMX level to load instead of the configured one")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.BoolVar(&config.Debug.SkipLevel, "empty", false, "start in an empty field")
	flag.Parse()

	if err := config.Load(*configPath); err != nil {
		// The logger is not up yet
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	if *debug {
		config.C.Debug = true
	}
	config.Debug.ShowCollision = config.Debug.ShowCollision || config.C.Debug
	if *level != "" {
		config.C.Level = *level
	}

	flush, err := logging.Install(logging.Options{Debug: config.C.Debug, Level: *logLevel})
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer flush()

	config.Types.Validate(zap.L())

	if err := fonts.LoadDefaults(); err != nil {
		zap.L().Fatal("could not load fonts", zap.Error(err))
	}

	// Saving is optional; the game runs without it
	if err := systems.InitPersistence("hollowfield"); err != nil {
		zap.L().Warn("saves disabled", zap.Error(err))
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		zap.L().Error("game stopped", zap.Error(err))
		flush()
		os.Exit(1)
	}
}
