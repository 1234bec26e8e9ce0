package scenes

import (
	"errors"
	"image/color"
	"sync"

	"github.com/automoto/hollowfield/assets"
	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/shared/leveldata"
	"github.com/automoto/hollowfield/systems"
	"github.com/automoto/hollowfield/systems/factory"
	"github.com/automoto/hollowfield/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// WorldScene runs one level: the frame phases as ECS systems and one
// renderer per draw layer.
type WorldScene struct {
	ecs       *ecs.ECS
	levelPath string
	level     *leveldata.Level
	pauseUI   *ui.PauseUI
	once      sync.Once
	err       error
}

// NewWorldScene creates a scene for the TMX level at levelPath.
func NewWorldScene(levelPath string) *WorldScene {
	return &WorldScene{levelPath: levelPath}
}

// NewWorldSceneWithLevel creates a scene for an already loaded level.
func NewWorldSceneWithLevel(level *leveldata.Level) *WorldScene {
	return &WorldScene{level: level}
}

// Update advances one fixed step. It returns ebiten.Termination once the
// player has asked to quit.
func (ws *WorldScene) Update() error {
	ws.once.Do(ws.configure)
	if ws.err != nil {
		return ws.err
	}

	ws.ecs.Update()

	if systems.GetOrCreatePause(ws.ecs).Quit {
		return ebiten.Termination
	}
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// ECS exposes the scene's world, mainly for tests and tools.
func (ws *WorldScene) ECS() *ecs.ECS {
	ws.once.Do(ws.configure)
	return ws.ecs
}

// Err reports a failure to set the scene up.
func (ws *WorldScene) Err() error {
	return ws.err
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())
	ws.ecs = e

	if ws.level == nil {
		level, err := assets.LoadLevel(ws.levelPath)
		if err != nil {
			zap.L().Error("could not load level", zap.String("path", ws.levelPath), zap.Error(err))
			ws.err = err
			return
		}
		ws.level = level
	}

	systems.RegisterCombat(e)

	// Phase 1: input, always runs
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(ws.updatePauseMenu)

	// Phase 2: intent and animation
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateBob))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawner))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePersistence))

	// Phase 3: resolve overlaps, then deliver the contacts they produced
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))

	// The camera follows the resolved positions
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	e.AddSystem(systems.UpdateMessage)

	// Phase 4: one renderer per layer, drawn in layer order
	e.AddRenderer(cfg.LayerTerrain, systems.DrawLevel)
	e.AddRenderer(cfg.LayerEntities, systems.DrawEntities)
	e.AddRenderer(cfg.LayerEffects, systems.DrawEffects)
	e.AddRenderer(cfg.LayerWorldHUD, systems.DrawHealthBars)
	e.AddRenderer(cfg.LayerWorldHUD, systems.DrawDebug)
	e.AddRenderer(cfg.LayerScreenUI, systems.DrawHUD)
	e.AddRenderer(cfg.LayerScreenUI, ws.drawPauseMenu)

	if err := ws.populate(); err != nil {
		ws.err = err
	}
}

// populate builds the level entities and points the camera at the first
// player.
func (ws *WorldScene) populate() error {
	factory.CreateLevel(ws.ecs, ws.level)
	factory.PopulateLevel(ws.ecs, ws.level)

	if len(ws.level.Players) == 0 {
		return errors.New("no player spawn points defined in map")
	}
	spawn := ws.level.Players[0]
	factory.CreateCamera(ws.ecs, spawn.X, spawn.Y)

	zap.L().Info("level ready",
		zap.String("level", ws.level.Name),
		zap.Int("spawns", ws.level.SpawnCount()),
		zap.Int("tiles", len(ws.level.Terrain)),
	)
	return nil
}

func (ws *WorldScene) updatePauseMenu(e *ecs.ECS) {
	if !systems.IsPaused(e) {
		return
	}
	if ws.pauseUI == nil {
		ws.pauseUI = ui.NewPauseUI(ui.PauseActions{
			OnResume: ws.resume,
			OnSave:   ws.save,
			OnLoad:   ws.load,
			OnQuit:   ws.quit,
		})
	}
	ws.pauseUI.Update()
}

func (ws *WorldScene) drawPauseMenu(e *ecs.ECS, screen *ebiten.Image) {
	if !systems.IsPaused(e) || ws.pauseUI == nil {
		return
	}
	ws.pauseUI.Draw(screen)
}

func (ws *WorldScene) resume() {
	systems.GetOrCreatePause(ws.ecs).IsPaused = false
	ws.setMenuStatus("")
}

func (ws *WorldScene) save() {
	if err := systems.SaveWorld(ws.ecs, cfg.C.SaveSlot); err != nil {
		zap.L().Warn("save failed", zap.String("slot", cfg.C.SaveSlot), zap.Error(err))
		ws.setMenuStatus("Save failed")
		return
	}
	ws.setMenuStatus("World saved")
}

func (ws *WorldScene) load() {
	switch err := systems.LoadWorld(ws.ecs, cfg.C.SaveSlot); {
	case errors.Is(err, systems.ErrNoSave):
		ws.setMenuStatus("Nothing saved yet")
	case err != nil:
		zap.L().Warn("load failed", zap.String("slot", cfg.C.SaveSlot), zap.Error(err))
		ws.setMenuStatus("Load failed")
	default:
		ws.setMenuStatus("World loaded")
		ws.snapCamera()
	}
}

func (ws *WorldScene) setMenuStatus(msg string) {
	if ws.pauseUI != nil {
		ws.pauseUI.SetStatus(msg)
	}
	if msg != "" {
		systems.SetStatus(ws.ecs, msg)
	}
}

func (ws *WorldScene) quit() {
	systems.GetOrCreatePause(ws.ecs).Quit = true
}

// snapCamera jumps the camera to the player so a load does not pan across
// the map.
func (ws *WorldScene) snapCamera() {
	cameraEntry, ok := components.Camera.First(ws.ecs.World)
	if !ok {
		return
	}
	playerEntry, ok := components.Player.First(ws.ecs.World)
	if !ok {
		return
	}
	center := components.Spatial.Get(playerEntry).VisualCenter(cfg.C.Scale())
	camera := components.Camera.Get(cameraEntry)
	camera.Position.X = float64(center.X)
	camera.Position.Y = float64(center.Y)
}
