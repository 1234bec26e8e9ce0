package systems

import (
	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle, the quit key and the debug overlay
// toggle. This system should run AFTER UpdateInput but BEFORE other game
// systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}
	if GetAction(input, cfg.ActionQuit).JustPressed {
		pause.Quit = true
	}
	if GetAction(input, cfg.ActionDebug).JustPressed {
		debug := GetOrCreateDebug(ecs)
		debug.ShowCollision = !debug.ShowCollision
	}
}

// IsPaused reports whether gameplay systems should skip this frame.
func IsPaused(ecs *ecs.ECS) bool {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		return false
	}
	return components.Pause.Get(entry).IsPaused
}

// GetOrCreatePause returns the singleton Pause component, creating if needed
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}

// GetOrCreateDebug returns the singleton Debug component, seeded from the
// command-line debug options the first time it is created.
func GetOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Debug))
		components.Debug.SetValue(entry, components.DebugData{ShowCollision: cfg.Debug.ShowCollision})
	}
	return components.Debug.Get(entry)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}
