package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state
type PauseData struct {
	IsPaused bool
	Quit     bool // Set by the pause menu; the game loop exits on the next update
}

var Pause = donburi.NewComponentType[PauseData]()

// DebugData toggles developer overlays
type DebugData struct {
	ShowCollision bool
}

var Debug = donburi.NewComponentType[DebugData]()
