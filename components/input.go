package components

import (
	cfg "github.com/automoto/hollowfield/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	// Cursor position in screen space and whether the primary button was
	// clicked this frame.
	CursorX, CursorY int
	Clicked          bool
}

var Input = donburi.NewComponentType[InputData]()
