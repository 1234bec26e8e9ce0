package systems

import (
	"github.com/automoto/hollowfield/components"
	"github.com/yohamta/donburi/ecs"
)

// statusFrames is how long a status line stays up.
const statusFrames = 120

// UpdateMessage counts the status line down and clears it when it expires.
func UpdateMessage(ecs *ecs.ECS) {
	state := getOrCreateStatus(ecs)
	if state.DisplayTimer > 0 {
		state.DisplayTimer--
		if state.DisplayTimer == 0 {
			state.Text = ""
		}
	}
}

// SetStatus replaces the status line.
func SetStatus(ecs *ecs.ECS, text string) {
	state := getOrCreateStatus(ecs)
	state.Text = text
	state.DisplayTimer = statusFrames
}

// GetStatus returns the current status line, if any.
func GetStatus(ecs *ecs.ECS) (string, bool) {
	entry, ok := components.Status.First(ecs.World)
	if !ok {
		return "", false
	}
	state := components.Status.Get(entry)
	return state.Text, state.Text != ""
}

func getOrCreateStatus(ecs *ecs.ECS) *components.StatusData {
	entry, ok := components.Status.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Status))
	}
	return components.Status.Get(entry)
}
