package components

import "github.com/yohamta/donburi"

// StatusData is a short line of feedback shown at the bottom of the screen,
// such as "World saved".
type StatusData struct {
	Text         string
	DisplayTimer int // frames left on screen
}

var Status = donburi.NewComponentType[StatusData]()
