package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PlayerData struct {
	Direction    Vector
	SpeedX       float64
	SpeedY       float64
	InvulnFrames int // Invulnerability frames timer
	RemainderX   float64
	RemainderY   float64
}

var Player = donburi.NewComponentType[PlayerData]()
