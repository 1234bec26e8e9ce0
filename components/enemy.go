package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	Direction    Vector
	InvulnFrames int // Frames before contact can hurt this enemy again
	WanderTimer  int // Frames until a new wander direction is picked
	RemainderX   float64
	RemainderY   float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
