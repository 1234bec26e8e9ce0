package components

import (
	"github.com/automoto/hollowfield/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level      *leveldata.Level
	Background *ebiten.Image // Pre-rendered terrain, nil when drawn as a flat fill
}

var Level = donburi.NewComponentType[LevelData]()
