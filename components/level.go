package components

import (
	"github.com/automoto/lozo/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level
	Names        []string // every map found in the levels directory, sorted
}

var Level = donburi.NewComponentType[LevelData]()
