package factory

import (
	"github.com/automoto/lozo/assets"
	"github.com/automoto/lozo/components"
	cfg "github.com/automoto/lozo/config"
	"github.com/automoto/lozo/movement"
	"github.com/hajimehoshi/ebiten/v2"
)

// GenerateAnimations loads sheetPath and slices every walk and attack frame
// of sprites up front, so drawing never creates sub-images.
func GenerateAnimations(sheetPath string, sprites map[movement.Direction]cfg.SpriteSet) *components.AnimationData {
	animData := &components.AnimationData{
		Sheet:        assets.GetImage(sheetPath),
		Sprites:      sprites,
		CachedFrames: make(map[components.FrameKey]*ebiten.Image),
	}

	for dir, set := range sprites {
		for i := range set.Walk {
			animData.FrameImage(components.FrameKey{Direction: dir, Frame: i})
		}
		for i := range set.Attack {
			animData.FrameImage(components.FrameKey{Direction: dir, Attacking: true, Frame: i})
		}
	}

	return animData
}
