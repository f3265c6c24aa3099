package components

import (
	"github.com/automoto/lozo/config"
	"github.com/automoto/lozo/movement"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// FrameKey identifies one cell of a directional sprite sheet.
type FrameKey struct {
	Direction movement.Direction
	Attacking bool
	Frame     int
}

type AnimationData struct {
	Sheet        *ebiten.Image
	Sprites      map[movement.Direction]config.SpriteSet
	CachedFrames map[FrameKey]*ebiten.Image // Pre-calculated subimages
}

// FrameImage returns the sub-image for key, slicing and caching it on first use.
func (a *AnimationData) FrameImage(key FrameKey) *ebiten.Image {
	if img, ok := a.CachedFrames[key]; ok {
		return img
	}
	if a.Sheet == nil {
		return nil
	}

	set, ok := a.Sprites[key.Direction]
	if !ok {
		return nil
	}
	rect := set.Frame(key.Attacking, key.Frame)
	if rect.Empty() {
		return nil
	}

	img := a.Sheet.SubImage(rect).(*ebiten.Image)
	if a.CachedFrames == nil {
		a.CachedFrames = make(map[FrameKey]*ebiten.Image)
	}
	a.CachedFrames[key] = img
	return img
}

var Animation = donburi.NewComponentType[AnimationData]()
