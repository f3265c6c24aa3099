package systems

import (
	"github.com/automoto/lozo/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel draws the Bottom layer, under the player.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	drawLevelLayer(ecs, screen, func(l *components.LevelData) *ebiten.Image {
		return l.CurrentLevel.Bottom
	})
}

// DrawLevelTop draws the Top layer, over the player.
func DrawLevelTop(ecs *ecs.ECS, screen *ebiten.Image) {
	drawLevelLayer(ecs, screen, func(l *components.LevelData) *ebiten.Image {
		return l.CurrentLevel.Top
	})
}

func drawLevelLayer(ecs *ecs.ECS, screen *ebiten.Image, layer func(*components.LevelData) *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	img := layer(levelData)
	if img == nil {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(cameraOffset(camera, screen.Bounds().Dx(), screen.Bounds().Dy()))
	screen.DrawImage(img, opts)
}
