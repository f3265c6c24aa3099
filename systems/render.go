package systems

import (
	"github.com/automoto/lozo/components"
	"github.com/automoto/lozo/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawPlayer draws the player's current frame scaled up to its location box.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camX, camY := cameraOffset(camera, screen.Bounds().Dx(), screen.Bounds().Dy())

	for e := range tags.Player.Iter(ecs.World) {
		p := components.Player.Get(e)
		anim := components.Animation.Get(e)

		frame := anim.FrameImage(components.FrameKey{
			Direction: p.Direction(),
			Attacking: p.Attacking(),
			Frame:     p.Frame(),
		})
		if frame == nil {
			continue
		}

		loc := p.Location()
		fw, fh := frame.Bounds().Dx(), frame.Bounds().Dy()

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(loc.W)/float64(fw), float64(loc.H)/float64(fh))
		op.GeoM.Translate(float64(loc.X)+camX, float64(loc.Y)+camY)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(frame, op)
	}
}
