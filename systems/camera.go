package systems

import (
	"github.com/automoto/lozo/components"
	"github.com/automoto/lozo/config"
	"github.com/automoto/lozo/dungeon"
	"github.com/automoto/lozo/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateCamera keeps the camera centered on the player's room. When the room
// changes it scrolls there over Camera.ScrollSeconds.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	room := components.Player.Get(playerEntry).CurrentRoom()

	if room != camera.Room {
		startScroll(camera, room)
	}
	target := roomCenter(room)

	if camera.Scroll == nil {
		camera.Position = target
		return
	}

	t, done := camera.Scroll.Update(1 / float32(config.C.TPS))
	camera.Position = scrollPosition(camera.ScrollFrom, target, float64(t))
	if done {
		camera.Scroll = nil
		camera.Position = target
	}
}

func startScroll(camera *components.CameraData, room *dungeon.Room) {
	camera.Room = room
	camera.ScrollFrom = camera.Position
	camera.Scroll = nil
	if config.Camera.ScrollSeconds > 0 {
		camera.Scroll = gween.New(0, 1, config.Camera.ScrollSeconds, ease.InOutQuad)
	}
}

func roomCenter(room *dungeon.Room) math.Vec2 {
	c := room.Bounds().Center()
	return math.Vec2{X: float64(c.X), Y: float64(c.Y)}
}

// scrollPosition interpolates between from and to, t in [0, 1].
func scrollPosition(from, to math.Vec2, t float64) math.Vec2 {
	return math.Vec2{
		X: from.X + (to.X-from.X)*t,
		Y: from.Y + (to.Y-from.Y)*t,
	}
}

// cameraOffset is the translation from world to screen coordinates.
func cameraOffset(camera *components.CameraData, screenW, screenH int) (float64, float64) {
	return float64(screenW)/2 - camera.Position.X, float64(screenH)/2 - camera.Position.Y
}
