package factory

import (
	"github.com/automoto/lozo/archetypes"
	"github.com/automoto/lozo/components"
	"github.com/automoto/lozo/dungeon"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera starts the camera centered on room, with no scroll running.
func CreateCamera(ecs *ecs.ECS, room *dungeon.Room) {
	camera := archetypes.Camera.Spawn(ecs)
	data := &components.CameraData{Room: room}
	if room != nil {
		c := room.Bounds().Center()
		data.Position = math.Vec2{X: float64(c.X), Y: float64(c.Y)}
	}
	components.Camera.Set(camera, data)
}
