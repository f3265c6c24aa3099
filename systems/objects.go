package systems

import (
	"github.com/automoto/lozo/components"
	"github.com/automoto/lozo/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves each player's resolv object onto its walking collider so
// the debug overlay's space check sees where the player is this tick.
// Must run AFTER UpdatePlayer.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range tags.Player.Iter(ecs.World) {
		p := components.Player.Get(e)
		obj := components.Object.Get(e)

		col := p.WalkingCollider()
		obj.X = float64(col.X)
		obj.Y = float64(col.Y)
		obj.Update()
	}
}
