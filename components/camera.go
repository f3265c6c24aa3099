package components

import (
	"github.com/automoto/lozo/dungeon"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Room     *dungeon.Room // room the camera is showing or scrolling to

	// Scroll runs from 0 to 1 while moving from ScrollFrom to the room center.
	Scroll     *gween.Tween
	ScrollFrom math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
