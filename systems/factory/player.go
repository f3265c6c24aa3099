package factory

import (
	"github.com/automoto/lozo/archetypes"
	"github.com/automoto/lozo/assets"
	"github.com/automoto/lozo/components"
	cfg "github.com/automoto/lozo/config"
	"github.com/automoto/lozo/movement"
	"github.com/automoto/lozo/player"
	"github.com/automoto/lozo/shared/gamemath"
	"github.com/automoto/lozo/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerConfig converts the sprite-pixel player settings into world pixels.
func PlayerConfig() player.Config {
	s := cfg.World.Scale
	return player.Config{
		Width:     cfg.Player.FrameWidth * s,
		Height:    cfg.Player.FrameHeight * s,
		WalkSpeed: cfg.Player.WalkSpeed,
		Inset: player.Inset{
			Left:   cfg.Player.InsetLeft * s,
			Top:    cfg.Player.InsetTop * s,
			Right:  cfg.Player.InsetRight * s,
			Bottom: cfg.Player.InsetBottom * s,
		},
		WalkFrameTicks:   cfg.Player.WalkFrameTicks,
		AttackFrameTicks: cfg.Player.AttackFrameTicks,
	}
}

// CreatePlayer places the player at the level's spawn point, or in the middle
// of its first room when the map has none.
func CreatePlayer(ecs *ecs.ECS, level *assets.Level) (*donburi.Entry, error) {
	pc := PlayerConfig()
	p, err := player.New(level.Dungeon, startPoint(level, pc), movement.Down, pc)
	if err != nil {
		return nil, err
	}

	entry := archetypes.Player.Spawn(ecs)
	components.Player.SetValue(entry, components.PlayerData{
		Player:   p,
		LastRoom: p.CurrentRoom(),
	})

	col := p.WalkingCollider()
	obj := resolv.NewObject(float64(col.X), float64(col.Y), float64(col.W), float64(col.H), tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(col.W), float64(col.H)))
	obj.Data = entry
	level.Dungeon.Space().Add(obj)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	components.Animation.Set(entry, GenerateAnimations(cfg.Sprites.PlayerSheet, cfg.PlayerSprites))

	return entry, nil
}

func startPoint(level *assets.Level, pc player.Config) gamemath.Point {
	if spawn, ok := level.Dungeon.Spawn(); ok {
		return spawn
	}
	rooms := level.Dungeon.Rooms()
	if len(rooms) == 0 {
		return gamemath.Point{}
	}
	c := rooms[0].Bounds().Center()
	return gamemath.Point{X: c.X - pc.Width/2, Y: c.Y - pc.Height/2}
}
