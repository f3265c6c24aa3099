package player

import (
	"fmt"

	"github.com/automoto/lozo/assets/animations"
	"github.com/automoto/lozo/dungeon"
	"github.com/automoto/lozo/movement"
	"github.com/automoto/lozo/shared/gamemath"
)

// Config holds the tunable values of a player. Sizes are in world pixels.
type Config struct {
	Width, Height    int
	WalkSpeed        int
	Inset            Inset
	WalkFrameTicks   []int
	AttackFrameTicks []int
}

// Input is one tick's worth of held buttons.
type Input struct {
	Buttons movement.Buttons
	Attack  bool
}

// Player is the walking, attacking character. It only changes in Update.
type Player struct {
	cfg      Config
	dungeon  *dungeon.Dungeon
	room     *dungeon.Room
	location gamemath.Rect
	resolver movement.ResolverState

	direction     movement.Direction
	attacking     bool
	attackWasHeld bool
	walk          *animations.Animation
	attack        *animations.Animation
}

// New places a player with its sprite box's top-left corner at start. The
// center of that box has to fall inside a room of d.
func New(d *dungeon.Dungeon, start gamemath.Point, dir movement.Direction, cfg Config) (*Player, error) {
	location := gamemath.R(start.X, start.Y, cfg.Width, cfg.Height)
	room, err := d.CurrentRoom(nil, location.Center())
	if err != nil {
		return nil, fmt.Errorf("player start %v: %w", start, err)
	}

	return &Player{
		cfg:       cfg,
		dungeon:   d,
		room:      room,
		location:  location,
		resolver:  movement.NewResolverState(dir),
		direction: dir,
		walk:      animations.NewAnimation(cfg.WalkFrameTicks...),
		attack:    animations.NewAnimation(cfg.AttackFrameTicks...),
	}, nil
}

// Update advances the player by exactly one tick.
func (p *Player) Update(in Input) {
	attackPressed := in.Attack && !p.attackWasHeld
	p.attackWasHeld = in.Attack

	switch {
	case p.attacking:
		p.attack.Update()
		if p.attack.Looped {
			p.attacking = false
			p.walk.Restart()
		}
	case attackPressed:
		p.attacking = true
		p.attack.Restart()
	default:
		p.walkTick(in.Buttons)
	}
}

func (p *Player) walkTick(buttons movement.Buttons) {
	prev := p.direction
	dir, ok, next := movement.Resolve(buttons, p.resolver)
	p.resolver = next
	if !ok {
		return
	}

	collider := movement.ResolveCollision(p.WalkingCollider(), dir, p.cfg.WalkSpeed, p.room)
	p.location = p.cfg.Inset.FromCollider(collider)
	p.room = p.dungeon.Reselect(p.room, p.location.Center())
	p.direction = dir

	if dir != prev {
		p.walk.Restart()
	}
	if next.AttemptedMoving {
		p.walk.Update()
	}
}

// Location is the full sprite box in world pixels.
func (p *Player) Location() gamemath.Rect {
	return p.location
}

// WalkingCollider is the part of the sprite box that collides with walls.
func (p *Player) WalkingCollider() gamemath.Rect {
	return p.cfg.Inset.ToCollider(p.location)
}

func (p *Player) Direction() movement.Direction {
	return p.direction
}

func (p *Player) Attacking() bool {
	return p.attacking
}

// Frame is the key frame of whichever animation is playing.
func (p *Player) Frame() int {
	if p.attacking {
		return p.attack.Frame()
	}
	return p.walk.Frame()
}

func (p *Player) CurrentRoom() *dungeon.Room {
	return p.room
}

