package player

import "github.com/automoto/lozo/shared/gamemath"

// Inset is how far the walking collider sits inside each edge of the
// player's full sprite box.
type Inset struct {
	Left, Top, Right, Bottom int
}

// ToCollider shrinks a location box down to its walking collider.
func (i Inset) ToCollider(location gamemath.Rect) gamemath.Rect {
	return gamemath.R(
		location.X+i.Left,
		location.Y+i.Top,
		location.W-i.Left-i.Right,
		location.H-i.Top-i.Bottom,
	)
}

// FromCollider grows a walking collider back out to the full location box.
func (i Inset) FromCollider(collider gamemath.Rect) gamemath.Rect {
	return gamemath.R(
		collider.X-i.Left,
		collider.Y-i.Top,
		collider.W+i.Left+i.Right,
		collider.H+i.Top+i.Bottom,
	)
}
