package movement

import "github.com/automoto/lozo/shared/gamemath"

// Immovables answers which static obstacles a collider overlaps.
type Immovables interface {
	CollidingWith(collider gamemath.Rect) []gamemath.Rect
}

// RectList is a plain slice of immovables checked one by one.
type RectList []gamemath.Rect

// CollidingWith returns every rect in l that intersects collider.
func (l RectList) CollidingWith(collider gamemath.Rect) []gamemath.Rect {
	var colliding []gamemath.Rect
	for _, r := range l {
		if collider.Intersects(r) {
			colliding = append(colliding, r)
		}
	}
	return colliding
}

// ResolveCollision moves collider delta pixels toward dir, then pulls its
// leading edge back to the nearest immovable it ran into. The collider ends
// up touching that immovable, never overlapping it. Only the axis of dir is
// ever adjusted.
func ResolveCollision(collider gamemath.Rect, dir Direction, delta int, immovables Immovables) gamemath.Rect {
	step := dir.Delta()
	moved := collider.Offset(step.X*delta, step.Y*delta)

	colliding := immovables.CollidingWith(moved)
	if len(colliding) == 0 {
		return moved
	}

	switch dir {
	case Left:
		x := moved.X
		for _, imm := range colliding {
			x = max(x, imm.Right())
		}
		moved.X = x
	case Right:
		right := moved.Right()
		for _, imm := range colliding {
			right = min(right, imm.X)
		}
		moved.X = right - moved.W
	case Up:
		y := moved.Y
		for _, imm := range colliding {
			y = max(y, imm.Bottom())
		}
		moved.Y = y
	case Down:
		bottom := moved.Bottom()
		for _, imm := range colliding {
			bottom = min(bottom, imm.Y)
		}
		moved.Y = bottom - moved.H
	}
	return moved
}
