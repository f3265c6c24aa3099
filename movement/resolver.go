package movement

// ResolverState is what direction resolution carries from one tick to the
// next.
type ResolverState struct {
	Axis            Axis
	AttemptedMoving bool
	Direction       Direction
}

// NewResolverState returns the neutral state for a player facing dir.
func NewResolverState(dir Direction) ResolverState {
	return ResolverState{Direction: dir}
}

// Resolve picks the single direction to move in for the buttons held this
// tick. ok is false when the player should not move. The returned state must
// be passed to the next call, including after ticks that produced no
// movement.
func Resolve(pressed Buttons, prev ResolverState) (dir Direction, ok bool, next ResolverState) {
	axis := pressed.Axis()
	next = ResolverState{Axis: axis, Direction: prev.Direction}

	switch pressed.Count() {
	case 1:
		return next.move(axisDirection(axis))

	case 2:
		if prev.AttemptedMoving {
			// Same chord as last tick: keep whichever direction was chosen.
			if axis == prev.Axis {
				return next.move(prev.Direction)
			}
			// Opposite buttons on one axis, nothing on the other.
			if axis.DX == 0 || axis.DY == 0 {
				return next.Direction, false, next
			}
			// One button of the chord changed; move along the axis that changed.
			if axis.DX == prev.Axis.DX {
				return next.move(vertical(axis.DY))
			}
			return next.move(horizontal(axis.DX))
		}
		// Fresh chord: left and right win over up and down.
		if axis.DX != 0 {
			return next.move(horizontal(axis.DX))
		}
		return next.Direction, false, next

	case 3:
		// Two of the three cancel, the survivor sets the direction.
		if axis.DX == 0 {
			return next.move(vertical(axis.DY))
		}
		return next.move(horizontal(axis.DX))
	}

	// No buttons, or all four cancelling each other out.
	return next.Direction, false, next
}

func (s ResolverState) move(dir Direction) (Direction, bool, ResolverState) {
	s.AttemptedMoving = true
	s.Direction = dir
	return dir, true, s
}

func horizontal(dx int) Direction {
	if dx == 1 {
		return Right
	}
	return Left
}

func vertical(dy int) Direction {
	if dy == 1 {
		return Down
	}
	return Up
}

// axisDirection maps a single-button axis vector to its direction.
func axisDirection(a Axis) Direction {
	if a.DX != 0 {
		return horizontal(a.DX)
	}
	return vertical(a.DY)
}
