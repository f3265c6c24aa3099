// Package movement turns held directional buttons into a single facing
// direction and clamps axis-aligned moves against immovable rectangles.
package movement

import "github.com/automoto/lozo/shared/gamemath"

// Direction is one of the four cardinal facings. There is no diagonal.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{Left, Right, Up, Down}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Delta returns the unit step for d.
func (d Direction) Delta() gamemath.Point {
	switch d {
	case Left:
		return gamemath.Point{X: -1}
	case Right:
		return gamemath.Point{X: 1}
	case Up:
		return gamemath.Point{Y: -1}
	case Down:
		return gamemath.Point{Y: 1}
	}
	return gamemath.Point{}
}

// Button is a single directional button.
type Button uint8

const (
	ButtonLeft Button = 1 << iota
	ButtonRight
	ButtonUp
	ButtonDown
)

// Buttons is the set of directional buttons held during one tick.
type Buttons uint8

// Press returns b with btn held.
func (b Buttons) Press(btn Button) Buttons {
	return b | Buttons(btn)
}

// Held reports whether btn is in the set.
func (b Buttons) Held(btn Button) bool {
	return b&Buttons(btn) != 0
}

// Count returns how many of the four buttons are held.
func (b Buttons) Count() int {
	n := 0
	for _, btn := range [...]Button{ButtonLeft, ButtonRight, ButtonUp, ButtonDown} {
		if b.Held(btn) {
			n++
		}
	}
	return n
}

// Axis returns the signed axis vector of the held buttons. Opposite buttons on
// the same axis cancel.
func (b Buttons) Axis() Axis {
	var a Axis
	if b.Held(ButtonLeft) {
		a.DX--
	}
	if b.Held(ButtonRight) {
		a.DX++
	}
	if b.Held(ButtonUp) {
		a.DY--
	}
	if b.Held(ButtonDown) {
		a.DY++
	}
	return a
}

// Hold builds a Buttons set from individual buttons.
func Hold(btns ...Button) Buttons {
	var b Buttons
	for _, btn := range btns {
		b = b.Press(btn)
	}
	return b
}

// Axis is a signed per-axis input vector with components in {-1, 0, 1}.
type Axis struct {
	DX, DY int
}
