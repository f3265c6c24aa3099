// Package gamemath holds the integer geometry shared by the movement, dungeon
// and player packages. It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

import "fmt"

// Point is a world-space coordinate in pixels.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Rect is an axis-aligned box. X and Y are the top-left corner.
type Rect struct {
	X, Y, W, H int
}

// R is shorthand for Rect{X: x, Y: y, W: w, H: h}.
func R(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) String() string {
	return fmt.Sprintf("{X:%d Y:%d W:%d H:%d}", r.X, r.Y, r.W, r.H)
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Center uses integer division, so odd sizes round toward the top-left.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains is closed on the left and top edges and open on the right and
// bottom edges, so a point on a boundary shared by two adjacent rects belongs
// to exactly one of them.
func (r Rect) Contains(p Point) bool {
	return r.X <= p.X && p.X < r.Right() &&
		r.Y <= p.Y && p.Y < r.Bottom()
}

// ContainsRect reports whether s lies entirely inside r.
func (r Rect) ContainsRect(s Rect) bool {
	return r.X <= s.X && s.Right() <= r.Right() &&
		r.Y <= s.Y && s.Bottom() <= r.Bottom()
}

// Intersects reports whether r and s overlap on both axes. Rects that only
// share an edge do not intersect.
func (r Rect) Intersects(s Rect) bool {
	return r.X < s.Right() && s.X < r.Right() &&
		r.Y < s.Bottom() && s.Y < r.Bottom()
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}
