package movement

import (
	"testing"

	"github.com/automoto/lozo/shared/gamemath"
	"github.com/pixil98/go-testutil"
)

func TestResolveCollisionUnobstructed(t *testing.T) {
	c := gamemath.R(100, 100, 10, 10)
	var none RectList

	tests := map[Direction]gamemath.Rect{
		Left:  gamemath.R(96, 100, 10, 10),
		Right: gamemath.R(104, 100, 10, 10),
		Up:    gamemath.R(100, 96, 10, 10),
		Down:  gamemath.R(100, 104, 10, 10),
	}

	for dir, exp := range tests {
		t.Run(dir.String(), func(t *testing.T) {
			testutil.AssertEqual(t, "collider", ResolveCollision(c, dir, 4, none), exp)
		})
	}
}

func TestResolveCollisionClampsToContact(t *testing.T) {
	c := gamemath.R(100, 100, 10, 10)

	tests := map[string]struct {
		dir  Direction
		wall gamemath.Rect
		exp  gamemath.Rect
	}{
		"left":  {dir: Left, wall: gamemath.R(90, 90, 8, 30), exp: gamemath.R(98, 100, 10, 10)},
		"right": {dir: Right, wall: gamemath.R(112, 90, 8, 30), exp: gamemath.R(102, 100, 10, 10)},
		"up":    {dir: Up, wall: gamemath.R(90, 80, 30, 18), exp: gamemath.R(100, 98, 10, 10)},
		"down":  {dir: Down, wall: gamemath.R(90, 113, 30, 8), exp: gamemath.R(100, 103, 10, 10)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ResolveCollision(c, tt.dir, 4, RectList{tt.wall})
			testutil.AssertEqual(t, "collider", got, tt.exp)
			testutil.AssertEqual(t, "overlaps wall", got.Intersects(tt.wall), false)
		})
	}
}

func TestResolveCollisionAlreadyTouching(t *testing.T) {
	c := gamemath.R(100, 100, 10, 10)
	walls := RectList{
		gamemath.R(90, 100, 10, 10),  // touching left edge
		gamemath.R(110, 100, 10, 10), // touching right edge
		gamemath.R(100, 90, 10, 10),  // touching top edge
		gamemath.R(100, 110, 10, 10), // touching bottom edge
	}

	for _, dir := range Directions {
		t.Run(dir.String(), func(t *testing.T) {
			testutil.AssertEqual(t, "pinned", ResolveCollision(c, dir, 4, walls), c)
		})
	}
}

func TestResolveCollisionMovingAwayIsFree(t *testing.T) {
	c := gamemath.R(100, 100, 10, 10)

	tests := map[string]struct {
		dir  Direction
		wall gamemath.Rect
		exp  gamemath.Rect
	}{
		"away from left wall":   {dir: Right, wall: gamemath.R(90, 100, 10, 10), exp: gamemath.R(104, 100, 10, 10)},
		"away from right wall":  {dir: Left, wall: gamemath.R(110, 100, 10, 10), exp: gamemath.R(96, 100, 10, 10)},
		"away from top wall":    {dir: Down, wall: gamemath.R(100, 90, 10, 10), exp: gamemath.R(100, 104, 10, 10)},
		"away from bottom wall": {dir: Up, wall: gamemath.R(100, 110, 10, 10), exp: gamemath.R(100, 96, 10, 10)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "collider", ResolveCollision(c, tt.dir, 4, RectList{tt.wall}), tt.exp)
		})
	}
}

// Walking along a wall that the collider is touching slides freely.
func TestResolveCollisionSlidesAlongWall(t *testing.T) {
	c := gamemath.R(100, 100, 10, 10)
	leftWall := gamemath.R(80, 0, 20, 300)
	topWall := gamemath.R(0, 80, 300, 20)

	testutil.AssertEqual(t, "down along left wall", ResolveCollision(c, Down, 4, RectList{leftWall}), gamemath.R(100, 104, 10, 10))
	testutil.AssertEqual(t, "up along left wall", ResolveCollision(c, Up, 4, RectList{leftWall}), gamemath.R(100, 96, 10, 10))
	testutil.AssertEqual(t, "right along top wall", ResolveCollision(c, Right, 4, RectList{topWall}), gamemath.R(104, 100, 10, 10))
	testutil.AssertEqual(t, "left along top wall", ResolveCollision(c, Left, 4, RectList{topWall}), gamemath.R(96, 100, 10, 10))
}

// Two staggered immovables each cover part of the leading edge. The nearer
// one stops the move whichever order they are listed in, and the collider
// keeps the full perpendicular position it started with.
func TestResolveCollisionStaggeredPair(t *testing.T) {
	c := gamemath.R(100, 100, 10, 10)

	tests := map[string]struct {
		dir       Direction
		near, far gamemath.Rect
		exp       gamemath.Rect
	}{
		"left": {
			dir:  Left,
			near: gamemath.R(90, 95, 8, 8),
			far:  gamemath.R(88, 105, 9, 8),
			exp:  gamemath.R(98, 100, 10, 10),
		},
		"right": {
			dir:  Right,
			near: gamemath.R(112, 95, 8, 8),
			far:  gamemath.R(113, 105, 8, 8),
			exp:  gamemath.R(102, 100, 10, 10),
		},
		"up": {
			dir:  Up,
			near: gamemath.R(95, 90, 8, 8),
			far:  gamemath.R(105, 89, 8, 8),
			exp:  gamemath.R(100, 98, 10, 10),
		},
		"down": {
			dir:  Down,
			near: gamemath.R(95, 111, 8, 8),
			far:  gamemath.R(105, 113, 8, 8),
			exp:  gamemath.R(100, 101, 10, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := ResolveCollision(c, tt.dir, 4, RectList{tt.near, tt.far})
			b := ResolveCollision(c, tt.dir, 4, RectList{tt.far, tt.near})
			testutil.AssertEqual(t, "near first", a, tt.exp)
			testutil.AssertEqual(t, "far first", b, tt.exp)
			testutil.AssertEqual(t, "overlaps near", a.Intersects(tt.near), false)
			testutil.AssertEqual(t, "overlaps far", a.Intersects(tt.far), false)
		})
	}
}

// An immovable covering only a corner of the leading edge still blocks.
func TestResolveCollisionPartialEdge(t *testing.T) {
	c := gamemath.R(100, 100, 10, 10)
	corner := gamemath.R(108, 90, 10, 11) // covers two columns of the top edge

	got := ResolveCollision(c, Up, 4, RectList{corner})
	testutil.AssertEqual(t, "collider", got, gamemath.R(100, 101, 10, 10))
}

func TestResolveCollisionNeverOverlaps(t *testing.T) {
	walls := RectList{
		gamemath.R(0, 0, 16, 160),
		gamemath.R(144, 0, 16, 160),
		gamemath.R(0, 0, 160, 16),
		gamemath.R(0, 144, 160, 16),
		gamemath.R(64, 64, 32, 32),
	}

	for _, dir := range Directions {
		c := gamemath.R(20, 20, 12, 12)
		for i := 0; i < 100; i++ {
			c = ResolveCollision(c, dir, 3, walls)
			if len(walls.CollidingWith(c)) != 0 {
				t.Fatalf("%v step %d: collider %v overlaps a wall", dir, i, c)
			}
			if c.W != 12 || c.H != 12 {
				t.Fatalf("%v step %d: collider resized to %v", dir, i, c)
			}
		}
	}
}
