package player

import (
	"errors"
	"testing"

	"github.com/automoto/lozo/dungeon"
	"github.com/automoto/lozo/movement"
	"github.com/automoto/lozo/shared/gamemath"
	"github.com/pixil98/go-testutil"
)

var testConfig = Config{
	Width:            48,
	Height:           48,
	WalkSpeed:        4,
	Inset:            Inset{Left: 6, Top: 24, Right: 6, Bottom: 3},
	WalkFrameTicks:   []int{6, 6},
	AttackFrameTicks: []int{4, 8, 1, 1},
}

// newTestDungeon builds a row of cols rooms, each 256x176, with the given
// immovables.
func newTestDungeon(t *testing.T, cols int, walls ...gamemath.Rect) *dungeon.Dungeon {
	t.Helper()
	d, err := dungeon.New("test", cols, 1, 16, 16)
	if err != nil {
		t.Fatalf("new dungeon: %v", err)
	}
	for col := 0; col < cols; col++ {
		if _, err := d.AddRoom(dungeon.Location{Col: col}, dungeon.TileGrid{}); err != nil {
			t.Fatalf("add room: %v", err)
		}
	}
	for _, w := range walls {
		if _, err := d.AddImmovable(w); err != nil {
			t.Fatalf("add immovable %v: %v", w, err)
		}
	}
	return d
}

func newTestPlayer(t *testing.T, d *dungeon.Dungeon, start gamemath.Point, dir movement.Direction) *Player {
	t.Helper()
	p, err := New(d, start, dir, testConfig)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	return p
}

func hold(btns ...movement.Button) Input {
	return Input{Buttons: movement.Hold(btns...)}
}

func TestNew(t *testing.T) {
	d := newTestDungeon(t, 2)
	p := newTestPlayer(t, d, gamemath.Point{X: 100, Y: 60}, movement.Down)

	testutil.AssertEqual(t, "location", p.Location(), gamemath.R(100, 60, 48, 48))
	testutil.AssertEqual(t, "collider", p.WalkingCollider(), gamemath.R(106, 84, 36, 21))
	testutil.AssertEqual(t, "direction", p.Direction(), movement.Down)
	testutil.AssertEqual(t, "attacking", p.Attacking(), false)
	testutil.AssertEqual(t, "frame", p.Frame(), 0)
	testutil.AssertEqual(t, "room", p.CurrentRoom().Location(), dungeon.Location{})
}

func TestNewInvalidLocation(t *testing.T) {
	d := newTestDungeon(t, 1)

	// The box's corner is inside the room but its center is not.
	_, err := New(d, gamemath.Point{X: 240, Y: 10}, movement.Down, testConfig)
	if !errors.Is(err, dungeon.ErrInvalidLocation) {
		t.Fatalf("err = %v, want ErrInvalidLocation", err)
	}

	_, err = New(d, gamemath.Point{X: -500, Y: -500}, movement.Down, testConfig)
	if !errors.Is(err, dungeon.ErrInvalidLocation) {
		t.Fatalf("err = %v, want ErrInvalidLocation", err)
	}
}

func TestUpdateWalks(t *testing.T) {
	tests := map[string]struct {
		btn    movement.Button
		expDir movement.Direction
		expLoc gamemath.Rect
	}{
		"left":  {btn: movement.ButtonLeft, expDir: movement.Left, expLoc: gamemath.R(96, 60, 48, 48)},
		"right": {btn: movement.ButtonRight, expDir: movement.Right, expLoc: gamemath.R(104, 60, 48, 48)},
		"up":    {btn: movement.ButtonUp, expDir: movement.Up, expLoc: gamemath.R(100, 56, 48, 48)},
		"down":  {btn: movement.ButtonDown, expDir: movement.Down, expLoc: gamemath.R(100, 64, 48, 48)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := newTestPlayer(t, newTestDungeon(t, 1), gamemath.Point{X: 100, Y: 60}, movement.Down)
			p.Update(hold(tt.btn))
			testutil.AssertEqual(t, "location", p.Location(), tt.expLoc)
			testutil.AssertEqual(t, "direction", p.Direction(), tt.expDir)
		})
	}
}

func TestUpdateIdleKeepsState(t *testing.T) {
	p := newTestPlayer(t, newTestDungeon(t, 1), gamemath.Point{X: 100, Y: 60}, movement.Left)
	for i := 0; i < 10; i++ {
		p.Update(Input{})
	}
	testutil.AssertEqual(t, "location", p.Location(), gamemath.R(100, 60, 48, 48))
	testutil.AssertEqual(t, "direction", p.Direction(), movement.Left)
	testutil.AssertEqual(t, "frame", p.Frame(), 0)
}

func TestUpdateStopsAtWall(t *testing.T) {
	wall := gamemath.R(150, 0, 16, 176)
	p := newTestPlayer(t, newTestDungeon(t, 1, wall), gamemath.Point{X: 100, Y: 60}, movement.Down)

	expX := []int{104, 108, 108, 108}
	for i, x := range expX {
		p.Update(hold(movement.ButtonRight))
		testutil.AssertEqual(t, "x", p.Location().X, x)
		if p.WalkingCollider().Intersects(wall) {
			t.Fatalf("tick %d: collider %v overlaps wall", i, p.WalkingCollider())
		}
	}
	testutil.AssertEqual(t, "touching", p.WalkingCollider().Right(), wall.X)

	// The sprite box may overlap the wall; only the collider is solid.
	testutil.AssertEqual(t, "sprite overlaps", p.Location().Intersects(wall), true)

	p.Update(hold(movement.ButtonLeft))
	testutil.AssertEqual(t, "backs away", p.Location().X, 104)
}

func TestUpdateCrossesRooms(t *testing.T) {
	p := newTestPlayer(t, newTestDungeon(t, 2), gamemath.Point{X: 200, Y: 60}, movement.Right)
	first := p.CurrentRoom()

	for i := 1; i <= 8; i++ {
		p.Update(hold(movement.ButtonRight))
		center := p.Location().Center()
		testutil.AssertEqual(t, "center", center.X, 224+4*i)
		if center.X < 256 {
			testutil.AssertEqual(t, "same room", p.CurrentRoom(), first)
		}
	}
	testutil.AssertEqual(t, "next room", p.CurrentRoom().Location(), dungeon.Location{Col: 1})

	p.Update(hold(movement.ButtonLeft))
	testutil.AssertEqual(t, "back", p.CurrentRoom(), first)
}

func TestUpdateFreezesRoomOutsideGrid(t *testing.T) {
	p := newTestPlayer(t, newTestDungeon(t, 1), gamemath.Point{X: 200, Y: 60}, movement.Right)
	room := p.CurrentRoom()

	for i := 0; i < 20; i++ {
		p.Update(hold(movement.ButtonRight))
	}
	if room.Contains(p.Location().Center()) {
		t.Fatalf("expected to walk out of the room, center %v", p.Location().Center())
	}
	testutil.AssertEqual(t, "room kept", p.CurrentRoom(), room)
}

// A wall owned by the room but hanging past the grid still blocks a player
// whose room froze when it walked off the grid.
func TestUpdateBlockedByOverhangOutsideGrid(t *testing.T) {
	wall := gamemath.R(200, 20, 100, 40)
	p := newTestPlayer(t, newTestDungeon(t, 1, wall), gamemath.Point{X: 200, Y: 60}, movement.Right)

	for i := 0; i < 17; i++ {
		p.Update(hold(movement.ButtonRight))
	}
	testutil.AssertEqual(t, "collider past grid", p.WalkingCollider().X >= 256, true)

	for i := 0; i < 20; i++ {
		p.Update(hold(movement.ButtonUp))
		if p.WalkingCollider().Intersects(wall) {
			t.Fatalf("tick %d: collider %v overlaps %v", i, p.WalkingCollider(), wall)
		}
	}
	testutil.AssertEqual(t, "stopped under wall", p.WalkingCollider().Y, 60)
}

func TestAttackLastsFourteenTicks(t *testing.T) {
	p := newTestPlayer(t, newTestDungeon(t, 1), gamemath.Point{X: 100, Y: 60}, movement.Down)

	attack := Input{Attack: true}
	expFrames := []int{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 2, 3}
	for i, f := range expFrames {
		p.Update(attack)
		if !p.Attacking() {
			t.Fatalf("tick %d: attack ended early", i)
		}
		testutil.AssertEqual(t, "frame", p.Frame(), f)
	}

	p.Update(attack)
	testutil.AssertEqual(t, "attacking", p.Attacking(), false)
	testutil.AssertEqual(t, "walk frame", p.Frame(), 0)
}

func TestAttackIsEdgeTriggered(t *testing.T) {
	p := newTestPlayer(t, newTestDungeon(t, 1), gamemath.Point{X: 100, Y: 60}, movement.Down)

	attack := Input{Attack: true}
	for i := 0; i < 15; i++ {
		p.Update(attack)
	}
	testutil.AssertEqual(t, "finished", p.Attacking(), false)

	// Still held: no new attack.
	for i := 0; i < 30; i++ {
		p.Update(attack)
		testutil.AssertEqual(t, "retriggered", p.Attacking(), false)
	}

	p.Update(Input{})
	p.Update(attack)
	testutil.AssertEqual(t, "pressed again", p.Attacking(), true)
}

func TestAttackSuppressesMovement(t *testing.T) {
	p := newTestPlayer(t, newTestDungeon(t, 1), gamemath.Point{X: 100, Y: 60}, movement.Down)

	in := Input{Buttons: movement.Hold(movement.ButtonRight), Attack: true}
	p.Update(in)
	for i := 0; i < 13; i++ {
		p.Update(in)
		testutil.AssertEqual(t, "location", p.Location(), gamemath.R(100, 60, 48, 48))
		testutil.AssertEqual(t, "direction", p.Direction(), movement.Down)
	}

	// Attack over: walking resumes on the following tick.
	p.Update(in)
	testutil.AssertEqual(t, "attacking", p.Attacking(), false)
	p.Update(in)
	testutil.AssertEqual(t, "walked", p.Location().X, 104)
	testutil.AssertEqual(t, "direction", p.Direction(), movement.Right)
}

func TestWalkAnimation(t *testing.T) {
	p := newTestPlayer(t, newTestDungeon(t, 2), gamemath.Point{X: 20, Y: 60}, movement.Right)

	for i := 1; i <= 30; i++ {
		p.Update(hold(movement.ButtonRight))
		testutil.AssertEqual(t, "frame", p.Frame(), (i/6)%2)
	}
}

func TestWalkAnimationAdvancesWhenBlocked(t *testing.T) {
	// Collider already touching a wall on the right.
	wall := gamemath.R(142, 0, 16, 176)
	p := newTestPlayer(t, newTestDungeon(t, 1, wall), gamemath.Point{X: 100, Y: 60}, movement.Right)

	for i := 1; i <= 6; i++ {
		p.Update(hold(movement.ButtonRight))
	}
	testutil.AssertEqual(t, "pinned", p.Location().X, 100)
	testutil.AssertEqual(t, "frame", p.Frame(), 1)
}

func TestWalkAnimationResetsOnTurn(t *testing.T) {
	p := newTestPlayer(t, newTestDungeon(t, 1), gamemath.Point{X: 100, Y: 60}, movement.Right)

	for i := 0; i < 7; i++ {
		p.Update(hold(movement.ButtonRight))
	}
	testutil.AssertEqual(t, "frame before turn", p.Frame(), 1)

	p.Update(hold(movement.ButtonDown))
	testutil.AssertEqual(t, "frame after turn", p.Frame(), 0)
	testutil.AssertEqual(t, "direction", p.Direction(), movement.Down)
}

func TestInsetRoundTrip(t *testing.T) {
	insets := []Inset{
		testConfig.Inset,
		{},
		{Left: 1, Top: 2, Right: 3, Bottom: 4},
	}

	for _, in := range insets {
		for x := -50; x <= 50; x += 25 {
			for y := -50; y <= 50; y += 25 {
				loc := gamemath.R(x, y, 48, 48)
				c := in.ToCollider(loc)
				testutil.AssertEqual(t, "location", in.FromCollider(c), loc)
				testutil.AssertEqual(t, "collider", in.ToCollider(in.FromCollider(c)), c)
			}
		}
	}
}
