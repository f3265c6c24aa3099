package dungeon

import (
	"fmt"

	"github.com/automoto/lozo/movement"
	"github.com/automoto/lozo/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Dungeon is a grid of rooms. Cells without a room are simply absent.
type Dungeon struct {
	name       string
	cols, rows int
	roomW      int
	roomH      int
	tileW      int
	tileH      int
	rooms      map[Location]*Room
	grid       *collisionGrid

	spawn    gamemath.Point
	hasSpawn bool
}

// New creates an empty dungeon of cols×rows rooms, each tiled with
// tileW×tileH world-pixel tiles.
func New(name string, cols, rows, tileW, tileH int) (*Dungeon, error) {
	if cols <= 0 || rows <= 0 || tileW <= 0 || tileH <= 0 {
		return nil, fmt.Errorf("dungeon %q: %dx%d rooms of %dx%d tiles: %w", name, cols, rows, tileW, tileH, ErrInvalidRoomGeometry)
	}

	roomW := RoomTilesWide * tileW
	roomH := RoomTilesHigh * tileH
	return &Dungeon{
		name:  name,
		cols:  cols,
		rows:  rows,
		roomW: roomW,
		roomH: roomH,
		tileW: tileW,
		tileH: tileH,
		rooms: make(map[Location]*Room),
		grid:  newCollisionGrid(cols*roomW, rows*roomH, tileW, tileH),
	}, nil
}

func (d *Dungeon) Name() string {
	return d.name
}

// Size returns the grid size in rooms.
func (d *Dungeon) Size() (cols, rows int) {
	return d.cols, d.rows
}

// RoomSize returns the size of one room in world pixels.
func (d *Dungeon) RoomSize() (w, h int) {
	return d.roomW, d.roomH
}

// TileSize returns the size of one tile in world pixels.
func (d *Dungeon) TileSize() (w, h int) {
	return d.tileW, d.tileH
}

// Bounds is the whole grid in world pixels, rooms or not.
func (d *Dungeon) Bounds() gamemath.Rect {
	return gamemath.R(0, 0, d.cols*d.roomW, d.rows*d.roomH)
}

// Spawn returns the player spawn point if the map defined one.
func (d *Dungeon) Spawn() (gamemath.Point, bool) {
	return d.spawn, d.hasSpawn
}

// SetSpawn records the player spawn point in world pixels.
func (d *Dungeon) SetSpawn(p gamemath.Point) {
	d.spawn = p
	d.hasSpawn = true
}

// Space is the resolv space holding every immovable as a solid object.
// Other objects may be added to it; rooms only ever report solids they own.
func (d *Dungeon) Space() *resolv.Space {
	return d.grid.space
}

// SolidsTouching checks obj, an object added to Space, against the solids
// around it and returns the immovables it overlaps. Solids it only shares an
// edge with are left out.
func (d *Dungeon) SolidsTouching(obj *resolv.Object) []gamemath.Rect {
	check := obj.Check(0, 0, TagSolid)
	if check == nil {
		return nil
	}

	self := gamemath.R(int(obj.X), int(obj.Y), int(obj.W), int(obj.H))
	var touching []gamemath.Rect
	for _, o := range check.Objects {
		data, ok := o.Data.(immovableData)
		if ok && self.Intersects(data.rect) {
			touching = append(touching, data.rect)
		}
	}
	return touching
}

// RoomCount is the number of rooms actually present.
func (d *Dungeon) RoomCount() int {
	return len(d.rooms)
}

// Room returns the room at loc, or false when the grid cell has no room.
func (d *Dungeon) Room(loc Location) (*Room, bool) {
	r, ok := d.rooms[loc]
	return r, ok
}

// Rooms returns every room in row-major order.
func (d *Dungeon) Rooms() []*Room {
	rooms := make([]*Room, 0, len(d.rooms))
	for row := 0; row < d.rows; row++ {
		for col := 0; col < d.cols; col++ {
			if r, ok := d.rooms[Location{Col: col, Row: row}]; ok {
				rooms = append(rooms, r)
			}
		}
	}
	return rooms
}

// AddRoom places a room with the given tiles at loc.
func (d *Dungeon) AddRoom(loc Location, tiles TileGrid) (*Room, error) {
	if loc.Col < 0 || loc.Col >= d.cols || loc.Row < 0 || loc.Row >= d.rows {
		return nil, fmt.Errorf("dungeon %q: room %v: %w", d.name, loc, ErrRoomOutOfBounds)
	}
	if _, ok := d.rooms[loc]; ok {
		return nil, fmt.Errorf("dungeon %q: room %v: %w", d.name, loc, ErrRoomExists)
	}

	r := &Room{
		location: loc,
		bounds:   gamemath.R(loc.Col*d.roomW, loc.Row*d.roomH, d.roomW, d.roomH),
		tiles:    tiles,
		grid:     d.grid,
	}
	d.rooms[loc] = r
	return r, nil
}

// AddImmovable gives rect to the room containing its center.
func (d *Dungeon) AddImmovable(rect gamemath.Rect) (*Room, error) {
	r, ok := d.Locate(rect.Center())
	if !ok {
		return nil, fmt.Errorf("dungeon %q: immovable %v: %w", d.name, rect, ErrOrphanObstacle)
	}
	if err := r.addImmovable(rect); err != nil {
		return nil, err
	}
	return r, nil
}

// Locate scans every room, rows first, and returns the first one containing p.
func (d *Dungeon) Locate(p gamemath.Point) (*Room, bool) {
	for row := 0; row < d.rows; row++ {
		for col := 0; col < d.cols; col++ {
			r, ok := d.rooms[Location{Col: col, Row: row}]
			if ok && r.Contains(p) {
				return r, true
			}
		}
	}
	return nil, false
}

// neighbourOrder is the order adjacent rooms are tried in by Reselect.
var neighbourOrder = [...]movement.Direction{movement.Left, movement.Up, movement.Right, movement.Down}

// Reselect returns the room containing p, looking only at prev and its four
// neighbours. If none of them contains p, prev is kept.
func (d *Dungeon) Reselect(prev *Room, p gamemath.Point) *Room {
	if prev.Contains(p) {
		return prev
	}
	for _, dir := range neighbourOrder {
		step := dir.Delta()
		r, ok := d.rooms[prev.location.Add(step.X, step.Y)]
		if ok && r.Contains(p) {
			return r
		}
	}
	return prev
}

// CurrentRoom locates p from scratch when prev is nil, or reselects from prev
// otherwise.
func (d *Dungeon) CurrentRoom(prev *Room, p gamemath.Point) (*Room, error) {
	if prev != nil {
		return d.Reselect(prev, p), nil
	}
	r, ok := d.Locate(p)
	if !ok {
		return nil, fmt.Errorf("dungeon %q: point %v: %w", d.name, p, ErrInvalidLocation)
	}
	return r, nil
}
