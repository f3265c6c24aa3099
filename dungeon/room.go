package dungeon

import (
	"fmt"

	"github.com/automoto/lozo/movement"
	"github.com/automoto/lozo/shared/gamemath"
	"github.com/solarlune/resolv"
)

const (
	RoomTilesWide = 16
	RoomTilesHigh = 11
)

// Location is a room's (column, row) index in the dungeon grid.
type Location struct {
	Col, Row int
}

func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.Col, l.Row)
}

// Add returns l shifted by dc columns and dr rows.
func (l Location) Add(dc, dr int) Location {
	return Location{Col: l.Col + dc, Row: l.Row + dr}
}

// TileGrid holds one tile ID per cell, indexed [row][col]. Zero is blank.
type TileGrid [RoomTilesHigh][RoomTilesWide]uint32

// Room is one screen of a dungeon. Its shape is fixed once the dungeon has
// been built.
type Room struct {
	location   Location
	bounds     gamemath.Rect
	tiles      TileGrid
	immovables []gamemath.Rect
	grid       *collisionGrid
}

// immovableData is stored in resolv.Object.Data for every immovable.
type immovableData struct {
	room *Room
	rect gamemath.Rect
}

func (r *Room) Location() Location {
	return r.location
}

// Bounds is the room's area in world pixels.
func (r *Room) Bounds() gamemath.Rect {
	return r.bounds
}

// Contains reports whether p lies inside the room's bounds.
func (r *Room) Contains(p gamemath.Point) bool {
	return r.bounds.Contains(p)
}

// Tile returns the tile ID at the given cell of the room.
func (r *Room) Tile(col, row int) uint32 {
	return r.tiles[row][col]
}

// Immovables returns a copy of the room's obstacles in world coordinates.
func (r *Room) Immovables() []gamemath.Rect {
	out := make([]gamemath.Rect, len(r.immovables))
	copy(out, r.immovables)
	return out
}

// CollidingWith returns the room's immovables that intersect collider. The
// dungeon's resolv space narrows the search to nearby cells, then each
// candidate is checked exactly. A collider reaching past the space has no
// cells to look in there, so the room's own list is scanned instead.
func (r *Room) CollidingWith(collider gamemath.Rect) []gamemath.Rect {
	if len(r.immovables) == 0 || collider.Empty() {
		return nil
	}
	if !r.grid.bounds.ContainsRect(collider) {
		return movement.RectList(r.immovables).CollidingWith(collider)
	}

	check := r.grid.query(collider)
	if check == nil {
		return nil
	}

	var colliding []gamemath.Rect
	for _, obj := range check.Objects {
		data, ok := obj.Data.(immovableData)
		if !ok || data.room != r {
			continue
		}
		if collider.Intersects(data.rect) {
			colliding = append(colliding, data.rect)
		}
	}
	return colliding
}

func (r *Room) addImmovable(rect gamemath.Rect) error {
	if !r.bounds.Contains(rect.Center()) {
		return fmt.Errorf("room %v: immovable %v: %w", r.location, rect, ErrImmovableOutside)
	}
	r.immovables = append(r.immovables, rect)
	r.grid.add(rect, immovableData{room: r, rect: rect})
	return nil
}

// collisionGrid wraps the resolv space shared by every room of a dungeon.
// The finder is a detached query object moved over each collider being
// checked; it carries no solid tag so it never reports itself.
type collisionGrid struct {
	space  *resolv.Space
	finder *resolv.Object
	bounds gamemath.Rect
}

func newCollisionGrid(width, height, cellWidth, cellHeight int) *collisionGrid {
	space := resolv.NewSpace(width, height, cellWidth, cellHeight)
	finder := resolv.NewObject(0, 0, 1, 1, TagQuery)
	space.Add(finder)
	return &collisionGrid{space: space, finder: finder, bounds: gamemath.R(0, 0, width, height)}
}

func (g *collisionGrid) add(rect gamemath.Rect, data immovableData) {
	obj := resolv.NewObject(float64(rect.X), float64(rect.Y), float64(rect.W), float64(rect.H), TagSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(rect.W), float64(rect.H)))
	obj.Data = data
	g.space.Add(obj)
}

func (g *collisionGrid) query(collider gamemath.Rect) *resolv.Collision {
	g.finder.X = float64(collider.X)
	g.finder.Y = float64(collider.Y)
	g.finder.W = float64(collider.W)
	g.finder.H = float64(collider.H)
	return g.finder.Check(0, 0, TagSolid)
}

// Resolv tags used in the dungeon space.
const (
	TagSolid  = "solid"
	TagQuery  = "query"
	TagPlayer = "Player"
)
