package dungeon

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/lozo/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX maps.
const (
	LayerBottom    = "Bottom"
	LayerTop       = "Top"
	GroupCollision = "Collision"
	GroupSpawn     = "Spawn"
)

type LoadOptions struct {
	// Name overrides the dungeon name. Load defaults it to the file stem.
	Name string
	// Scale is world pixels per map pixel. Zero means 1.
	Scale int
}

func (o LoadOptions) scale() int {
	if o.Scale <= 0 {
		return 1
	}
	return o.Scale
}

// Load parses a TMX file from fsys and builds its dungeon. The parsed map is
// returned too so the caller can render its tile layers. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string, opts LoadOptions) (*Dungeon, *tiled.Map, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if opts.Name == "" {
		opts.Name = strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")
	}
	d, err := FromMap(levelMap, opts)
	if err != nil {
		return nil, nil, err
	}
	return d, levelMap, nil
}

// MapNames lists the stems of the .tmx files in dir within fsys, sorted.
func MapNames(fsys fs.FS, dir string) ([]string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = strings.TrimSuffix(filepath.Base(m), ".tmx")
	}
	sort.Strings(names)
	return names, nil
}

// FromMap builds a dungeon from an already parsed map. Every 16x11 block of
// the Bottom layer holding at least one tile becomes a room, and every object
// of the Collision group becomes an immovable of the room holding its center.
func FromMap(m *tiled.Map, opts LoadOptions) (*Dungeon, error) {
	scale := opts.scale()

	if m.Width <= 0 || m.Height <= 0 || m.Width%RoomTilesWide != 0 || m.Height%RoomTilesHigh != 0 {
		return nil, fmt.Errorf("map %q is %dx%d tiles: %w", opts.Name, m.Width, m.Height, ErrMapDimensions)
	}

	bottom := findLayer(m, LayerBottom)
	if bottom == nil {
		return nil, fmt.Errorf("map %q: layer %s: %w", opts.Name, LayerBottom, ErrMissingLayer)
	}
	if len(bottom.Tiles) != m.Width*m.Height {
		return nil, fmt.Errorf("map %q: layer %s has %d tiles, want %d: %w",
			opts.Name, LayerBottom, len(bottom.Tiles), m.Width*m.Height, ErrMapDimensions)
	}

	collision := findGroup(m, GroupCollision)
	if collision == nil {
		return nil, fmt.Errorf("map %q: object group %s: %w", opts.Name, GroupCollision, ErrMissingLayer)
	}

	d, err := New(opts.Name, m.Width/RoomTilesWide, m.Height/RoomTilesHigh, m.TileWidth*scale, m.TileHeight*scale)
	if err != nil {
		return nil, err
	}

	for row := 0; row < d.rows; row++ {
		for col := 0; col < d.cols; col++ {
			tiles, filled := roomTiles(m, bottom, col, row)
			if !filled {
				continue
			}
			if _, err := d.AddRoom(Location{Col: col, Row: row}, tiles); err != nil {
				return nil, err
			}
		}
	}

	for _, o := range collision.Objects {
		rect := gamemath.R(scaled(o.X, scale), scaled(o.Y, scale), scaled(o.Width, scale), scaled(o.Height, scale))
		if _, err := d.AddImmovable(rect); err != nil {
			return nil, fmt.Errorf("map %q: collision object %d: %w", opts.Name, o.ID, err)
		}
	}

	if spawn := findGroup(m, GroupSpawn); spawn != nil && len(spawn.Objects) > 0 {
		o := spawn.Objects[0]
		d.SetSpawn(gamemath.Point{X: scaled(o.X, scale), Y: scaled(o.Y, scale)})
	}

	return d, nil
}

// roomTiles copies one room's block out of layer. The second result reports
// whether the block held any tile at all.
func roomTiles(m *tiled.Map, layer *tiled.Layer, col, row int) (TileGrid, bool) {
	var grid TileGrid
	filled := false
	for y := 0; y < RoomTilesHigh; y++ {
		for x := 0; x < RoomTilesWide; x++ {
			tx := col*RoomTilesWide + x
			ty := row*RoomTilesHigh + y
			tile := layer.Tiles[ty*m.Width+tx]
			if tile == nil || tile.IsNil() {
				continue
			}
			grid[y][x] = tile.Tileset.FirstGID + tile.ID
			filled = true
		}
	}
	return grid, filled
}

func findLayer(m *tiled.Map, name string) *tiled.Layer {
	for _, layer := range m.Layers {
		if layer.Name == name {
			return layer
		}
	}
	return nil
}

func findGroup(m *tiled.Map, name string) *tiled.ObjectGroup {
	for _, og := range m.ObjectGroups {
		if og.Name == name {
			return og
		}
	}
	return nil
}

func scaled(v float64, scale int) int {
	return int(math.Round(v * float64(scale)))
}
