package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/lozo/components"
	cfg "github.com/automoto/lozo/config"
	"github.com/automoto/lozo/fonts"
	"github.com/automoto/lozo/shared/gamemath"
	"github.com/automoto/lozo/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := cameraOffset(camera, width, height)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	d := level.CurrentLevel.Dungeon

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	p := components.Player.Get(playerEntry)
	room := p.CurrentRoom()

	view := gamemath.R(-int(camX), -int(camY), width, height)
	for _, o := range d.Space().Objects() {
		r := objectRect(o)
		if !view.Intersects(r) {
			continue
		}

		c := cfg.Cyan // the room query area
		if o.HasTags(tags.ResolvSolid) {
			c = cfg.Grey
		} else if o.HasTags(tags.ResolvPlayer) {
			c = cfg.Blue
		}
		strokeRect(screen, r.Offset(int(camX), int(camY)), c)
	}

	// Solids the player's object is touching, as the space reports them
	obj := components.Object.Get(playerEntry)
	touching := d.SolidsTouching(obj.Object)
	for _, r := range touching {
		strokeRect(screen, r.Offset(int(camX), int(camY)), cfg.Red)
	}

	strokeRect(screen, p.Location().Offset(int(camX), int(camY)), cfg.Yellow)

	center := p.Location().Center()
	vector.FillRect(screen, float32(float64(center.X)+camX)-1, float32(float64(center.Y)+camY)-1, 3, 3, cfg.Red, false)

	cols, rows := d.Size()
	roomW, roomH := d.RoomSize()
	tileW, tileH := d.TileSize()
	lines := []string{
		fmt.Sprintf("TPS %.1f", ebiten.ActualTPS()),
		fmt.Sprintf("map %s (%d of %d)", d.Name(), mapIndex(level.Names, d.Name())+1, len(level.Names)),
		fmt.Sprintf("grid %dx%d rooms of %dx%d, tiles %dx%d", cols, rows, roomW, roomH, tileW, tileH),
		fmt.Sprintf("room %v", room.Location()),
		fmt.Sprintf("facing %v", p.Direction()),
		fmt.Sprintf("location %v", p.Location()),
		fmt.Sprintf("touching %d", len(touching)),
	}
	if p.Attacking() {
		lines = append(lines, fmt.Sprintf("attack frame %d", p.Frame()))
	}

	face := fonts.Mono.Get()
	lineHeight := face.Metrics().Height.Ceil()
	for i, line := range lines {
		y := 4 + lineHeight*(i+1)
		text.Draw(screen, line, face, 5, y+1, cfg.HUDShadow)
		text.Draw(screen, line, face, 4, y, cfg.White)
	}
}

func objectRect(o *resolv.Object) gamemath.Rect {
	return gamemath.R(int(o.X), int(o.Y), int(o.W), int(o.H))
}

func mapIndex(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

// strokeRect draws a one pixel outline of r in screen coordinates.
func strokeRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
