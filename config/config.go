package config

import (
	"fmt"
	"image/color"

	"github.com/pixil98/go-errors"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single ECS layer everything is drawn on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// WorldConfig contains map-to-world scaling
type WorldConfig struct {
	Scale     int    // world pixels per map pixel
	LevelsDir string // directory of .tmx files inside the embedded assets
	StartMap  string // file stem of the map to start in
}

// PlayerConfig contains all player-related configuration values. Sizes are
// in sprite-sheet pixels and get multiplied by World.Scale.
type PlayerConfig struct {
	// Movement, world pixels per tick
	WalkSpeed int

	// Dimensions
	FrameWidth  int
	FrameHeight int

	// Walking collider inset from the sprite box
	InsetLeft   int
	InsetTop    int
	InsetRight  int
	InsetBottom int

	// Animation key-frame durations in ticks
	WalkFrameTicks   []int
	AttackFrameTicks []int
}

// Validate reports every problem with the player configuration at once.
func (p PlayerConfig) Validate() error {
	el := errors.NewErrorList()

	if p.WalkSpeed <= 0 {
		el.Add(fmt.Errorf("walk speed must be positive, got %d", p.WalkSpeed))
	}
	if p.FrameWidth <= 0 || p.FrameHeight <= 0 {
		el.Add(fmt.Errorf("frame size must be positive, got %dx%d", p.FrameWidth, p.FrameHeight))
	}
	if p.InsetLeft < 0 || p.InsetTop < 0 || p.InsetRight < 0 || p.InsetBottom < 0 {
		el.Add(fmt.Errorf("insets must not be negative"))
	}
	if p.FrameWidth-p.InsetLeft-p.InsetRight <= 0 {
		el.Add(fmt.Errorf("horizontal insets leave no collider width"))
	}
	if p.FrameHeight-p.InsetTop-p.InsetBottom <= 0 {
		el.Add(fmt.Errorf("vertical insets leave no collider height"))
	}
	el.Add(validateTicks("walk", p.WalkFrameTicks))
	el.Add(validateTicks("attack", p.AttackFrameTicks))

	return el.Err()
}

func validateTicks(name string, ticks []int) error {
	if len(ticks) == 0 {
		return fmt.Errorf("%s animation has no frames", name)
	}
	for i, t := range ticks {
		if t <= 0 {
			return fmt.Errorf("%s frame %d must last at least one tick, got %d", name, i, t)
		}
	}
	return nil
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	ScrollSeconds float32 // time to scroll from one room to the next
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	Overlay  bool // Start with the F1 overlay on
	LogRooms bool // Log room changes and room freezes
}

// SpriteConfig names the sprite sheets in the embedded images directory
type SpriteConfig struct {
	PlayerSheet string
}

// Global configuration instances
var C *Config
var World WorldConfig
var Player PlayerConfig
var Camera CameraConfig
var Debug DebugConfig
var Sprites SpriteConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue      = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Cyan      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Grey      = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	HUDShadow = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

func init() {
	World = WorldConfig{
		Scale:     3,
		LevelsDir: "levels",
		StartMap:  "overworld",
	}

	// One room fills the screen: 16x11 tiles of 16px at World.Scale.
	C = &Config{
		Width:  16 * 16 * World.Scale,
		Height: 11 * 16 * World.Scale,
		TPS:    60,
	}

	Player = PlayerConfig{
		WalkSpeed: 4,

		FrameWidth:  16,
		FrameHeight: 16,

		// Feet only, so the head can overlap walls above
		InsetLeft:   2,
		InsetTop:    8,
		InsetRight:  2,
		InsetBottom: 1,

		WalkFrameTicks:   []int{6, 6},
		AttackFrameTicks: []int{4, 8, 1, 1},
	}

	Camera = CameraConfig{
		ScrollSeconds: 0.5,
	}

	Debug = DebugConfig{
		Overlay:  false,
		LogRooms: false,
	}

	Sprites = SpriteConfig{
		PlayerSheet: "images/link.png",
	}
}
