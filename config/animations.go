package config

import (
	"image"

	"github.com/automoto/lozo/movement"
)

// SpriteSet is the source rects of one direction's walk and attack frames.
type SpriteSet struct {
	Walk   []image.Rectangle
	Attack []image.Rectangle
}

// Frame returns the rect for key frame i of the walk or attack cycle.
func (s SpriteSet) Frame(attacking bool, i int) image.Rectangle {
	frames := s.Walk
	if attacking {
		frames = s.Attack
	}
	if len(frames) == 0 {
		return image.Rectangle{}
	}
	return frames[i%len(frames)]
}

// playerFrame is the rect of the 16x16 cell at (col, row) of the player sheet.
func playerFrame(col, row int) image.Rectangle {
	return image.Rect(col*16, row*16, col*16+16, row*16+16)
}

func playerRow(row int) SpriteSet {
	return SpriteSet{
		Walk:   []image.Rectangle{playerFrame(0, row), playerFrame(1, row)},
		Attack: []image.Rectangle{playerFrame(2, row), playerFrame(3, row), playerFrame(4, row), playerFrame(5, row)},
	}
}

// PlayerSprites maps a facing direction to its row of the player sheet.
var PlayerSprites = map[movement.Direction]SpriteSet{
	movement.Down:  playerRow(0),
	movement.Up:    playerRow(1),
	movement.Left:  playerRow(2),
	movement.Right: playerRow(3),
}
