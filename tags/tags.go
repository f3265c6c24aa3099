package tags

import (
	"github.com/automoto/lozo/dungeon"
	"github.com/yohamta/donburi"
)

var (
	Player = donburi.NewTag().SetName("Player")
)

// Resolv tags for the dungeon's collision space
const (
	ResolvSolid  = dungeon.TagSolid
	ResolvPlayer = dungeon.TagPlayer
)
