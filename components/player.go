package components

import (
	"github.com/automoto/lozo/dungeon"
	"github.com/automoto/lozo/player"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	*player.Player
	LastRoom  *dungeon.Room // room seen on the previous tick, for change logging
	WasFrozen bool          // center was outside LastRoom on the previous tick
}

var Player = donburi.NewComponentType[PlayerData]()
