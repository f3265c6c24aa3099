package systems

import (
	"log"

	"github.com/automoto/lozo/components"
	cfg "github.com/automoto/lozo/config"
	"github.com/automoto/lozo/movement"
	"github.com/automoto/lozo/player"
	"github.com/automoto/lozo/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var moveButtons = [...]struct {
	action cfg.ActionID
	button movement.Button
}{
	{cfg.ActionMoveLeft, movement.ButtonLeft},
	{cfg.ActionMoveRight, movement.ButtonRight},
	{cfg.ActionMoveUp, movement.ButtonUp},
	{cfg.ActionMoveDown, movement.ButtonDown},
}

// playerInput turns the polled actions into one tick of player input. Attack
// is passed as held; the player does its own edge detection.
func playerInput(input *components.InputData) player.Input {
	var in player.Input
	for _, mb := range moveButtons {
		if GetAction(input, mb.action).Pressed {
			in.Buttons = in.Buttons.Press(mb.button)
		}
	}
	in.Attack = GetAction(input, cfg.ActionAttack).Pressed
	return in
}

func UpdatePlayer(ecs *ecs.ECS) {
	in := playerInput(getOrCreateInput(ecs))

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		p.Update(in)

		if cfg.Debug.LogRooms {
			logRoom(p)
		}
		p.LastRoom = p.CurrentRoom()
	})
}

// logRoom reports room changes and the start of a freeze, where the player's
// center has left the room without entering a neighbour.
func logRoom(p *components.PlayerData) {
	room := p.CurrentRoom()
	center := p.Location().Center()

	if room != p.LastRoom {
		log.Printf("room %v -> %v", p.LastRoom.Location(), room.Location())
	}

	frozen := !room.Contains(center)
	if frozen && !p.WasFrozen {
		log.Printf("room %v kept: center %v is in no neighbouring room", room.Location(), center)
	}
	p.WasFrozen = frozen
}
