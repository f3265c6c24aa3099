package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/lozo/config"
	"github.com/automoto/lozo/components"
	"github.com/automoto/lozo/systems"
	"github.com/automoto/lozo/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DungeonScene runs one dungeon map: the player walking its rooms with the
// camera locked to the current room.
type DungeonScene struct {
	ecs     *ecs.ECS
	mapName string
	saved   *systems.SavedSettings
	once    sync.Once
}

// NewDungeonScene creates a scene for the named map. saved may be nil.
func NewDungeonScene(mapName string, saved *systems.SavedSettings) *DungeonScene {
	return &DungeonScene{mapName: mapName, saved: saved}
}

func (ds *DungeonScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()
}

func (ds *DungeonScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DungeonScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateSettings)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawLevelTop)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ds.ecs = ecs

	level, err := factory.CreateLevel(ds.ecs, ds.mapName)
	if err != nil {
		panic(fmt.Sprintf("failed to load map %q: %v", ds.mapName, err))
	}
	current := components.Level.Get(level).CurrentLevel

	playerEntry, err := factory.CreatePlayer(ds.ecs, current)
	if err != nil {
		panic(fmt.Sprintf("failed to place player in %q: %v", current.Name, err))
	}
	room := components.Player.Get(playerEntry).CurrentRoom()

	factory.CreateCamera(ds.ecs, room)
	systems.ApplySavedSettings(ds.ecs, ds.saved)

	log.Printf("map %s: %d rooms, player in room %v", current.Name, current.Dungeon.RoomCount(), room.Location())
}
