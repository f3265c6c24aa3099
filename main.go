package main

import (
	"log"

	"github.com/automoto/lozo/config"
	"github.com/automoto/lozo/fonts"
	"github.com/automoto/lozo/scenes"
	"github.com/automoto/lozo/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(saved *systems.SavedSettings) *Game {
	return &Game{
		scene: scenes.NewDungeonScene(config.World.StartMap, saved),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	if err := config.Player.Validate(); err != nil {
		log.Fatalf("Invalid player configuration: %v", err)
	}
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowTitle("lozo")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, _ := systems.LoadSettings()
	systems.ApplySavedSettingsGlobal(saved)

	if err := ebiten.RunGame(NewGame(saved)); err != nil {
		log.Fatal(err)
	}
}
