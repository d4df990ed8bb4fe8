package main

import (
	"log"
	"os"

	"chosenoffset.com/occlusion/internal/config"
	"chosenoffset.com/occlusion/internal/game"
	"chosenoffset.com/occlusion/internal/render"
	ebitenrender "chosenoffset.com/occlusion/internal/render/ebiten"
)

const defaultConfigPath = "occlusion.json"

func main() {
	configPath := os.Getenv("OCCLUSION_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g, err := game.New(cfg, renderer, render.NewInputEvents(inputMgr), nil, log.Default())
	if err != nil {
		log.Printf("Failed to start: %v", err)
		os.Exit(1)
	}
	log.Printf("Rays rendering: %d", g.Controller.Count())

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetTPS(cfg.Window.TPS)

	log.Println("Starting visualizer...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
