package main

import (
	"flag"
	"log"

	"chosenoffset.com/alienpatrol/internal/assets"
	"chosenoffset.com/alienpatrol/internal/audio"
	"chosenoffset.com/alienpatrol/internal/config"
	"chosenoffset.com/alienpatrol/internal/game"
	ebitenrender "chosenoffset.com/alienpatrol/internal/render/ebiten"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (defaults are used when empty)")
	scale := flag.Int("scale", 0, "Window size multiplier (overrides the config when set)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *scale > 0 {
		cfg.Window.Scale = *scale
	}

	// Initialize the renderer backend (ebiten)
	renderer, err := ebitenrender.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	mixer := audio.NewMixer(cfg.Audio.SampleRate, cfg.Audio.MusicVolume, cfg.Audio.SoundVolume)

	log.Println("Loading assets...")
	art, err := assets.Load(cfg, loader, mixer)
	if err != nil {
		log.Fatalf("Failed to load assets (run genplaceholders to create stand-ins): %v", err)
	}

	gameManager := game.NewManager(cfg, renderer, inputMgr, mixer, art)

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width*cfg.Window.Scale, cfg.Window.Height*cfg.Window.Scale)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.Window.TPS)

	log.Println("Starting game...")
	if err := engine.RunGame(gameManager); err != nil {
		log.Fatal(err)
	}
}
