// Package assets loads every image and sound the game needs at startup.
// Loading fails fast: the first missing or unreadable file aborts startup.
package assets

import (
	"fmt"
	"log"
	"sort"

	"chosenoffset.com/alienpatrol/internal/config"
	"chosenoffset.com/alienpatrol/internal/render"
	"chosenoffset.com/alienpatrol/internal/world/atlas"
)

// SoundLoader decodes audio files into a player.
type SoundLoader interface {
	LoadMusic(path string) error
	LoadEffect(path string) error
}

// Assets holds the loaded images.
type Assets struct {
	HeroFrames []render.Image          // Walk cycle, frame 0 is the rest pose
	Sprites    map[string]render.Image // Enemy sprites by name
}

// Load reads the hero sheet, the enemy sprites, the music and the move sound.
func Load(cfg *config.Config, loader render.ResourceLoader, sounds SoundLoader) (*Assets, error) {
	sheetImg, err := loader.LoadImage(cfg.Assets.HeroSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to load hero sheet %s: %w", cfg.Assets.HeroSheet, err)
	}
	sheet, err := atlas.NewSheet(sheetImg, cfg.Hero.TileSize, cfg.Hero.TileSize, cfg.Hero.Margin)
	if err != nil {
		return nil, fmt.Errorf("invalid hero sheet %s: %w", cfg.Assets.HeroSheet, err)
	}
	frames, err := sheet.Strip(0, cfg.Hero.Frames)
	if err != nil {
		return nil, fmt.Errorf("failed to slice hero sheet %s: %w", cfg.Assets.HeroSheet, err)
	}
	log.Printf("[Assets] Loaded hero sheet %s (%d frames)", cfg.Assets.HeroSheet, len(frames))

	names := make([]string, 0, len(cfg.Assets.Sprites))
	for name := range cfg.Assets.Sprites {
		names = append(names, name)
	}
	sort.Strings(names)

	sprites := make(map[string]render.Image, len(names))
	for _, name := range names {
		path := cfg.Assets.Sprites[name]
		img, err := loader.LoadImage(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load sprite %q from %s: %w", name, path, err)
		}
		sprites[name] = img
		log.Printf("[Assets] Loaded sprite %q from %s", name, path)
	}

	if err := sounds.LoadMusic(cfg.Assets.Music); err != nil {
		return nil, fmt.Errorf("failed to load music %s: %w", cfg.Assets.Music, err)
	}
	if err := sounds.LoadEffect(cfg.Assets.MoveSound); err != nil {
		return nil, fmt.Errorf("failed to load move sound %s: %w", cfg.Assets.MoveSound, err)
	}

	return &Assets{HeroFrames: frames, Sprites: sprites}, nil
}
