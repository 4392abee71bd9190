package placeholders

import (
	"fmt"
	"path/filepath"
	"sort"

	"chosenoffset.com/alienpatrol/internal/config"
)

// GenerateAndSave writes every asset the config references, relative to root.
// Existing files are overwritten.
func GenerateAndSave(cfg *config.Config, root string) error {
	fmt.Println("Generating placeholder assets...")

	hero := cfg.Hero
	heroPath := filepath.Join(root, cfg.Assets.HeroSheet)
	if err := SavePNG(CreateHeroSheet(hero.TileSize, hero.Margin, hero.Frames), heroPath); err != nil {
		return fmt.Errorf("failed to save hero sheet: %w", err)
	}
	fmt.Printf("✓ Generated %s (%d frames @ %dpx, %dpx margin)\n",
		heroPath, hero.Frames, hero.TileSize, hero.Margin)

	names := make([]string, 0, len(cfg.Assets.Sprites))
	for name := range cfg.Assets.Sprites {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		path := filepath.Join(root, cfg.Assets.Sprites[name])
		if err := SavePNG(CreateAlienSprite(hero.TileSize), path); err != nil {
			return fmt.Errorf("failed to save sprite %q: %w", name, err)
		}
		fmt.Printf("✓ Generated %s (%dx%d pixels)\n", path, hero.TileSize, hero.TileSize)
	}

	rate := cfg.Audio.SampleRate
	musicPath := filepath.Join(root, cfg.Assets.Music)
	if err := SaveWAV(BackgroundMusic(rate), rate, musicPath); err != nil {
		return fmt.Errorf("failed to save music: %w", err)
	}
	fmt.Printf("✓ Generated %s\n", musicPath)

	soundPath := filepath.Join(root, cfg.Assets.MoveSound)
	if err := SaveWAV(MoveBlip(rate), rate, soundPath); err != nil {
		return fmt.Errorf("failed to save move sound: %w", err)
	}
	fmt.Printf("✓ Generated %s\n", soundPath)

	fmt.Println("Placeholder assets generated successfully!")
	return nil
}
