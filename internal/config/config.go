// Package config holds the tunable constants of the game.
// Defaults reproduce the shipped game; a YAML file may override any subset of them.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/alienpatrol/internal/entity"
)

// Config holds every setting the game reads at startup.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Hero    HeroConfig    `yaml:"hero"`
	Enemies []EnemyConfig `yaml:"enemies"`
	Assets  AssetConfig   `yaml:"assets"`
	Audio   AudioConfig   `yaml:"audio"`
	Effects EffectsConfig `yaml:"effects"`
}

// WindowConfig defines the logical screen and tick rate.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"` // Window size multiplier
	TPS    int    `yaml:"tps"`   // Update calls per second
}

// HeroConfig defines the player's sprite, speed and animation.
type HeroConfig struct {
	TileSize          int     `yaml:"tile_size"`          // Square tile edge in pixels
	Margin            int     `yaml:"margin"`             // Gap between frames on the sheet
	Frames            int     `yaml:"frames"`             // Frames in the walk cycle
	Speed             float64 `yaml:"speed"`              // Pixels per tick per held direction
	AnimationInterval float64 `yaml:"animation_interval"` // Seconds between frame advances
	StartX            float64 `yaml:"start_x"`
	StartY            float64 `yaml:"start_y"`
}

// EnemyConfig defines one patrolling enemy of the roster.
type EnemyConfig struct {
	Sprite    string     `yaml:"sprite"`
	StartX    float64    `yaml:"start_x"`
	StartY    float64    `yaml:"start_y"`
	Bound     [4]float64 `yaml:"bound"` // xMin, xMax, yMin, yMax
	VelocityX float64    `yaml:"velocity_x"`
	VelocityY float64    `yaml:"velocity_y"`
}

// AssetConfig lists the files loaded at startup.
type AssetConfig struct {
	HeroSheet string            `yaml:"hero_sheet"`
	Sprites   map[string]string `yaml:"sprites"` // Enemy sprite name -> image path
	Music     string            `yaml:"music"`
	MoveSound string            `yaml:"move_sound"`
}

// AudioConfig defines the mixer settings.
type AudioConfig struct {
	SampleRate  int     `yaml:"sample_rate"`
	MusicVolume float64 `yaml:"music_volume"`
	SoundVolume float64 `yaml:"sound_volume"`
	MusicOn     bool    `yaml:"music_on"` // Initial music preference
}

// EffectsConfig defines purely visual timings.
type EffectsConfig struct {
	GameOverFadeSeconds float64 `yaml:"game_over_fade_seconds"`
}

// Default logical screen size.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Default returns the shipped configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Alien Patrol",
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Scale:  1,
			TPS:    60,
		},
		Hero: HeroConfig{
			TileSize:          16,
			Margin:            1,
			Frames:            4,
			Speed:             3,
			AnimationInterval: 0.2,
			StartX:            ScreenWidth / 3,
			StartY:            ScreenHeight / 3,
		},
		Enemies: []EnemyConfig{
			{Sprite: "alien", StartX: 100, StartY: 100, Bound: [4]float64{50, 250, 50, 250}, VelocityX: 2, VelocityY: 2},
			{Sprite: "alien", StartX: 400, StartY: 300, Bound: [4]float64{350, 450, 250, 350}, VelocityX: -2, VelocityY: 2},
			{Sprite: "alien", StartX: 600, StartY: 200, Bound: [4]float64{550, 750, 100, 400}, VelocityX: 2, VelocityY: -2},
		},
		Assets: AssetConfig{
			HeroSheet: "assets/sprites/roguelikeChar_transparent.png",
			Sprites:   map[string]string{"alien": "assets/images/alien.png"},
			Music:     "assets/music/background_music.wav",
			MoveSound: "assets/sounds/move.wav",
		},
		Audio: AudioConfig{
			SampleRate:  44100,
			MusicVolume: 0.5,
			SoundVolume: 0.2,
			MusicOn:     true,
		},
		Effects: EffectsConfig{
			GameOverFadeSeconds: 0.5,
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every value is usable by the game loop.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid screen size: %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window scale must be positive, got %d", c.Window.Scale))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.Window.TPS))
	}

	if c.Hero.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("invalid tile size: %d", c.Hero.TileSize))
	}
	if c.Hero.Margin < 0 {
		errs = append(errs, fmt.Errorf("margin cannot be negative: %d", c.Hero.Margin))
	}
	if c.Hero.Frames <= 0 {
		errs = append(errs, fmt.Errorf("hero needs at least one frame, got %d", c.Hero.Frames))
	}
	if c.Hero.Speed <= 0 {
		errs = append(errs, fmt.Errorf("hero speed must be positive, got %g", c.Hero.Speed))
	}
	if c.Hero.AnimationInterval <= 0 {
		errs = append(errs, fmt.Errorf("animation interval must be positive, got %g", c.Hero.AnimationInterval))
	}

	if len(c.Enemies) != entity.RosterSize {
		errs = append(errs, fmt.Errorf("roster needs exactly %d enemies, got %d", entity.RosterSize, len(c.Enemies)))
	}
	for i, e := range c.Enemies {
		if e.Bound[0] > e.Bound[1] || e.Bound[2] > e.Bound[3] {
			errs = append(errs, fmt.Errorf("enemy %d: inverted patrol bound %v", i, e.Bound))
		}
		if _, ok := c.Assets.Sprites[e.Sprite]; !ok {
			errs = append(errs, fmt.Errorf("enemy %d: unknown sprite %q", i, e.Sprite))
		}
	}

	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample rate must be positive, got %d", c.Audio.SampleRate))
	}
	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 {
		errs = append(errs, fmt.Errorf("music volume out of range: %g", c.Audio.MusicVolume))
	}
	if c.Audio.SoundVolume < 0 || c.Audio.SoundVolume > 1 {
		errs = append(errs, fmt.Errorf("sound volume out of range: %g", c.Audio.SoundVolume))
	}

	if c.Effects.GameOverFadeSeconds < 0 {
		errs = append(errs, fmt.Errorf("fade duration cannot be negative: %g", c.Effects.GameOverFadeSeconds))
	}

	return errors.Join(errs...)
}

// Roster builds the enemy roster described by the config. Enemy tiles use
// the hero's tile size.
func (c *Config) Roster() entity.Roster {
	var r entity.Roster
	size := float64(c.Hero.TileSize)
	for i := range r {
		e := c.Enemies[i]
		r[i] = entity.NewPatrolEnemy(
			e.Sprite,
			entity.Vec2{X: e.StartX, Y: e.StartY},
			entity.Bound{XMin: e.Bound[0], XMax: e.Bound[1], YMin: e.Bound[2], YMax: e.Bound[3]},
			entity.Vec2{X: e.VelocityX, Y: e.VelocityY},
			size,
		)
	}
	return r
}

// TickSeconds is the elapsed time represented by one Update call.
func (c *Config) TickSeconds() float64 {
	return 1.0 / float64(c.Window.TPS)
}
