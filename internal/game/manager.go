package game

import (
	"log"

	"chosenoffset.com/alienpatrol/internal/assets"
	"chosenoffset.com/alienpatrol/internal/config"
	"chosenoffset.com/alienpatrol/internal/entity"
	"chosenoffset.com/alienpatrol/internal/render"
	"chosenoffset.com/alienpatrol/internal/ui/menu"
)

// Manager owns the whole game: the current screen, the session state and
// the collaborators it draws and plays sound through. All of it is mutated
// from Update on the engine's goroutine.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	State        menu.GameState
	Controls     *menu.Layout
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Audio        Audio

	Hero     *entity.Hero
	Enemies  entity.Roster
	MusicOn  bool // Survives screen changes, only toggled on the main menu
	Collided bool // Set by the first hit of a session

	heroFrames []render.Image
	sprites    map[string]render.Image
	roster     entity.Roster // Template copied into Enemies on every start
	dt         float64
	fade       *bannerFade
}

// NewManager creates a game sitting on the main menu.
func NewManager(cfg *config.Config, r render.Renderer, input render.InputManager, audio Audio, art *assets.Assets) *Manager {
	hero := entity.NewHero(
		entity.Vec2{X: cfg.Hero.StartX, Y: cfg.Hero.StartY},
		float64(cfg.Hero.TileSize),
		cfg.Hero.Speed,
		cfg.Hero.Frames,
		cfg.Hero.AnimationInterval,
	)

	roster := cfg.Roster()

	return &Manager{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		State:        menu.StateMainMenu,
		Controls:     menu.NewLayout(cfg.Window.Width, cfg.Window.Height),
		Renderer:     r,
		InputMgr:     input,
		Audio:        audio,
		Hero:         hero,
		Enemies:      roster,
		MusicOn:      cfg.Audio.MusicOn,
		heroFrames:   art.HeroFrames,
		sprites:      art.Sprites,
		roster:       roster,
		dt:           cfg.TickSeconds(),
		fade:         newBannerFade(cfg.Effects.GameOverFadeSeconds),
	}
}

// Update handles a click first, then advances the current screen by one tick.
// The only error it returns is render.ErrTerminated, after an Exit click.
func (m *Manager) Update() error {
	if m.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		x, y := m.InputMgr.GetCursorPosition()
		if err := m.Apply(m.Controls.Dispatch(m.State, x, y)); err != nil {
			return err
		}
	}

	switch m.State {
	case menu.StatePlaying:
		m.updatePlaying()
	case menu.StateGameOver:
		m.fade.Update(m.dt)
	}
	return nil
}

// Apply carries out the side effects of a menu action.
func (m *Manager) Apply(action menu.Action) error {
	switch action {
	case menu.ActionStart:
		m.startSession()
		if m.MusicOn {
			m.Audio.PlayMusic()
		}
		m.setState(menu.StatePlaying)
	case menu.ActionToggleMusic:
		m.MusicOn = !m.MusicOn
		if m.MusicOn {
			m.Audio.PlayMusic()
		} else {
			m.Audio.PauseMusic()
		}
		log.Printf("[Game] Music on: %v", m.MusicOn)
	case menu.ActionMainMenu:
		m.Audio.PauseMusic()
		m.setState(menu.StateMainMenu)
	case menu.ActionExit:
		log.Println("[Game] Exit requested")
		return render.ErrTerminated
	}
	return nil
}

// Layout returns the fixed logical screen size.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ScreenWidth, m.ScreenHeight
}

func (m *Manager) setState(state menu.GameState) {
	if m.State != state {
		log.Printf("[Game] %v -> %v", m.State, state)
	}
	m.State = state
}
