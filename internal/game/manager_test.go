package game

import (
	"errors"
	"fmt"
	"image"
	"testing"

	"chosenoffset.com/alienpatrol/internal/assets"
	"chosenoffset.com/alienpatrol/internal/config"
	"chosenoffset.com/alienpatrol/internal/entity"
	"chosenoffset.com/alienpatrol/internal/render"
	"chosenoffset.com/alienpatrol/internal/render/rendertest"
	"chosenoffset.com/alienpatrol/internal/ui/menu"
)

// fakeAudio records what the game asked it to play.
type fakeAudio struct {
	musicPlays  int
	musicPauses int
	effects     int
	playing     bool
}

func (a *fakeAudio) PlayMusic() {
	a.musicPlays++
	a.playing = true
}

func (a *fakeAudio) PauseMusic() {
	a.musicPauses++
	a.playing = false
}

func (a *fakeAudio) PlayEffect() { a.effects++ }

// Control centers on the default 800x600 layout.
var (
	startButton    = image.Pt(400, 305)
	toggleButton   = image.Pt(400, 365)
	menuExitButton = image.Pt(400, 425)
	mainMenuButton = image.Pt(400, 345)
	gameOverExit   = image.Pt(400, 415)
)

type testGame struct {
	m        *Manager
	input    *rendertest.Input
	audio    *fakeAudio
	renderer *rendertest.Renderer
}

func testArt() *assets.Assets {
	frames := make([]render.Image, 4)
	for i := range frames {
		frames[i] = &rendertest.Image{Rect: image.Rect(i*17, 0, i*17+16, 16), Name: fmt.Sprintf("hero%d", i)}
	}
	return &assets.Assets{
		HeroFrames: frames,
		Sprites:    map[string]render.Image{"alien": &rendertest.Image{Rect: image.Rect(0, 0, 16, 16), Name: "alien"}},
	}
}

func newTestGame(t *testing.T, cfg *config.Config) *testGame {
	t.Helper()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	g := &testGame{
		input:    rendertest.NewInput(),
		audio:    &fakeAudio{},
		renderer: &rendertest.Renderer{},
	}
	g.m = NewManager(cfg, g.renderer, g.input, g.audio, testArt())
	return g
}

// click runs one tick with a click at p.
func (g *testGame) click(p image.Point) error {
	g.input.Click(p.X, p.Y)
	defer g.input.Release()
	return g.m.Update()
}

func (g *testGame) tick(held ...render.Key) {
	for _, k := range held {
		g.input.Held[k] = true
	}
	defer func() {
		for _, k := range held {
			delete(g.input.Held, k)
		}
	}()
	if err := g.m.Update(); err != nil {
		panic(err)
	}
}

func TestNewManagerStartsOnMenu(t *testing.T) {
	g := newTestGame(t, config.Default())

	if g.m.State != menu.StateMainMenu {
		t.Errorf("Expected main menu, got %v", g.m.State)
	}
	if !g.m.MusicOn {
		t.Error("Expected music on by default")
	}
	if g.audio.musicPlays != 0 {
		t.Error("Expected no music before Start")
	}
}

func TestEndToEndScenario(t *testing.T) {
	cfg := config.Default()
	cfg.Window.TPS = 10 // dt = 0.1
	cfg.Hero.AnimationInterval = 0.2
	// Enemy 0 walks left along the hero's row and reaches it on the third
	// tick of walking right. The others patrol far away.
	cfg.Enemies[0] = config.EnemyConfig{Sprite: "alien", StartX: 304, StartY: 208, Bound: [4]float64{0, 800, 0, 600}, VelocityX: -2}
	g := newTestGame(t, cfg)

	if err := g.click(startButton); err != nil {
		t.Fatalf("Start click failed: %v", err)
	}
	if g.m.State != menu.StatePlaying {
		t.Fatalf("Expected Playing after Start, got %v", g.m.State)
	}
	if !g.audio.playing || g.audio.musicPlays != 1 {
		t.Fatalf("Expected music looping after Start, got %d plays", g.audio.musicPlays)
	}
	startX := g.m.Hero.Pos.X

	g.tick(render.KeyRight)
	g.tick(render.KeyRight)
	if g.m.State != menu.StatePlaying {
		t.Fatalf("Expected to still be playing after two ticks, got %v", g.m.State)
	}

	g.tick(render.KeyRight)

	if got := g.m.Hero.Pos.X - startX; got != 3*cfg.Hero.Speed {
		t.Errorf("Expected hero to move %g, moved %g", 3*cfg.Hero.Speed, got)
	}
	if g.m.Hero.Anim.Frame != 1 {
		t.Errorf("Expected frame 1, got %d", g.m.Hero.Anim.Frame)
	}
	if g.m.State != menu.StateGameOver || !g.m.Collided {
		t.Fatalf("Expected GameOver on the third tick, got %v (collided=%v)", g.m.State, g.m.Collided)
	}

	if err := g.click(mainMenuButton); err != nil {
		t.Fatalf("Main Menu click failed: %v", err)
	}
	if g.m.State != menu.StateMainMenu {
		t.Errorf("Expected main menu, got %v", g.m.State)
	}
	if g.audio.playing || g.audio.musicPauses != 1 {
		t.Errorf("Expected music paused, got %d pauses", g.audio.musicPauses)
	}
}

func TestStartAlwaysResetsSession(t *testing.T) {
	cfg := config.Default()
	// Put enemy 0 right on top of the hero's start so the session ends at once
	cfg.Enemies[0] = config.EnemyConfig{Sprite: "alien", StartX: 274, StartY: 208, Bound: [4]float64{0, 800, 0, 600}}
	g := newTestGame(t, cfg)

	for session := 0; session < 3; session++ {
		g.m.Hero.Pos = entity.Vec2{X: -500, Y: 900}
		g.m.Hero.Anim.Frame = 3

		if err := g.m.Apply(menu.ActionStart); err != nil {
			t.Fatalf("Start failed: %v", err)
		}

		if g.m.State != menu.StatePlaying || g.m.Collided {
			t.Fatalf("session %d: expected a fresh Playing state, got %v (collided=%v)", session, g.m.State, g.m.Collided)
		}
		if g.m.Hero.Pos != (entity.Vec2{X: cfg.Hero.StartX, Y: cfg.Hero.StartY}) {
			t.Errorf("session %d: hero not reset, at %+v", session, g.m.Hero.Pos)
		}
		if g.m.Hero.Anim.Frame != 0 || g.m.Hero.Anim.Timer != 0 {
			t.Errorf("session %d: animation not reset", session)
		}
		if g.m.Enemies != cfg.Roster() {
			t.Errorf("session %d: roster not recreated", session)
		}
		if len(g.m.Enemies) != 3 {
			t.Errorf("session %d: expected 3 enemies, got %d", session, len(g.m.Enemies))
		}

		g.tick()
		if g.m.State != menu.StateGameOver {
			t.Fatalf("session %d: expected immediate game over, got %v", session, g.m.State)
		}
		if err := g.click(mainMenuButton); err != nil {
			t.Fatalf("Main Menu click failed: %v", err)
		}
	}
}

func TestToggleMusic(t *testing.T) {
	g := newTestGame(t, config.Default())

	if err := g.click(toggleButton); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if g.m.MusicOn || g.audio.musicPauses != 1 {
		t.Errorf("Expected music off and paused, got on=%v pauses=%d", g.m.MusicOn, g.audio.musicPauses)
	}
	if g.m.State != menu.StateMainMenu {
		t.Errorf("Toggle must stay on the menu, got %v", g.m.State)
	}

	// Starting with music off keeps it silent
	if err := g.click(startButton); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if g.audio.musicPlays != 0 {
		t.Errorf("Expected no music with the preference off, got %d plays", g.audio.musicPlays)
	}

	// The preference survives the round trip through a session
	g.m.Apply(menu.ActionMainMenu)
	if g.m.MusicOn {
		t.Error("Expected music preference to persist")
	}

	if err := g.click(toggleButton); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !g.m.MusicOn || g.audio.musicPlays != 1 {
		t.Errorf("Expected music on and playing, got on=%v plays=%d", g.m.MusicOn, g.audio.musicPlays)
	}
}

func TestExitTerminates(t *testing.T) {
	g := newTestGame(t, config.Default())

	if err := g.click(menuExitButton); !errors.Is(err, render.ErrTerminated) {
		t.Errorf("Expected ErrTerminated from the menu, got %v", err)
	}

	g.m.State = menu.StateGameOver
	if err := g.click(gameOverExit); !errors.Is(err, render.ErrTerminated) {
		t.Errorf("Expected ErrTerminated from game over, got %v", err)
	}
}

func TestClicksIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t, config.Default())
	g.m.Apply(menu.ActionStart)

	for _, p := range []image.Point{startButton, toggleButton, menuExitButton, mainMenuButton} {
		if err := g.click(p); err != nil {
			t.Fatalf("Click at %v returned %v", p, err)
		}
	}
	if g.m.State != menu.StatePlaying || !g.m.MusicOn {
		t.Errorf("Expected clicks to do nothing while playing, got %v (music=%v)", g.m.State, g.m.MusicOn)
	}
}

func TestMoveSoundAndIdleFrame(t *testing.T) {
	g := newTestGame(t, config.Default())
	g.m.Apply(menu.ActionStart)

	for i := 0; i < 20; i++ {
		g.tick(render.KeyD)
	}
	if g.audio.effects != 20 {
		t.Errorf("Expected one move sound per moving tick, got %d", g.audio.effects)
	}
	if g.m.Hero.Anim.Frame == 0 {
		t.Error("Expected walking to advance the animation")
	}

	g.tick()
	if g.audio.effects != 20 {
		t.Errorf("Expected no sound while idle, got %d", g.audio.effects)
	}
	if g.m.Hero.Anim.Frame != 0 {
		t.Errorf("Expected rest frame while idle, got %d", g.m.Hero.Anim.Frame)
	}
}

func TestHeldDirections(t *testing.T) {
	g := newTestGame(t, config.Default())

	tests := []struct {
		keys []render.Key
		want entity.Direction
	}{
		{nil, entity.DirNone},
		{[]render.Key{render.KeyLeft}, entity.DirLeft},
		{[]render.Key{render.KeyA}, entity.DirLeft},
		{[]render.Key{render.KeyUp, render.KeyRight}, entity.DirUp | entity.DirRight},
		{[]render.Key{render.KeyS, render.KeyDown}, entity.DirDown},
	}

	for _, tt := range tests {
		g.input.Held = make(map[render.Key]bool)
		for _, k := range tt.keys {
			g.input.Held[k] = true
		}
		if got := g.m.heldDirections(); got != tt.want {
			t.Errorf("keys %v: got %b, want %b", tt.keys, got, tt.want)
		}
	}
}

func TestGameOverFreezesArena(t *testing.T) {
	cfg := config.Default()
	cfg.Enemies[0] = config.EnemyConfig{Sprite: "alien", StartX: 274, StartY: 208, Bound: [4]float64{0, 800, 0, 600}}
	g := newTestGame(t, cfg)
	g.m.Apply(menu.ActionStart)
	g.tick()

	hero := g.m.Hero.Pos
	enemies := g.m.Enemies
	for i := 0; i < 10; i++ {
		g.tick(render.KeyRight)
	}
	if g.m.Hero.Pos != hero || g.m.Enemies != enemies {
		t.Error("Expected nothing to move after game over")
	}
	if g.audio.effects != 0 {
		t.Errorf("Expected no move sounds after game over, got %d", g.audio.effects)
	}
}

func TestGameOverBannerFadesIn(t *testing.T) {
	cfg := config.Default()
	cfg.Enemies[0] = config.EnemyConfig{Sprite: "alien", StartX: 274, StartY: 208, Bound: [4]float64{0, 800, 0, 600}}
	g := newTestGame(t, cfg)
	g.m.Apply(menu.ActionStart)
	g.tick()

	if g.m.fade.Alpha != 0 {
		t.Fatalf("Expected transparent banner on the collision tick, got %g", g.m.fade.Alpha)
	}

	g.tick()
	if a := g.m.fade.Alpha; a <= 0 || a >= 1 {
		t.Errorf("Expected partial alpha after one tick, got %g", a)
	}

	// 0.5s at 60 TPS is 30 ticks; allow for float32 accumulation
	for i := 0; i < 35; i++ {
		g.tick()
	}
	if g.m.fade.Alpha != 1 {
		t.Errorf("Expected opaque banner after the fade, got %g", g.m.fade.Alpha)
	}

	// A new session starts transparent again
	g.click(mainMenuButton)
	g.m.Apply(menu.ActionStart)
	if g.m.fade.Alpha != 0 {
		t.Errorf("Expected fade reset on start, got %g", g.m.fade.Alpha)
	}
}

func TestZeroFadeShowsBannerAtOnce(t *testing.T) {
	cfg := config.Default()
	cfg.Effects.GameOverFadeSeconds = 0
	g := newTestGame(t, cfg)

	g.m.Apply(menu.ActionStart)
	if g.m.fade.Alpha != 1 {
		t.Errorf("Expected opaque banner without a fade, got %g", g.m.fade.Alpha)
	}
}
