package game

import (
	"log"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"chosenoffset.com/alienpatrol/internal/entity"
	"chosenoffset.com/alienpatrol/internal/ui/menu"
)

// startSession puts the hero back at the start and brings in a fresh roster.
func (m *Manager) startSession() {
	m.Hero.Reset()
	m.Enemies = m.roster
	m.Collided = false
	m.fade.Reset()
}

// updatePlaying advances one tick of play: hero first, then each enemy in
// turn, each checked against the hero right after it moves.
func (m *Manager) updatePlaying() {
	if m.Collided {
		return
	}

	if m.Hero.Update(m.dt, m.heldDirections()) {
		m.Audio.PlayEffect()
	}

	if i, hit := m.Enemies.Step(m.Hero.Rect()); hit {
		m.Collided = true
		log.Printf("[Game] Hero caught by enemy %d at (%.0f, %.0f)", i, m.Hero.Pos.X, m.Hero.Pos.Y)
		m.setState(menu.StateGameOver)
	}
}

func (m *Manager) heldDirections() entity.Direction {
	held := entity.DirNone
	for _, b := range keyBindings {
		for _, key := range b.keys {
			if m.InputMgr.IsKeyPressed(key) {
				held |= b.dir
				break
			}
		}
	}
	return held
}

// bannerFade fades the game-over banner in from transparent.
type bannerFade struct {
	duration float32
	tween    *gween.Tween
	Alpha    float64
}

func newBannerFade(seconds float64) *bannerFade {
	f := &bannerFade{duration: float32(seconds)}
	f.Reset()
	return f
}

// Reset makes the banner transparent again. A zero duration shows it at once.
func (f *bannerFade) Reset() {
	if f.duration <= 0 {
		f.tween = nil
		f.Alpha = 1
		return
	}
	f.tween = gween.New(0, 1, f.duration, ease.OutSine)
	f.Alpha = 0
}

// Update advances the fade by dt seconds.
func (f *bannerFade) Update(dt float64) {
	if f.tween == nil {
		return
	}
	alpha, finished := f.tween.Update(float32(dt))
	f.Alpha = float64(alpha)
	if finished {
		f.tween = nil
	}
}
