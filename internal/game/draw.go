package game

import (
	"chosenoffset.com/alienpatrol/internal/render"
	"chosenoffset.com/alienpatrol/internal/ui/menu"
)

// Draw renders the current screen.
func (m *Manager) Draw(screen render.Image) {
	switch m.State {
	case menu.StateMainMenu:
		m.Controls.DrawMainMenu(m.Renderer, screen, m.MusicOn)
	case menu.StatePlaying:
		screen.Fill(menu.ColorBackground)
		m.drawHero(screen)
		m.drawEnemies(screen)
	case menu.StateGameOver:
		m.Controls.DrawGameOver(m.Renderer, screen, m.fade.Alpha)
	}
}

func (m *Manager) drawHero(screen render.Image) {
	if len(m.heroFrames) == 0 {
		return
	}
	frame := m.heroFrames[m.Hero.Anim.Frame%len(m.heroFrames)]

	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	opts.GeoM.Translate(m.Hero.Pos.X, m.Hero.Pos.Y)
	screen.DrawImage(frame, opts)
}

// Enemy sprites are anchored at their center.
func (m *Manager) drawEnemies(screen render.Image) {
	for i := range m.Enemies {
		e := &m.Enemies[i]
		sprite, ok := m.sprites[e.Sprite]
		if !ok {
			continue
		}
		w, h := sprite.Size()

		opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
		opts.GeoM.Translate(e.Pos.X-float64(w)/2, e.Pos.Y-float64(h)/2)
		screen.DrawImage(sprite, opts)
	}
}
