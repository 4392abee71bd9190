// Package menu lays out the clickable controls of the main menu and the
// game-over screen, maps clicks to actions and draws both screens.
package menu

import (
	"image/color"

	"chosenoffset.com/alienpatrol/internal/entity"
	"chosenoffset.com/alienpatrol/internal/render"
)

// GameState represents the current screen of the game.
type GameState int

const (
	StateMainMenu GameState = iota
	StatePlaying
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Action is what a click asks the game to do.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionToggleMusic
	ActionExit
	ActionMainMenu
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "Start"
	case ActionToggleMusic:
		return "ToggleMusic"
	case ActionExit:
		return "Exit"
	case ActionMainMenu:
		return "MainMenu"
	default:
		return "None"
	}
}

// Text sizes relative to the 16px base font.
const (
	TitleScale = 3.75
	LabelScale = 2.5
)

var (
	ColorBackground = color.RGBA{0, 0, 0, 255}
	ColorText       = color.RGBA{255, 255, 255, 255}
	ColorGreen      = color.RGBA{0, 255, 0, 255}
	ColorBlue       = color.RGBA{0, 0, 255, 255}
	ColorGray       = color.RGBA{190, 190, 190, 255}
	ColorRed        = color.RGBA{255, 0, 0, 255}
)

// Button is a filled rectangle with a centered label.
type Button struct {
	Rect   entity.Rect
	Label  string
	Color  color.RGBA
	Action Action
}

// Layout holds every control for a given screen size.
type Layout struct {
	Width, Height int

	Start        Button
	Toggle       Button // Color follows the music preference when drawn
	MenuExit     Button
	MainMenu     Button
	GameOverExit Button
}

// NewLayout positions the controls around the center of a width x height screen.
func NewLayout(width, height int) *Layout {
	cx := float64(width / 2)
	cy := float64(height / 2)

	return &Layout{
		Width:  width,
		Height: height,
		Start: Button{
			Rect:   entity.Rect{X: cx - 100, Y: cy - 20, W: 200, H: 50},
			Label:  "Start Game",
			Color:  ColorGreen,
			Action: ActionStart,
		},
		Toggle: Button{
			Rect:   entity.Rect{X: cx - 200, Y: cy + 40, W: 400, H: 50},
			Label:  "Toggle Music/Sound",
			Color:  ColorBlue,
			Action: ActionToggleMusic,
		},
		MenuExit: Button{
			Rect:   entity.Rect{X: cx - 100, Y: cy + 100, W: 200, H: 50},
			Label:  "Exit",
			Color:  ColorRed,
			Action: ActionExit,
		},
		MainMenu: Button{
			Rect:   entity.Rect{X: cx - 100, Y: cy + 20, W: 200, H: 50},
			Label:  "Main Menu",
			Color:  ColorGreen,
			Action: ActionMainMenu,
		},
		GameOverExit: Button{
			Rect:   entity.Rect{X: cx - 100, Y: cy + 90, W: 200, H: 50},
			Label:  "Exit",
			Color:  ColorRed,
			Action: ActionExit,
		},
	}
}

// Buttons returns the controls visible in state, highest priority first.
func (l *Layout) Buttons(state GameState) []Button {
	switch state {
	case StateMainMenu:
		return []Button{l.Start, l.Toggle, l.MenuExit}
	case StateGameOver:
		return []Button{l.MainMenu, l.GameOverExit}
	default:
		return nil
	}
}

// Dispatch returns the action of the first visible control containing the
// point, or ActionNone. It has no side effects.
func (l *Layout) Dispatch(state GameState, x, y int) Action {
	for _, b := range l.Buttons(state) {
		if b.Rect.Contains(float64(x), float64(y)) {
			return b.Action
		}
	}
	return ActionNone
}

// DrawMainMenu renders the title and the three menu buttons.
func (l *Layout) DrawMainMenu(r render.Renderer, screen render.Image, musicOn bool) {
	screen.Fill(ColorBackground)
	drawCentered(r, screen, "MAIN MENU", l.Width/2, l.Height/4, ColorText, TitleScale)

	toggle := l.Toggle
	if !musicOn {
		toggle.Color = ColorGray
	}

	drawButton(r, screen, l.Start)
	drawButton(r, screen, toggle)
	drawButton(r, screen, l.MenuExit)
}

// DrawGameOver renders the banner with the given opacity and the two buttons.
func (l *Layout) DrawGameOver(r render.Renderer, screen render.Image, bannerAlpha float64) {
	screen.Fill(ColorBackground)

	banner := color.NRGBA{R: ColorRed.R, G: ColorRed.G, B: ColorRed.B, A: uint8(clamp01(bannerAlpha) * 255)}
	drawCentered(r, screen, "Game Over", l.Width/2, l.Height/2-60, banner, TitleScale)

	drawButton(r, screen, l.MainMenu)
	drawButton(r, screen, l.GameOverExit)
}

func drawButton(r render.Renderer, screen render.Image, b Button) {
	rect := b.Rect
	r.FillRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), b.Color)
	cx := int(rect.X + rect.W/2)
	cy := int(rect.Y + rect.H/2)
	drawCentered(r, screen, b.Label, cx, cy, ColorText, LabelScale)
}

func drawCentered(r render.Renderer, screen render.Image, s string, cx, cy int, clr color.Color, scale float64) {
	w, h := r.MeasureText(s, scale)
	r.DrawText(screen, s, cx-w/2, cy-h/2, clr, scale)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
