// Package render is the boundary between the game and the graphics engine.
// The game draws, reads input and runs its loop only through these
// interfaces, so it can be driven by fakes in tests.
package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrTerminated is returned from Game.Update to end the run loop cleanly.
// Engines treat it as a normal exit, not a failure.
var ErrTerminated = errors.New("render: game terminated")

// Renderer draws shapes and text onto images.
type Renderer interface {
	FillRect(dst Image, x, y, width, height float32, clr color.Color)

	// DrawText draws with the top-left corner of the text box at (x, y).
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image is a surface that can be drawn to or drawn from.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)
	SubImage(r image.Rectangle) Image
	Fill(clr color.Color)
	DrawImage(src Image, opts *DrawImageOptions)
}

// DrawImageOptions positions a source image on its destination.
type DrawImageOptions struct {
	GeoM GeoM
}

// GeoM places an image on its destination.
type GeoM interface {
	Translate(tx, ty float64)
}

// NewGeoM creates an identity GeoM. The backend in use sets it.
var NewGeoM func() GeoM

// InputManager polls the keyboard and mouse.
type InputManager interface {
	IsKeyPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Key is a keyboard key.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// MouseButton is a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
)

// ResourceLoader loads images from disk.
type ResourceLoader interface {
	LoadImage(path string) (Image, error)
}

// Game is what the engine runs.
type Game interface {
	// Update advances one tick. Returning ErrTerminated stops the engine
	// without an error.
	Update() error
	Draw(screen Image)

	// Layout returns the logical screen size for the given window size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine owns the window and the run loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)
	SetTPS(tps int)

	// RunGame blocks until the game ends.
	RunGame(game Game) error
}
