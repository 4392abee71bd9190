// Package rendertest provides in-memory implementations of the render
// interfaces for tests. They record what was drawn instead of drawing it.
package rendertest

import (
	"errors"
	"image"
	"image/color"

	"chosenoffset.com/alienpatrol/internal/render"
)

var (
	_ render.Image          = (*Image)(nil)
	_ render.GeoM           = (*GeoM)(nil)
	_ render.Renderer       = (*Renderer)(nil)
	_ render.InputManager   = (*Input)(nil)
	_ render.ResourceLoader = (*Loader)(nil)
)

func init() {
	if render.NewGeoM == nil {
		render.NewGeoM = func() render.GeoM { return &GeoM{} }
	}
}

// Image is a fake render.Image backed only by its bounds.
type Image struct {
	Rect  image.Rectangle
	Name  string // Optional label, copied to sub-images
	Fills []color.Color
	Draws []DrawCall
}

// DrawCall records one DrawImage call.
type DrawCall struct {
	Src    *Image
	TX, TY float64
}

// NewImage creates a fake image of the given size.
func NewImage(width, height int) *Image {
	return &Image{Rect: image.Rect(0, 0, width, height)}
}

func (i *Image) Bounds() image.Rectangle { return i.Rect }

func (i *Image) Size() (width, height int) { return i.Rect.Dx(), i.Rect.Dy() }

// SubImage returns the intersection with r, like ebiten does.
func (i *Image) SubImage(r image.Rectangle) render.Image {
	return &Image{Rect: r.Intersect(i.Rect), Name: i.Name}
}

func (i *Image) Fill(clr color.Color) { i.Fills = append(i.Fills, clr) }

func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	call := DrawCall{Src: src.(*Image)}
	if opts != nil && opts.GeoM != nil {
		if g, ok := opts.GeoM.(*GeoM); ok {
			call.TX, call.TY = g.TX, g.TY
		}
	}
	i.Draws = append(i.Draws, call)
}

// GeoM accumulates translations.
type GeoM struct {
	TX, TY float64
}

func (g *GeoM) Translate(tx, ty float64) {
	g.TX += tx
	g.TY += ty
}

// Renderer records rectangles and text.
type Renderer struct {
	Rects []RectCall
	Texts []TextCall
}

// RectCall records one FillRect call.
type RectCall struct {
	X, Y, W, H float32
	Color      color.Color
}

// TextCall records one DrawText call.
type TextCall struct {
	Text  string
	X, Y  int
	Color color.Color
	Scale float64
}

func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	r.Rects = append(r.Rects, RectCall{X: x, Y: y, W: width, H: height, Color: clr})
}

func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.Texts = append(r.Texts, TextCall{Text: text, X: x, Y: y, Color: clr, Scale: scale})
}

// MeasureText uses a fixed 8x16 cell per character at scale 1.
func (r *Renderer) MeasureText(text string, scale float64) (width, height int) {
	return int(float64(len(text)) * 8 * scale), int(16 * scale)
}

// HasText reports whether text was drawn.
func (r *Renderer) HasText(text string) bool {
	for _, t := range r.Texts {
		if t.Text == text {
			return true
		}
	}
	return false
}

// Text returns the first recorded call that drew text.
func (r *Renderer) Text(text string) (TextCall, bool) {
	for _, t := range r.Texts {
		if t.Text == text {
			return t, true
		}
	}
	return TextCall{}, false
}

// Input is a scripted render.InputManager. Tests set the fields directly.
type Input struct {
	Held    map[render.Key]bool
	Clicked bool // Left button went down this frame
	CursorX int
	CursorY int
}

// NewInput creates an input with nothing held.
func NewInput() *Input {
	return &Input{Held: make(map[render.Key]bool)}
}

// Click queues a left click at (x, y) for the next frame.
func (in *Input) Click(x, y int) {
	in.Clicked = true
	in.CursorX, in.CursorY = x, y
}

// Release lifts the mouse button.
func (in *Input) Release() {
	in.Clicked = false
}

func (in *Input) IsKeyPressed(key render.Key) bool { return in.Held[key] }

func (in *Input) GetCursorPosition() (x, y int) { return in.CursorX, in.CursorY }

func (in *Input) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return button == render.MouseButtonLeft && in.Clicked
}

// ErrNotFound is returned by Loader for unknown paths.
var ErrNotFound = errors.New("rendertest: image not found")

// Loader serves fake images keyed by path.
type Loader struct {
	Images map[string]*Image
}

func (l *Loader) LoadImage(path string) (render.Image, error) {
	img, ok := l.Images[path]
	if !ok {
		return nil, ErrNotFound
	}
	return img, nil
}
