package entity

// Hero is the player-controlled actor. Pos is the top-left corner of its tile.
type Hero struct {
	Pos   Vec2
	Size  float64 // Tile edge in pixels
	Speed float64 // Pixels per tick per held direction
	Anim  AnimationClock

	start Vec2
}

// NewHero creates a hero standing at start.
func NewHero(start Vec2, size, speed float64, frames int, interval float64) *Hero {
	return &Hero{
		Pos:   start,
		Size:  size,
		Speed: speed,
		Anim:  NewAnimationClock(frames, interval),
		start: start,
	}
}

// Reset puts the hero back at its start position in the rest pose.
func (h *Hero) Reset() {
	h.Pos = h.start
	h.Anim.Reset()
}

// Update moves the hero by Speed along every held axis and advances the walk
// animation. Opposite directions cancel out but still count as moving, and
// diagonals are not normalized. The hero is never clamped to the screen.
// Returns whether any direction was held.
func (h *Hero) Update(dt float64, held Direction) (moving bool) {
	if held.Has(DirLeft) {
		h.Pos.X -= h.Speed
		moving = true
	}
	if held.Has(DirRight) {
		h.Pos.X += h.Speed
		moving = true
	}
	if held.Has(DirUp) {
		h.Pos.Y -= h.Speed
		moving = true
	}
	if held.Has(DirDown) {
		h.Pos.Y += h.Speed
		moving = true
	}

	if moving {
		h.Anim.Advance(dt)
	} else {
		h.Anim.Idle()
	}
	return moving
}

// Rect returns the hero's collision rectangle.
func (h *Hero) Rect() Rect {
	return Rect{X: h.Pos.X, Y: h.Pos.Y, W: h.Size, H: h.Size}
}
