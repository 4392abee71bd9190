// Package entity provides the actors of the arena: the player-controlled hero
// and the enemies that patrol fixed rectangles, plus the geometry used to
// detect when they touch.
package entity

// Vec2 is a 2D position or per-tick velocity in screen pixels.
type Vec2 struct {
	X, Y float64
}

// Direction is a set of held movement directions.
type Direction uint8

const (
	DirLeft Direction = 1 << iota
	DirRight
	DirUp
	DirDown
)

// DirNone is the empty set.
const DirNone Direction = 0

// Has reports whether every direction in other is held.
func (d Direction) Has(other Direction) bool {
	return d&other == other
}
