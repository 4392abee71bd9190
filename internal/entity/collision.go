package entity

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y float64
	W, H float64
}

// Intersects reports whether r and o overlap. Rectangles that only share an
// edge do not overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Contains reports whether the point lies inside r. The left and top edges
// are inside, the right and bottom edges are not.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Hits reports whether the enemy's rectangle overlaps hero.
func (e *PatrolEnemy) Hits(hero Rect) bool {
	return e.Rect().Intersects(hero)
}
