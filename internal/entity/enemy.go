package entity

// RosterSize is the number of enemies in every session.
const RosterSize = 3

// Bound is the rectangle an enemy's center patrols inside.
// It is soft: the enemy may sit one tick outside before turning back.
type Bound struct {
	XMin, XMax float64
	YMin, YMax float64
}

// PatrolEnemy bounces inside its Bound at a fixed per-axis velocity.
// Pos is the center of its tile, matching how its sprite is anchored.
type PatrolEnemy struct {
	Sprite string
	Pos    Vec2
	Bound  Bound
	Vel    Vec2
	Size   float64
}

// NewPatrolEnemy creates an enemy at start moving with vel.
func NewPatrolEnemy(sprite string, start Vec2, bound Bound, vel Vec2, size float64) PatrolEnemy {
	return PatrolEnemy{
		Sprite: sprite,
		Pos:    start,
		Bound:  bound,
		Vel:    vel,
		Size:   size,
	}
}

// Update moves the enemy one tick. Each axis moves first and reflects its
// velocity afterwards if the new position is outside the bound; the
// position itself is never clamped.
func (e *PatrolEnemy) Update() {
	e.Pos.X += e.Vel.X
	if e.Pos.X < e.Bound.XMin || e.Pos.X > e.Bound.XMax {
		e.Vel.X = -e.Vel.X
	}

	e.Pos.Y += e.Vel.Y
	if e.Pos.Y < e.Bound.YMin || e.Pos.Y > e.Bound.YMax {
		e.Vel.Y = -e.Vel.Y
	}
}

// Rect returns the enemy's collision rectangle, centered on Pos.
func (e *PatrolEnemy) Rect() Rect {
	half := e.Size / 2
	return Rect{X: e.Pos.X - half, Y: e.Pos.Y - half, W: e.Size, H: e.Size}
}

// Roster is the fixed set of enemies of one session. Copying a Roster
// copies every enemy, so a template value can seed each new session.
type Roster [RosterSize]PatrolEnemy

// Step moves the enemies in order and checks each one against the hero
// right after it moves. It stops at the first enemy that touches the hero,
// leaving the rest unmoved for this tick, and returns that enemy's index.
func (r *Roster) Step(hero Rect) (hit int, ok bool) {
	for i := range r {
		r[i].Update()
		if r[i].Hits(hero) {
			return i, true
		}
	}
	return -1, false
}
