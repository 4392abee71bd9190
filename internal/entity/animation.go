package entity

// AnimationClock advances a looping frame index from elapsed time.
// It only runs while its owner is moving; an idle owner shows frame 0.
type AnimationClock struct {
	Frame      int     // Current frame index, always in [0, FrameCount)
	Timer      float64 // Seconds accumulated since the last advance
	Interval   float64 // Seconds between advances
	FrameCount int
}

// NewAnimationClock creates a clock at frame 0.
func NewAnimationClock(frameCount int, interval float64) AnimationClock {
	return AnimationClock{
		Interval:   interval,
		FrameCount: frameCount,
	}
}

// Advance accumulates dt and moves to the next frame once the interval is
// reached. The timer restarts from zero on every advance, so any excess
// time past the interval is dropped.
func (c *AnimationClock) Advance(dt float64) {
	c.Timer += dt
	if c.Timer >= c.Interval {
		c.Frame = (c.Frame + 1) % c.FrameCount
		c.Timer = 0
	}
}

// Idle shows the rest pose. The timer is left as is.
func (c *AnimationClock) Idle() {
	c.Frame = 0
}

// Reset returns the clock to frame 0 with an empty timer.
func (c *AnimationClock) Reset() {
	c.Frame = 0
	c.Timer = 0
}
