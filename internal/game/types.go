package game

import (
	"chosenoffset.com/alienpatrol/internal/entity"
	"chosenoffset.com/alienpatrol/internal/render"
)

// Audio plays the background music and the move sound.
// Calls are fire-and-forget.
type Audio interface {
	PlayMusic() // Start looping from the top
	PauseMusic()
	PlayEffect() // Overlaps any effect already playing
}

// keyBindings maps each walking direction to the keys that hold it.
var keyBindings = []struct {
	dir  entity.Direction
	keys []render.Key
}{
	{entity.DirLeft, []render.Key{render.KeyLeft, render.KeyA}},
	{entity.DirRight, []render.Key{render.KeyRight, render.KeyD}},
	{entity.DirUp, []render.Key{render.KeyUp, render.KeyW}},
	{entity.DirDown, []render.Key{render.KeyDown, render.KeyS}},
}
