package input

import rl "github.com/gen2brain/raylib-go/raylib"

// actionKeys maps each action to the raylib keys that trigger it.
var actionKeys = map[Action][]int32{
	ActionLeft:         {rl.KeyA, rl.KeyLeft},
	ActionRight:        {rl.KeyD, rl.KeyRight},
	ActionJump:         {rl.KeySpace, rl.KeyW, rl.KeyUp},
	ActionDown:         {rl.KeyS, rl.KeyDown},
	ActionToggleNoclip: {rl.KeyF},
}

// RaylibKeyboard reads action state from the raylib window.
type RaylibKeyboard struct{}

// NewRaylibKeyboard creates a keyboard backed by raylib key polling.
func NewRaylibKeyboard() *RaylibKeyboard {
	return &RaylibKeyboard{}
}

// Down reports whether any key bound to the action is held.
func (k *RaylibKeyboard) Down(a Action) bool {
	for _, key := range actionKeys[a] {
		if rl.IsKeyDown(key) {
			return true
		}
	}
	return false
}

// Pressed reports whether any key bound to the action was pressed this frame.
func (k *RaylibKeyboard) Pressed(a Action) bool {
	for _, key := range actionKeys[a] {
		if rl.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
