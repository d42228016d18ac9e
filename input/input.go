// Package input maps keyboard state to controller actions.
package input

// Action is a logical player input.
type Action uint8

const (
	ActionLeft Action = iota
	ActionRight
	ActionJump // also "up" while in noclip
	ActionDown
	ActionToggleNoclip
)

// Keyboard reports action state once per frame. Down is level-triggered,
// Pressed fires only on the frame the action was first pressed.
type Keyboard interface {
	Down(a Action) bool
	Pressed(a Action) bool
}
