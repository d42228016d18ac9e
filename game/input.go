package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes application-level keyboard input. Player movement
// keys are read by the input system inside the simulation step.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeyP) {
		g.paused = !g.paused
	}

	if rl.IsKeyPressed(rl.KeyTab) && g.inspector != nil {
		g.inspector.Toggle()
	}

	g.handleCameraInput()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	if g.camera != nil {
		g.camera.Resize(w, h)
	}
	if g.inspector != nil {
		g.inspector.Resize(int32(w))
	}
}

// handleCameraInput processes camera zoom controls. The camera position
// itself follows the player.
func (g *Game) handleCameraInput() {
	if g.camera == nil {
		return
	}

	wheelMove := rl.GetMouseWheelMove()
	if wheelMove != 0 {
		zoomFactor := float32(1.0) + wheelMove*0.1
		g.camera.ZoomBy(zoomFactor)
	}

	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}
