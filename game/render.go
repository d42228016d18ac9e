package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/kunring/mijocraft/chunk"
)

var colorSky = rl.Color{R: 120, G: 167, B: 255, A: 255}

// Draw renders one frame.
func (g *Game) Draw() {
	if g.camera == nil || g.renderer == nil {
		return
	}

	g.followPlayer()

	rl.BeginDrawing()
	rl.ClearBackground(colorSky)

	g.renderer.Draw(g.camera)

	g.drawHUD()
	g.drawDebugPanel()
	if g.inspector != nil {
		g.inspector.Draw(g.World())
	}

	rl.EndDrawing()
}

// followPlayer eases the camera toward the player each frame.
func (g *Game) followPlayer() {
	query := g.playerFilter.Query()
	if !query.Next() {
		return
	}
	pos, _, _ := query.Get()
	query.Close()
	g.camera.Follow(pos.X, pos.Y)
}

func (g *Game) drawHUD() {
	rl.DrawText(fmt.Sprintf("tick %d  fps %d", g.tick, rl.GetFPS()), 10, 10, 16, rl.RayWhite)

	if cur := ecs.GetResource[chunk.CurrentPosition](g.World()); cur != nil {
		rl.DrawText(fmt.Sprintf("chunk (%d, %d)", cur.Pos.X, cur.Pos.Y), 10, 30, 16, rl.RayWhite)
	}

	if g.paused {
		rl.DrawText("PAUSED", 10, 50, 16, rl.Yellow)
	}
}

// drawDebugPanel renders the zoom slider and the chunk reload button.
func (g *Game) drawDebugPanel() {
	panelX := float32(10)
	panelY := g.screenHeight - 70

	rl.DrawText("Zoom", int32(panelX), int32(panelY), 14, rl.RayWhite)
	newZoom := gui.SliderBar(
		rl.Rectangle{X: panelX + 50, Y: panelY, Width: 150, Height: 16},
		"0.25", "4.0",
		g.camera.Zoom, g.camera.MinZoom, g.camera.MaxZoom,
	)
	if newZoom != g.camera.Zoom {
		g.camera.SetZoom(newZoom)
	}

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY + 25, Width: 130, Height: 26}, "Reload Chunks") {
		if signals := ecs.GetResource[chunk.Signals](g.World()); signals != nil {
			signals.Send(chunk.UnloadChunks{Force: true})
		}
	}
}
