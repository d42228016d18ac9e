package game

// Update runs one frame in graphical mode: input handling, then one
// simulation tick unless paused.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}

	g.step()
}

// UpdateHeadless runs one simulation tick without any input or rendering.
func (g *Game) UpdateHeadless() {
	g.step()
}

func (g *Game) step() {
	g.app.Update()
	g.tick++
}
