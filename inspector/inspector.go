// Package inspector renders a debug panel of live player state, driven by
// reflection over `inspect` struct tags.
package inspector

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/kunring/mijocraft/chunk"
	"github.com/kunring/mijocraft/components"
)

// Panel dimensions
const (
	PanelWidth   = 280
	PanelPadding = 10
	HeaderHeight = 30
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorSection     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorSectionText = rl.Color{R: 200, G: 200, B: 220, A: 255}
)

// fallGauge is a derived view of the player's fall speed, shown as a bar
// against the default terminal velocity.
type fallGauge struct {
	FallSpeed float32 `inspect:"bar,max:530"`
}

// Inspector renders a toggleable panel with the player's component state.
type Inspector struct {
	visible bool
	panelX  int32
	panelY  int32

	playerFilter *ecs.Filter3[components.Position, components.Velocity, components.Player]
	spriteFilter *ecs.Filter1[components.PlayerSprite]
	probeMap     *ecs.Map1[components.GroundProbe]
}

// NewInspector creates an inspector anchored to the top-right corner.
func NewInspector(world *ecs.World, screenWidth int32) *Inspector {
	return &Inspector{
		panelX:       screenWidth - PanelWidth - 10,
		panelY:       10,
		playerFilter: ecs.NewFilter3[components.Position, components.Velocity, components.Player](world),
		spriteFilter: ecs.NewFilter1[components.PlayerSprite](world),
		probeMap:     ecs.NewMap1[components.GroundProbe](world),
	}
}

// Toggle flips panel visibility.
func (ins *Inspector) Toggle() {
	ins.visible = !ins.visible
}

// Visible reports whether the panel is shown.
func (ins *Inspector) Visible() bool {
	return ins.visible
}

// Resize re-anchors the panel after a window resize.
func (ins *Inspector) Resize(screenWidth int32) {
	ins.panelX = screenWidth - PanelWidth - 10
}

// Draw renders the panel if visible and a player exists.
func (ins *Inspector) Draw(w *ecs.World) {
	if !ins.visible {
		return
	}

	query := ins.playerFilter.Query()
	if !query.Next() {
		return
	}
	entity := query.Entity()
	pos, vel, player := query.Get()
	probe := ins.probeMap.Get(entity)
	query.Close()

	panelHeight := ins.calculatePanelHeight()

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, panelHeight, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: float32(panelHeight)},
		1,
		ColorPanelBorder,
	)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText("INSPECTOR", ins.panelX+PanelPadding, ins.panelY+7, 16, ColorHeaderText)

	y := ins.panelY + HeaderHeight + PanelPadding
	x := ins.panelX + PanelPadding

	y += ins.drawComponent(x, y, "PLAYER", player)
	y += ins.drawComponent(x, y, "POSITION", pos)
	y += ins.drawComponent(x, y, "VELOCITY", vel)
	gauge := fallGauge{}
	if vel.Y < 0 {
		gauge.FallSpeed = -vel.Y
	}
	for _, field := range ExtractFields(gauge) {
		y += DrawField(x, y, field)
	}

	if probe != nil {
		y += ins.drawComponent(x, y, "GROUND PROBE", probe)
		y += DrawLabel(x, y, "Hits", len(probe.Hits), nil)
	}

	spriteQuery := ins.spriteFilter.Query()
	if spriteQuery.Next() {
		sprite := spriteQuery.Get()
		spriteQuery.Close()
		y += ins.drawSectionHeader(x, y, "SPRITE")
		y += DrawField(x, y, Field{Name: "Angle", Value: sprite.Angle, Widget: WidgetAngle})
	}

	ins.drawChunkSection(w, x, y)
}

// drawComponent renders a section header followed by the component's fields.
func (ins *Inspector) drawComponent(x, y int32, title string, component interface{}) int32 {
	total := ins.drawSectionHeader(x, y, title)
	for _, field := range ExtractFields(component) {
		total += DrawField(x, y+total, field)
	}
	return total + 4
}

func (ins *Inspector) drawChunkSection(w *ecs.World, x, y int32) {
	cur := ecs.GetResource[chunk.CurrentPosition](w)
	index := ecs.GetResource[chunk.Index](w)
	if cur == nil && index == nil {
		return
	}

	y += ins.drawSectionHeader(x, y, "CHUNKS")
	if cur != nil {
		y += DrawLabel(x, y, "Current", fmt.Sprintf("(%d, %d)", cur.Pos.X, cur.Pos.Y), nil)
	}
	if index != nil {
		DrawLabel(x, y, "Loaded", index.Count(), nil)
	}
}

// drawSectionHeader renders a section title.
func (ins *Inspector) drawSectionHeader(x, y int32, title string) int32 {
	rl.DrawRectangle(x-2, y-2, PanelWidth-2*PanelPadding+4, 18, ColorSection)
	rl.DrawText(title, x+2, y, 14, ColorSectionText)
	return 20
}

// calculatePanelHeight computes the panel height from its fixed layout.
func (ins *Inspector) calculatePanelHeight() int32 {
	height := int32(HeaderHeight + PanelPadding)
	height += 24 + 18*3 + 4      // player section
	height += 24 + 20*2 + 4      // position
	height += 24 + 20*2 + 18 + 4 // velocity and fall speed bar
	height += 24 + 20*2 + 4      // ground probe
	height += 24 + 44            // sprite angle
	height += 24 + 20*2          // chunk section
	height += PanelPadding
	return height
}
