// Package camera provides a 2D camera for viewport control.
package camera

// Camera controls the viewport into the world. World coordinates are
// Y-up while the screen is Y-down, so both transforms flip the Y axis.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Zoom constraints
	MinZoom, MaxZoom float32

	// FollowLerp is the per-frame interpolation factor toward the target
	FollowLerp float32
}

// New creates a camera centered on the given world position with 1:1 zoom.
func New(viewportW, viewportH, x, y float32) *Camera {
	return &Camera{
		X:          x,
		Y:          y,
		Zoom:       1.0,
		ViewportW:  viewportW,
		ViewportH:  viewportH,
		MinZoom:    0.25,
		MaxZoom:    4.0,
		FollowLerp: 0.1,
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	dx := wx - c.X
	dy := wy - c.Y

	sx = c.ViewportW/2 + dx*c.Zoom
	sy = c.ViewportH/2 - dy*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	dx := (sx - c.ViewportW/2) / c.Zoom
	dy := (c.ViewportH/2 - sy) / c.Zoom

	wx = c.X + dx
	wy = c.Y + dy
	return wx, wy
}

// IsVisible returns true if a box at (wx, wy) with the given half-extent
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, halfExtent float32) bool {
	halfW := c.ViewportW/(2*c.Zoom) + halfExtent
	halfH := c.ViewportH/(2*c.Zoom) + halfExtent
	return absf(wx-c.X) <= halfW && absf(wy-c.Y) <= halfH
}

// Follow moves the camera a fraction of the way toward the target,
// giving a smooth trailing motion as the target moves.
func (c *Camera) Follow(tx, ty float32) {
	c.X += (tx - c.X) * c.FollowLerp
	c.Y += (ty - c.Y) * c.FollowLerp
}

// SnapTo centers the camera on the target immediately.
func (c *Camera) SnapTo(tx, ty float32) {
	c.X = tx
	c.Y = ty
}

// Resize updates the viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float32) {
	c.X += dx / c.Zoom
	c.Y -= dy / c.Zoom
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to 1:1 zoom.
func (c *Camera) Reset() {
	c.Zoom = 1.0
}

// VisibleWorldBounds returns the world-coordinate bounds of the visible area
// as (minX, minY, maxX, maxY).
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)

	minX = c.X - halfW
	maxX = c.X + halfW
	minY = c.Y - halfH
	maxY = c.Y + halfH
	return
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
