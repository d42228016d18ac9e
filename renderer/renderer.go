// Package renderer draws the loaded world chunks and entity sprites.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/kunring/mijocraft/camera"
	"github.com/kunring/mijocraft/chunk"
	"github.com/kunring/mijocraft/components"
)

// Renderer draws chunk tiles and sprites through a camera transform.
type Renderer struct {
	chunkFilter  *ecs.Filter1[chunk.Chunk]
	spriteFilter *ecs.Filter2[components.Position, components.Sprite]
	rotationMap  *ecs.Map1[components.PlayerSprite]
	tileSize     float32
}

// New creates a renderer over the given world.
func New(world *ecs.World, tileSize float32) *Renderer {
	return &Renderer{
		chunkFilter:  ecs.NewFilter1[chunk.Chunk](world),
		spriteFilter: ecs.NewFilter2[components.Position, components.Sprite](world),
		rotationMap:  ecs.NewMap1[components.PlayerSprite](world),
		tileSize:     tileSize,
	}
}

// Draw renders all loaded chunks, then all sprites on top.
func (r *Renderer) Draw(cam *camera.Camera) {
	r.drawChunks(cam)
	r.drawSprites(cam)
}

func (r *Renderer) drawChunks(cam *camera.Camera) {
	minX, minY, maxX, maxY := cam.VisibleWorldBounds()

	query := r.chunkFilter.Query()
	for query.Next() {
		ch := query.Get()

		chunkPx := float32(ch.Size) * r.tileSize
		originX := float32(ch.Pos.X) * chunkPx
		originY := float32(ch.Pos.Y) * chunkPx

		// Cull chunks entirely outside the view
		if originX+chunkPx < minX || originX > maxX ||
			originY+chunkPx < minY || originY > maxY {
			continue
		}

		for ly := 0; ly < ch.Size; ly++ {
			for lx := 0; lx < ch.Size; lx++ {
				tile := ch.At(lx, ly)
				if tile == chunk.TileAir {
					continue
				}

				// Screen position of the tile's top-left corner
				wx := originX + float32(lx)*r.tileSize
				wy := originY + float32(ly+1)*r.tileSize
				sx, sy := cam.WorldToScreen(wx, wy)
				size := r.tileSize * cam.Zoom

				rl.DrawRectangle(int32(sx), int32(sy), int32(math.Ceil(float64(size))), int32(math.Ceil(float64(size))), tileColor(tile))
			}
		}
	}
}

func (r *Renderer) drawSprites(cam *camera.Camera) {
	query := r.spriteFilter.Query()
	for query.Next() {
		pos, sprite := query.Get()
		if sprite.A == 0 {
			continue
		}
		if !cam.IsVisible(pos.X, pos.Y, sprite.Size) {
			continue
		}

		var angle float32
		if rot := r.rotationMap.Get(query.Entity()); rot != nil {
			angle = rot.Angle
		}

		sx, sy := cam.WorldToScreen(pos.X, pos.Y)
		size := sprite.Size * cam.Zoom

		// Screen Y points down, so world rotation is negated
		rl.DrawRectanglePro(
			rl.Rectangle{X: sx, Y: sy, Width: size, Height: size},
			rl.Vector2{X: size / 2, Y: size / 2},
			-angle*180/math.Pi,
			rl.Color{R: sprite.R, G: sprite.G, B: sprite.B, A: sprite.A},
		)
	}
}

// tileColor maps a tile type to its draw color.
func tileColor(t chunk.Tile) rl.Color {
	switch t {
	case chunk.TileGrass:
		return rl.Color{R: 92, G: 160, B: 70, A: 255}
	case chunk.TileDirt:
		return rl.Color{R: 124, G: 88, B: 58, A: 255}
	case chunk.TileStone:
		return rl.Color{R: 110, G: 110, B: 118, A: 255}
	default:
		return rl.Blank
	}
}
