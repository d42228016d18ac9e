package chunk

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Generator produces chunk terrain from Perlin noise: a rolling surface
// line with grass, dirt, and stone layers, and noise-carved caves.
type Generator struct {
	noise *perlin.Perlin
}

const (
	surfaceScale = 0.035
	surfaceAmp   = 9.0
	caveScale    = 0.08
	caveCutoff   = 0.42
	dirtDepth    = 3
)

// NewGenerator creates a terrain generator for the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		noise: perlin.NewPerlin(2, 2, 3, seed),
	}
}

// SurfaceHeight returns the tile Y of the top solid tile in a column.
func (g *Generator) SurfaceHeight(tileX int) int {
	n := g.noise.Noise1D(float64(tileX) * surfaceScale)
	return int(math.Floor(n * surfaceAmp))
}

// Generate builds the tile data for the chunk at pos.
func (g *Generator) Generate(pos Pos, size int) *Chunk {
	c := &Chunk{
		Pos:   pos,
		Size:  size,
		Tiles: make([]Tile, size*size),
	}

	for lx := 0; lx < size; lx++ {
		tx := pos.X*size + lx
		surface := g.SurfaceHeight(tx)

		for ly := 0; ly < size; ly++ {
			ty := pos.Y*size + ly

			var t Tile
			switch {
			case ty > surface:
				t = TileAir
			case ty == surface:
				t = TileGrass
			case ty >= surface-dirtDepth:
				t = TileDirt
			default:
				t = TileStone
			}

			// Carve caves only below the dirt layer so the surface stays walkable.
			if t == TileStone {
				cave := g.noise.Noise2D(float64(tx)*caveScale, float64(ty)*caveScale)
				if cave > caveCutoff {
					t = TileAir
				}
			}

			c.Tiles[ly*size+lx] = t
		}
	}

	return c
}
