// Package chunk provides the streamed tile world: chunk storage, terrain
// generation, and the manager that loads and unloads chunks around the player.
package chunk

// Pos identifies a chunk by its integer chunk coordinates.
type Pos struct {
	X, Y int
}

// Tile is a single terrain cell.
type Tile uint8

const (
	TileAir Tile = iota
	TileGrass
	TileDirt
	TileStone
)

// Solid reports whether the tile blocks movement.
func (t Tile) Solid() bool {
	return t != TileAir
}

// Chunk is a square region of tiles, attached as a component to one entity
// per loaded chunk.
type Chunk struct {
	Pos   Pos
	Size  int
	Tiles []Tile // len Size*Size, row-major from the chunk's lower-left tile
}

// At returns the tile at local coordinates within the chunk.
func (c *Chunk) At(lx, ly int) Tile {
	return c.Tiles[ly*c.Size+lx]
}

// CurrentPosition records which chunk the player currently occupies.
// It is a world resource with a single writer, the chunk tracking system.
type CurrentPosition struct {
	Pos Pos `inspect:"label"`
}

// floorDiv divides rounding toward negative infinity, so tile -1 lands in
// chunk -1 rather than chunk 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// PosOfTile converts tile coordinates to the containing chunk position.
func PosOfTile(tileX, tileY, chunkSize int) Pos {
	return Pos{X: floorDiv(tileX, chunkSize), Y: floorDiv(tileY, chunkSize)}
}

// PosOfPixel converts a world-pixel position to the containing chunk position.
func PosOfPixel(px, py, tileSize float32, chunkSize int) Pos {
	tx := floorDivF(px, tileSize)
	ty := floorDivF(py, tileSize)
	return PosOfTile(tx, ty, chunkSize)
}

func floorDivF(v, size float32) int {
	q := int(v / size)
	if v < 0 && float32(q)*size != v {
		q--
	}
	return q
}
