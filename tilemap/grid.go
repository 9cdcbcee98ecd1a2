package tilemap

import "image"

const (
	// ChunkTiles is the side length of a chunk in tiles.
	ChunkTiles = 50
	// ChunkTileCount is the number of tiles in a chunk.
	ChunkTileCount = ChunkTiles * ChunkTiles
	// TileSize is the side length of a tile in world units.
	TileSize = 8
	// ChunkSize is the side length of a chunk in world units.
	ChunkSize = float64(ChunkTiles * TileSize)
)

// Grid is the fixed-size tile storage of one chunk. Tiles are addressed by
// local position; the linear index of (x, y) is x*ChunkTiles + y.
type Grid struct {
	tiles [ChunkTileCount]Tile
}

// NewGrid returns a grid filled with DefaultTile.
func NewGrid() *Grid {
	g := &Grid{}
	g.Fill(DefaultTile)
	return g
}

func index(pos image.Point) (int, bool) {
	if pos.X < 0 || pos.X >= ChunkTiles || pos.Y < 0 || pos.Y >= ChunkTiles {
		return 0, false
	}
	return pos.X*ChunkTiles + pos.Y, true
}

// Get returns the tile at pos. ok is false when pos lies outside the grid.
func (g *Grid) Get(pos image.Point) (t Tile, ok bool) {
	i, ok := index(pos)
	if !ok {
		return 0, false
	}
	return g.tiles[i], true
}

// Ptr returns a pointer to the tile at pos, or nil outside the grid.
func (g *Grid) Ptr(pos image.Point) *Tile {
	i, ok := index(pos)
	if !ok {
		return nil
	}
	return &g.tiles[i]
}

// Set stores t at pos. Positions outside the grid are ignored and reported
// as false.
func (g *Grid) Set(pos image.Point, t Tile) bool {
	p := g.Ptr(pos)
	if p == nil {
		return false
	}
	*p = t
	return true
}

func (g *Grid) Fill(t Tile) {
	for i := range g.tiles {
		g.tiles[i] = t
	}
}

// Each calls fn for every tile in index order.
func (g *Grid) Each(fn func(pos image.Point, t Tile)) {
	for i, t := range g.tiles {
		fn(image.Pt(i/ChunkTiles, i%ChunkTiles), t)
	}
}

// Count returns the number of tiles matching pred.
func (g *Grid) Count(pred func(Tile) bool) int {
	n := 0
	for _, t := range g.tiles {
		if pred(t) {
			n++
		}
	}
	return n
}

// Ordinals writes the tile set slot of every tile into dst, reusing its
// storage when large enough, and returns it. The layout matches the grid's
// linear index.
func (g *Grid) Ordinals(dst []uint32) []uint32 {
	if cap(dst) < ChunkTileCount {
		dst = make([]uint32, ChunkTileCount)
	}
	dst = dst[:ChunkTileCount]
	for i, t := range g.tiles {
		dst[i] = t.Ordinal()
	}
	return dst
}
