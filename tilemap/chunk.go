package tilemap

import (
	"fmt"
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ChunkID identifies one chunk of the infinite grid. Chunk k covers world
// coordinates [k*ChunkSize, (k+1)*ChunkSize) on each axis.
type ChunkID struct {
	X, Y int
}

// ChunkFromWorld returns the chunk containing the world point p.
func ChunkFromWorld(p mgl64.Vec2) ChunkID {
	return ChunkID{
		X: int(math.Floor(p.X() / ChunkSize)),
		Y: int(math.Floor(p.Y() / ChunkSize)),
	}
}

// ToWorld returns the world position of the chunk's minimum corner.
func (id ChunkID) ToWorld() mgl64.Vec2 {
	return mgl64.Vec2{float64(id.X) * ChunkSize, float64(id.Y) * ChunkSize}
}

func (id ChunkID) ToWorldRect() Rect {
	o := id.ToWorld()
	return Rect{Min: o, Max: o.Add(mgl64.Vec2{ChunkSize, ChunkSize})}
}

// TileOrigin returns the tile space coordinate of the chunk's first tile.
// Noise is sampled in tile space.
func (id ChunkID) TileOrigin() image.Point {
	return image.Pt(id.X*ChunkTiles, id.Y*ChunkTiles)
}

func (id ChunkID) String() string {
	return fmt.Sprintf("(%d,%d)", id.X, id.Y)
}

// LocalFromWorld returns the chunk containing p and the local tile position
// of p within it.
func LocalFromWorld(p mgl64.Vec2) (ChunkID, image.Point) {
	id := ChunkFromWorld(p)
	d := p.Sub(id.ToWorld())
	pos := image.Pt(int(math.Floor(d.X()/TileSize)), int(math.Floor(d.Y()/TileSize)))
	// Float rounding right below a chunk border.
	if pos.X >= ChunkTiles {
		pos.X = ChunkTiles - 1
	}
	if pos.Y >= ChunkTiles {
		pos.Y = ChunkTiles - 1
	}
	return id, pos
}

// TileCenter returns the world position of the center of tile pos in chunk id.
func TileCenter(id ChunkID, pos image.Point) mgl64.Vec2 {
	return id.ToWorld().Add(mgl64.Vec2{
		(float64(pos.X) + 0.5) * TileSize,
		(float64(pos.Y) + 0.5) * TileSize,
	})
}

// Rect is an axis aligned world space rectangle.
type Rect struct {
	Min, Max mgl64.Vec2
}

// RectFromCorners builds a rectangle from any two opposite corners.
func RectFromCorners(a, b mgl64.Vec2) Rect {
	return Rect{
		Min: mgl64.Vec2{math.Min(a.X(), b.X()), math.Min(a.Y(), b.Y())},
		Max: mgl64.Vec2{math.Max(a.X(), b.X()), math.Max(a.Y(), b.Y())},
	}
}

// Contains reports whether p lies in r. Min is inclusive, Max exclusive.
func (r Rect) Contains(p mgl64.Vec2) bool {
	return p.X() >= r.Min.X() && p.X() < r.Max.X() &&
		p.Y() >= r.Min.Y() && p.Y() < r.Max.Y()
}

func (r Rect) Intersects(o Rect) bool {
	return r.Min.X() < o.Max.X() && o.Min.X() < r.Max.X() &&
		r.Min.Y() < o.Max.Y() && o.Min.Y() < r.Max.Y()
}

func (r Rect) Size() mgl64.Vec2 {
	return r.Max.Sub(r.Min)
}

func (r Rect) Center() mgl64.Vec2 {
	return r.Min.Add(r.Max).Mul(0.5)
}

// Chunk is a loaded piece of the world: its identity, its tiles and whatever
// the renderer attached to it.
type Chunk struct {
	ID ChunkID
	// Handle is owned by the rendering collaborator.
	Handle any

	grid   *Grid
	dirty  bool
	edited bool
}

func newChunk(id ChunkID) *Chunk {
	return &Chunk{ID: id, grid: NewGrid(), dirty: true}
}

func (c *Chunk) Get(pos image.Point) (Tile, bool) {
	return c.grid.Get(pos)
}

// Set stores t at pos and marks the chunk dirty and edited. Out of range
// positions are ignored.
func (c *Chunk) Set(pos image.Point, t Tile) {
	old, ok := c.grid.Get(pos)
	if !ok || old == t {
		return
	}
	c.grid.Set(pos, t)
	c.dirty = true
	c.edited = true
}

// Tiles returns a copy of the chunk's grid.
func (c *Chunk) Tiles() Grid {
	return *c.grid
}

// Ordinals is Grid.Ordinals for the chunk's tiles.
func (c *Chunk) Ordinals(dst []uint32) []uint32 {
	return c.grid.Ordinals(dst)
}

// Edited reports whether the tiles differ from what generation produced.
func (c *Chunk) Edited() bool {
	return c.edited
}

func (c *Chunk) Dirty() bool {
	return c.dirty
}

// TakeDirty reports whether the chunk changed since the last call and clears
// the flag.
func (c *Chunk) TakeDirty() bool {
	d := c.dirty
	c.dirty = false
	return d
}
