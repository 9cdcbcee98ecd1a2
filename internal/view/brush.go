package view

import "Archipelago/tilemap"

const (
	MinBrushRadius = 1
	MaxBrushRadius = 32
)

// Brush is the paint tool: any tile of the set and a radius in tiles.
type Brush struct {
	index  int
	radius int
}

// NewBrush starts on grass with a radius of two tiles.
func NewBrush() *Brush {
	b := &Brush{radius: 2}
	for i, t := range tilemap.All {
		if t == tilemap.Grass {
			b.index = i
		}
	}
	return b
}

func (b *Brush) Tile() tilemap.Tile {
	return tilemap.All[b.index]
}

// Cycle steps through tilemap.All, wrapping at both ends.
func (b *Brush) Cycle(step int) tilemap.Tile {
	n := len(tilemap.All)
	b.index = ((b.index+step)%n + n) % n
	return b.Tile()
}

// Radius is in tiles.
func (b *Brush) Radius() int {
	return b.radius
}

// WorldRadius is the radius in world units.
func (b *Brush) WorldRadius() float64 {
	return float64(b.radius * tilemap.TileSize)
}

func (b *Brush) Resize(step int) {
	b.radius = max(MinBrushRadius, min(MaxBrushRadius, b.radius+step))
}
