package view

import (
	"testing"

	"Archipelago/tilemap"

	"github.com/stretchr/testify/assert"
)

func TestBrushCyclesEveryTile(t *testing.T) {
	b := NewBrush()
	start := b.Tile()
	assert.Equal(t, tilemap.Grass, start)

	seen := make(map[tilemap.Tile]bool)
	for i := 0; i < tilemap.TileCount; i++ {
		seen[b.Cycle(1)] = true
	}
	assert.Len(t, seen, tilemap.TileCount)
	assert.Equal(t, start, b.Tile(), "a full cycle wraps back")

	for _, tile := range tilemap.All {
		assert.True(t, seen[tile], tile.String())
	}

	b.Cycle(-1)
	assert.Equal(t, start, b.Cycle(1))
	assert.Equal(t, start, b.Cycle(tilemap.TileCount))
}

func TestBrushResizeClamped(t *testing.T) {
	b := NewBrush()
	assert.Equal(t, 2, b.Radius())
	assert.Equal(t, float64(2*tilemap.TileSize), b.WorldRadius())

	b.Resize(-10)
	assert.Equal(t, MinBrushRadius, b.Radius())
	b.Resize(100)
	assert.Equal(t, MaxBrushRadius, b.Radius())
}
