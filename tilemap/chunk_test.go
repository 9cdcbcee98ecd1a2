package tilemap

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkFromWorldFloors(t *testing.T) {
	cases := []struct {
		p    mgl64.Vec2
		want ChunkID
	}{
		{mgl64.Vec2{0, 0}, ChunkID{0, 0}},
		{mgl64.Vec2{399.9, 399.9}, ChunkID{0, 0}},
		{mgl64.Vec2{400, 0}, ChunkID{1, 0}},
		{mgl64.Vec2{-0.1, 0}, ChunkID{-1, 0}},
		{mgl64.Vec2{-400, -400.5}, ChunkID{-1, -2}},
		{mgl64.Vec2{1234.5, -987.25}, ChunkID{3, -3}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ChunkFromWorld(c.p), "%v", c.p)
	}
}

func TestChunkWorldRect(t *testing.T) {
	id := ChunkID{X: -2, Y: 3}
	r := id.ToWorldRect()
	assert.Equal(t, mgl64.Vec2{-800, 1200}, r.Min)
	assert.Equal(t, mgl64.Vec2{-400, 1600}, r.Max)
	assert.Equal(t, mgl64.Vec2{ChunkSize, ChunkSize}, r.Size())

	for _, id := range []ChunkID{{0, 0}, {5, -7}, {-3, -3}, {12, 40}} {
		r := id.ToWorldRect()
		assert.Equal(t, id, ChunkFromWorld(r.Min))
		assert.Equal(t, id, ChunkFromWorld(r.Center()))
		assert.True(t, r.Contains(r.Center()))
		assert.False(t, r.Contains(r.Max))
	}
}

func TestChunkTileOriginMatchesWorldPlacement(t *testing.T) {
	id := ChunkID{X: 3, Y: -2}
	o := id.TileOrigin()
	assert.Equal(t, image.Pt(150, -100), o)
	assert.Equal(t, id.ToWorld(), mgl64.Vec2{float64(o.X * TileSize), float64(o.Y * TileSize)})
}

func TestLocalFromWorld(t *testing.T) {
	id, pos := LocalFromWorld(mgl64.Vec2{-1, 17})
	assert.Equal(t, ChunkID{-1, 0}, id)
	assert.Equal(t, image.Pt(ChunkTiles-1, 2), pos)

	center := TileCenter(ChunkID{2, -1}, image.Pt(10, 49))
	id, pos = LocalFromWorld(center)
	assert.Equal(t, ChunkID{2, -1}, id)
	assert.Equal(t, image.Pt(10, 49), pos)
}

func TestRectIntersects(t *testing.T) {
	a := RectFromCorners(mgl64.Vec2{10, 10}, mgl64.Vec2{0, 0})
	assert.Equal(t, mgl64.Vec2{0, 0}, a.Min)
	assert.True(t, a.Intersects(Rect{Min: mgl64.Vec2{5, 5}, Max: mgl64.Vec2{20, 20}}))
	assert.False(t, a.Intersects(Rect{Min: mgl64.Vec2{10, 0}, Max: mgl64.Vec2{20, 10}}))
}

func TestChunkSetMarksDirty(t *testing.T) {
	c := newChunk(ChunkID{})
	require.True(t, c.TakeDirty(), "new chunks start dirty")
	assert.False(t, c.Dirty())

	c.Set(image.Pt(-1, 4), Grass)
	assert.False(t, c.Dirty(), "out of range set is a no-op")

	c.Set(image.Pt(0, 0), Void)
	assert.False(t, c.Dirty(), "unchanged tile")
	assert.False(t, c.Edited())

	c.Set(image.Pt(0, 0), Grass)
	assert.True(t, c.TakeDirty())
	assert.True(t, c.Edited(), "taking the dirty flag keeps the edit")
	got, ok := c.Get(image.Pt(0, 0))
	require.True(t, ok)
	assert.Equal(t, Grass, got)

	tiles := c.Tiles()
	tiles.Set(image.Pt(0, 0), Beach)
	got, _ = c.Get(image.Pt(0, 0))
	assert.Equal(t, Grass, got, "Tiles returns a copy")
}
