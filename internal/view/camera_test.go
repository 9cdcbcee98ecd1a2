package view

import (
	"testing"

	"Archipelago/tilemap"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(800, 600)
	c.Center = mgl64.Vec2{1000, -250}
	c.SetZoom(2)

	assert.Equal(t, c.Center, c.ScreenToWorld(mgl64.Vec2{400, 300}))
	assert.Equal(t, mgl64.Vec2{950, -250}, c.ScreenToWorld(mgl64.Vec2{300, 300}))

	p := mgl64.Vec2{1234.5, -100}
	assert.True(t, p.ApproxEqual(c.ScreenToWorld(c.WorldToScreen(p))))
}

func TestCameraZoomClamped(t *testing.T) {
	c := NewCamera(800, 600)
	c.SetZoom(100)
	assert.Equal(t, MaxZoom, c.Zoom())
	c.SetZoom(0)
	assert.Equal(t, MinZoom, c.Zoom())
	for i := 0; i < 50; i++ {
		c.ZoomAt(0.5, mgl64.Vec2{})
	}
	assert.Equal(t, MinZoom, c.Zoom())
}

func TestCameraZoomAtKeepsAnchor(t *testing.T) {
	c := NewCamera(800, 600)
	anchor := mgl64.Vec2{700, 100}
	before := c.ScreenToWorld(anchor)
	c.ZoomAt(1.5, anchor)
	assert.True(t, before.ApproxEqualThreshold(c.ScreenToWorld(anchor), 1e-9))
}

func TestCameraPanAndViewport(t *testing.T) {
	c := NewCamera(800, 600)
	c.SetZoom(0.5)
	c.Pan(mgl64.Vec2{100, -50})
	assert.Equal(t, mgl64.Vec2{200, -100}, c.Center)

	v := c.Viewport()
	assert.Equal(t, tilemap.Viewport{Center: c.Center, Size: mgl64.Vec2{800, 600}, Scale: 2}, v)
	r := v.Rect()
	assert.Equal(t, mgl64.Vec2{-600, -700}, r.Min)
	assert.Equal(t, mgl64.Vec2{1000, 500}, r.Max)
}

func TestCameraShown(t *testing.T) {
	c := NewCamera(800, 600)
	shown := c.Shown()
	assert.Equal(t, Chunks{Lo: tilemap.ChunkID{X: -1, Y: -1}, Hi: tilemap.ChunkID{X: 1, Y: 0}}, shown)
	assert.Equal(t, 6, shown.Len())
	assert.True(t, shown.Contains(tilemap.ChunkID{X: 1, Y: -1}))
	assert.False(t, shown.Contains(tilemap.ChunkID{X: 2, Y: 0}))
	assert.False(t, shown.Contains(tilemap.ChunkID{X: 0, Y: 1}))
}

func TestCameraTilePixels(t *testing.T) {
	c := NewCamera(800, 600)
	assert.Equal(t, tilemap.TileSize, c.TilePixels())
	c.SetZoom(DetailZoom)
	assert.Equal(t, tilemap.TileSize, c.TilePixels())
	c.SetZoom(DetailZoom * 0.99)
	assert.Equal(t, 1, c.TilePixels())
}

// Chunk images exist only for shown chunks, so their memory must stay small
// at every zoom, including fully zoomed out on a large window.
func TestShownChunkImagesStayBounded(t *testing.T) {
	const budget = 32 << 20
	c := NewCamera(1280, 720)
	centers := []mgl64.Vec2{{0, 0}, {199, -1}, {-12345.5, 777.25}}
	for z := MinZoom; z <= MaxZoom; z *= 1.1 {
		c.SetZoom(z)
		for _, center := range centers {
			c.Center = center
			side := tilemap.ChunkTiles * c.TilePixels()
			bytes := c.Shown().Len() * side * side * 4
			assert.LessOrEqual(t, bytes, budget, "zoom %.3f at %v", z, center)
		}
	}

	c.SetZoom(MinZoom)
	c.Center = mgl64.Vec2{}
	assert.Less(t, c.Shown().Len(), 41*27, "the loading margin is never drawn")
}
