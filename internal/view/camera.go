// Package view holds the camera the host moves around the world.
package view

import (
	"math"

	"Archipelago/tilemap"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	MinZoom = 0.1
	MaxZoom = 10.0
)

// Camera maps between screen pixels and world units. Zoom is screen pixels
// per world unit, so 2 shows everything twice as large.
type Camera struct {
	Center mgl64.Vec2
	Screen mgl64.Vec2
	zoom   float64
}

func NewCamera(width, height int) *Camera {
	return &Camera{Screen: mgl64.Vec2{float64(width), float64(height)}, zoom: 1}
}

func (c *Camera) Zoom() float64 {
	return c.zoom
}

// SetZoom clamps z to [MinZoom, MaxZoom].
func (c *Camera) SetZoom(z float64) {
	if math.IsNaN(z) {
		return
	}
	c.zoom = math.Max(MinZoom, math.Min(MaxZoom, z))
}

// ZoomAt multiplies the zoom by factor while keeping the world point under
// screen position anchor fixed.
func (c *Camera) ZoomAt(factor float64, anchor mgl64.Vec2) {
	before := c.ScreenToWorld(anchor)
	c.SetZoom(c.zoom * factor)
	after := c.ScreenToWorld(anchor)
	c.Center = c.Center.Add(before.Sub(after))
}

// Pan moves the camera by d screen pixels.
func (c *Camera) Pan(d mgl64.Vec2) {
	c.Center = c.Center.Add(d.Mul(1 / c.zoom))
}

func (c *Camera) ScreenToWorld(p mgl64.Vec2) mgl64.Vec2 {
	return p.Sub(c.Screen.Mul(0.5)).Mul(1 / c.zoom).Add(c.Center)
}

func (c *Camera) WorldToScreen(p mgl64.Vec2) mgl64.Vec2 {
	return p.Sub(c.Center).Mul(c.zoom).Add(c.Screen.Mul(0.5))
}

// Viewport describes what the camera shows to the chunk manager.
func (c *Camera) Viewport() tilemap.Viewport {
	return tilemap.Viewport{Center: c.Center, Size: c.Screen, Scale: 1 / c.zoom}
}

// DetailZoom is the zoom below which chunk images hold one pixel per tile
// instead of the full tile art.
const DetailZoom = 0.5

// TilePixels is the chunk image resolution, in pixels per tile, for the
// current zoom.
func (c *Camera) TilePixels() int {
	if c.zoom < DetailZoom {
		return 1
	}
	return tilemap.TileSize
}

// Chunks is an inclusive rectangle of chunk ids.
type Chunks struct {
	Lo, Hi tilemap.ChunkID
}

func (r Chunks) Contains(id tilemap.ChunkID) bool {
	return id.X >= r.Lo.X && id.X <= r.Hi.X && id.Y >= r.Lo.Y && id.Y <= r.Hi.Y
}

func (r Chunks) Len() int {
	return (r.Hi.X - r.Lo.X + 1) * (r.Hi.Y - r.Lo.Y + 1)
}

// Shown returns the chunks under the screen, without the loading margin the
// chunk manager adds.
func (c *Camera) Shown() Chunks {
	r := c.Viewport().Rect()
	return Chunks{Lo: tilemap.ChunkFromWorld(r.Min), Hi: tilemap.ChunkFromWorld(r.Max)}
}
