package tilemap

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"
)

// Paint sets every loaded tile whose center lies within radius world units
// of center to t, across chunk borders, and returns the number of tiles
// changed. Chunks that are not loaded are left alone.
func (m *Manager) Paint(center mgl64.Vec2, radius float64, t Tile) int {
	if radius <= 0 {
		return 0
	}
	r := mgl64.Vec2{radius, radius}
	brush := Rect{Min: center.Sub(r), Max: center.Add(r)}
	lo := ChunkFromWorld(brush.Min)
	hi := ChunkFromWorld(brush.Max)
	r2 := radius * radius

	painted := 0
	for cx := lo.X; cx <= hi.X; cx++ {
		for cy := lo.Y; cy <= hi.Y; cy++ {
			c, ok := m.chunks[ChunkID{X: cx, Y: cy}]
			if !ok || !c.ID.ToWorldRect().Intersects(brush) {
				continue
			}
			for x := 0; x < ChunkTiles; x++ {
				for y := 0; y < ChunkTiles; y++ {
					pos := image.Pt(x, y)
					d := TileCenter(c.ID, pos).Sub(center)
					if d.Dot(d) > r2 {
						continue
					}
					if old, _ := c.Get(pos); old != t {
						c.Set(pos, t)
						painted++
					}
				}
			}
		}
	}
	return painted
}
