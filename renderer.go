package main

import (
	"image"
	"image/color"
	"log"

	"Archipelago/internal/view"
	"Archipelago/tilemap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// chunkImage is what the renderer keeps in Chunk.Handle: an offscreen image
// and its resolution in pixels per tile.
type chunkImage struct {
	img *ebiten.Image
	px  int
}

// ChunkRenderer keeps an offscreen image for each live chunk under the camera
// and redraws it when the chunk's tiles change. Images are released as soon
// as their chunk leaves the screen, and zoomed out views use one pixel per
// tile.
type ChunkRenderer struct {
	Tileset   *ebiten.Image
	TileCache map[tilemap.Tile]*ebiten.Image
	DrawOpts  *ebiten.DrawImageOptions

	ordinals []uint32
	pixels   []byte
	live     int
}

func NewChunkRenderer(tileset *ebiten.Image) *ChunkRenderer {
	return &ChunkRenderer{
		Tileset:   tileset,
		TileCache: make(map[tilemap.Tile]*ebiten.Image),
		DrawOpts:  &ebiten.DrawImageOptions{},
		ordinals:  make([]uint32, tilemap.ChunkTileCount),
		pixels:    make([]byte, 4*tilemap.ChunkTileCount),
	}
}

// ChunkLoaded leaves the chunk without an image; Refresh allocates one once
// the chunk is on screen.
func (r *ChunkRenderer) ChunkLoaded(c *tilemap.Chunk) {
	c.Handle = nil
}

func (r *ChunkRenderer) ChunkEvicted(c *tilemap.Chunk) {
	r.release(c)
}

func (r *ChunkRenderer) release(c *tilemap.Chunk) {
	ci, ok := c.Handle.(*chunkImage)
	if !ok {
		return
	}
	ci.img.Deallocate()
	c.Handle = nil
	r.live--
}

// Refresh brings the images of the chunks under the camera up to date and
// drops the images of chunks that left it. It returns the number of chunks
// redrawn.
func (r *ChunkRenderer) Refresh(m *tilemap.Manager, cam *view.Camera) int {
	shown := cam.Shown()
	px := cam.TilePixels()
	n := 0
	m.Each(func(c *tilemap.Chunk) {
		if !shown.Contains(c.ID) {
			r.release(c)
			return
		}
		dirty := c.TakeDirty()
		ci, ok := c.Handle.(*chunkImage)
		if !ok || ci.px != px {
			r.release(c)
			side := tilemap.ChunkTiles * px
			ci = &chunkImage{img: ebiten.NewImage(side, side), px: px}
			c.Handle = ci
			r.live++
			dirty = true
		}
		if dirty {
			r.redraw(ci, c)
			n++
		}
	})
	return n
}

func (r *ChunkRenderer) redraw(ci *chunkImage, c *tilemap.Chunk) {
	r.ordinals = c.Ordinals(r.ordinals)
	if ci.px == 1 {
		r.redrawFlat(ci.img)
		return
	}

	img := ci.img
	img.Clear()
	for i, ord := range r.ordinals {
		t := tilemap.Tile(ord)
		x := float64(i/tilemap.ChunkTiles) * tilemap.TileSize
		y := float64(i%tilemap.ChunkTiles) * tilemap.TileSize

		if sub := r.tileImage(t); sub != nil {
			r.DrawOpts.GeoM.Reset()
			r.DrawOpts.GeoM.Translate(x, y)
			img.DrawImage(sub, r.DrawOpts)
			continue
		}
		vector.DrawFilledRect(img, float32(x), float32(y), tilemap.TileSize, tilemap.TileSize, t.Color(), false)
	}
}

// redrawFlat writes one palette pixel per tile. Ordinals run x major, pixels
// run y major.
func (r *ChunkRenderer) redrawFlat(img *ebiten.Image) {
	for i, ord := range r.ordinals {
		x, y := i/tilemap.ChunkTiles, i%tilemap.ChunkTiles
		clr := tilemap.Tile(ord).Color()
		o := 4 * (y*tilemap.ChunkTiles + x)
		r.pixels[o], r.pixels[o+1], r.pixels[o+2], r.pixels[o+3] = clr.R, clr.G, clr.B, clr.A
	}
	img.WritePixels(r.pixels)
}

// tileImage returns the tile set cell of t, or nil without a tile set.
func (r *ChunkRenderer) tileImage(t tilemap.Tile) *ebiten.Image {
	if r.Tileset == nil {
		return nil
	}
	if cached, ok := r.TileCache[t]; ok {
		return cached
	}

	// Calculate position in tileset
	cols := r.Tileset.Bounds().Dx() / tilemap.TileSize
	if cols == 0 {
		return nil
	}
	sx := (int(t.Ordinal()) % cols) * tilemap.TileSize
	sy := (int(t.Ordinal()) / cols) * tilemap.TileSize

	var img *ebiten.Image
	if sx+tilemap.TileSize <= r.Tileset.Bounds().Dx() && sy+tilemap.TileSize <= r.Tileset.Bounds().Dy() {
		img = r.Tileset.SubImage(image.Rect(sx, sy, sx+tilemap.TileSize, sy+tilemap.TileSize)).(*ebiten.Image)
	} else {
		log.Printf("Warning: tile %s outside the tile set", t)
	}
	r.TileCache[t] = img
	return img
}

// Draw blits the image of every chunk under the camera.
func (r *ChunkRenderer) Draw(screen *ebiten.Image, m *tilemap.Manager, cam *view.Camera) {
	shown := cam.Shown()
	m.Each(func(c *tilemap.Chunk) {
		ci, ok := c.Handle.(*chunkImage)
		if !ok || !shown.Contains(c.ID) {
			return
		}
		scale := cam.Zoom() * tilemap.TileSize / float64(ci.px)
		p := cam.WorldToScreen(c.ID.ToWorld())
		r.DrawOpts.GeoM.Reset()
		r.DrawOpts.GeoM.Scale(scale, scale)
		r.DrawOpts.GeoM.Translate(p.X(), p.Y())
		screen.DrawImage(ci.img, r.DrawOpts)
	})
}

// DrawWireframes outlines live chunks, highlighting the one under hover.
func DrawWireframes(screen *ebiten.Image, m *tilemap.Manager, cam *view.Camera, hover tilemap.ChunkID) {
	visible := cam.Viewport().Rect()
	size := float32(tilemap.ChunkSize * cam.Zoom())
	m.Each(func(c *tilemap.Chunk) {
		if !c.ID.ToWorldRect().Intersects(visible) {
			return
		}
		p := cam.WorldToScreen(c.ID.ToWorld())
		clr := color.RGBA{255, 255, 255, 90}
		width := float32(1)
		if c.ID == hover {
			clr = color.RGBA{255, 220, 60, 255}
			width = 2
		}
		vector.StrokeRect(screen, float32(p.X()), float32(p.Y()), size, size, width, clr, false)
	})
}

// Live returns the number of chunk images held.
func (r *ChunkRenderer) Live() int {
	return r.live
}
