package main

import (
	"fmt"
	"image/color"

	"Archipelago/internal/view"
	"Archipelago/tilemap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Pool sizes
const (
	MaxNotifications = 8
)

// UI HUD
type UI struct {
	brush *view.Brush

	// Hover readout
	hoverTile  tilemap.Tile
	hoverChunk tilemap.ChunkID
	hoverOK    bool

	// Last streaming step, for the debug overlay
	stats tilemap.StepStats

	// Notifications
	notifications     [MaxNotifications]Notification
	activeNotifyCount int
}

type Notification struct {
	Text   string
	Timer  int
	Active bool // Pool
}

func NewUI() *UI {
	return &UI{brush: view.NewBrush()}
}

func (ui *UI) BrushTile() tilemap.Tile {
	return ui.brush.Tile()
}

// BrushRadius returns the brush radius in world units.
func (ui *UI) BrushRadius() float64 {
	return ui.brush.WorldRadius()
}

func (ui *UI) CycleBrush(step int) {
	ui.AddNotification("Brush: " + ui.brush.Cycle(step).String())
}

func (ui *UI) ResizeBrush(step int) {
	ui.brush.Resize(step)
}

func (ui *UI) SetHover(id tilemap.ChunkID, t tilemap.Tile, ok bool) {
	ui.hoverChunk, ui.hoverTile, ui.hoverOK = id, t, ok
}

func (ui *UI) SetStats(s tilemap.StepStats) {
	ui.stats = s
}

func (ui *UI) Update() {
	// Update notifications (in-place, no allocations)
	for i := 0; i < ui.activeNotifyCount; i++ {
		n := &ui.notifications[i]
		if !n.Active {
			continue
		}
		n.Timer--
		if n.Timer <= 0 {
			n.Active = false
		}
	}
	ui.compactNotifications()
}

func (ui *UI) AddNotification(notificationText string) {
	n := Notification{Text: notificationText, Timer: 180, Active: true}
	if ui.activeNotifyCount < MaxNotifications {
		ui.notifications[ui.activeNotifyCount] = n
		ui.activeNotifyCount++
		return
	}
	// Overwrite oldest
	copy(ui.notifications[:], ui.notifications[1:])
	ui.notifications[MaxNotifications-1] = n
}

func (ui *UI) compactNotifications() {
	writeIdx := 0
	for i := 0; i < ui.activeNotifyCount; i++ {
		if ui.notifications[i].Active {
			if writeIdx != i {
				ui.notifications[writeIdx] = ui.notifications[i]
			}
			writeIdx++
		}
	}
	ui.activeNotifyCount = writeIdx
}

func (ui *UI) Draw(screen *ebiten.Image, g *Game) {
	face := basicfont.Face7x13

	ui.drawBrushPanel(screen, face)
	ui.drawHover(screen, face)
	ui.drawNotifications(screen, face)
	ui.drawControlsHint(screen, face)

	if g.showDebug {
		ui.drawDebug(screen, g)
	}
}

func (ui *UI) drawBrushPanel(screen *ebiten.Image, face font.Face) {
	x, y := float32(screen.Bounds().Dx()-190), float32(12)
	vector.DrawFilledRect(screen, x, y, 178, 44, color.RGBA{0, 0, 0, 170}, false)
	vector.DrawFilledRect(screen, x+8, y+8, 28, 28, ui.BrushTile().Color(), false)
	vector.StrokeRect(screen, x+8, y+8, 28, 28, 1, color.White, false)

	text.Draw(screen, ui.BrushTile().String(), face, int(x)+44, int(y)+20, color.White)
	text.Draw(screen, fmt.Sprintf("radius %d", ui.brush.Radius()), face, int(x)+44, int(y)+36, color.RGBA{180, 180, 180, 255})
}

func (ui *UI) drawHover(screen *ebiten.Image, face font.Face) {
	if !ui.hoverOK {
		return
	}
	msg := fmt.Sprintf("%s  chunk %s", ui.hoverTile, ui.hoverChunk)
	text.Draw(screen, msg, face, screen.Bounds().Dx()-len(msg)*7-12, 76, color.RGBA{255, 255, 200, 255})
}

func (ui *UI) drawNotifications(screen *ebiten.Image, face font.Face) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	startY := h - 60
	for i := 0; i < ui.activeNotifyCount; i++ {
		n := &ui.notifications[i]
		if !n.Active {
			continue
		}
		y := startY - (ui.activeNotifyCount-1-i)*20

		// Fade based on timer
		alpha := 255
		if n.Timer < 30 {
			alpha = int(float64(n.Timer) / 30 * 255)
		}
		x := w/2 - len(n.Text)*7/2
		text.Draw(screen, n.Text, face, x, y, color.RGBA{255, 255, 200, uint8(alpha)})
	}
}

func (ui *UI) drawControlsHint(screen *ebiten.Image, face font.Face) {
	hints := "WASD/Arrows: Pan | Wheel: Zoom | LMB: Paint | Q/E: Tile | [/]: Size | F1: Chunks | F3: Debug | Tab: World"
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	text.Draw(screen, hints, face, w/2-len(hints)*7/2, h-20, color.RGBA{160, 160, 160, 200})
}

func (ui *UI) drawDebug(screen *ebiten.Image, g *Game) {
	conf := g.chunks.GenerateConf()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %0.2f\nTPS: %0.2f\nCamera: %0.1f, %0.1f\nZoom: %0.2f\nChunks: %d (images %d)\nPending: %d\nStep: %s\nSeed: %#x Scale: %0.2f Noise: %s Refine: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		g.camera.Center.X(), g.camera.Center.Y(), g.camera.Zoom(),
		g.chunks.Len(), g.renderer.Live(), g.chunks.Pending(), ui.stats,
		conf.Seed, conf.ContinentScale, conf.Noise, g.chunks.RefineConf().MaxPasses))
}
