package main

import (
	"log"
	"math"
	"os"

	"Archipelago/internal/config"
	"Archipelago/internal/view"
	"Archipelago/tilemap"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// Pan speed in screen pixels per tick.
	PanSpeed = 8.0
	// Zoom factor per wheel notch.
	WheelZoom = 1.1
)

type Game struct {
	cfg config.Config

	// Game state
	gameState GameState
	worldMenu *WorldMenu

	// Systems
	camera   *view.Camera
	chunks   *tilemap.Manager
	renderer *ChunkRenderer
	ui       *UI

	// Last viewport sent to the chunk manager
	lastView tilemap.Viewport
	synced   bool

	// Right mouse drag
	dragging   bool
	dragX      int
	dragY      int
	hoverChunk tilemap.ChunkID

	// Debug
	showDebug      bool
	showWireframes bool
}

// Update game logic
func (g *Game) Update() error {
	switch g.gameState {
	case StateWorldMenu:
		next, apply := g.worldMenu.Update()
		if apply {
			gen, refine := g.worldMenu.Settings()
			stats := g.chunks.Reconfigure(gen, refine)
			g.ui.SetStats(stats)
			g.ui.AddNotification("World regenerated")
			log.Printf("Regenerated world: %s", stats)
		}
		g.gameState = next

	case StateWorld:
		if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
			g.worldMenu = NewWorldMenu(g.chunks.GenerateConf(), g.chunks.RefineConf())
			g.gameState = StateWorldMenu
			break
		}
		g.handleDebugInputs()
		g.updateCamera()
		g.updateBrush()
	}

	g.syncChunks()
	g.renderer.Refresh(g.chunks, g.camera)
	g.ui.Update()
	return nil
}

func (g *Game) handleDebugInputs() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showWireframes = !g.showWireframes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showDebug = !g.showDebug
	}
}

func (g *Game) updateCamera() {
	var d mgl64.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		d[0] -= PanSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		d[0] += PanSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		d[1] -= PanSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		d[1] += PanSpeed
	}
	if d != (mgl64.Vec2{}) {
		g.camera.Pan(d)
	}

	cx, cy := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		if g.dragging {
			g.camera.Pan(mgl64.Vec2{float64(g.dragX - cx), float64(g.dragY - cy)})
		}
		g.dragging = true
		g.dragX, g.dragY = cx, cy
	} else {
		g.dragging = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.camera.ZoomAt(math.Pow(WheelZoom, wy), mgl64.Vec2{float64(cx), float64(cy)})
	}
}

func (g *Game) updateBrush() {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.ui.CycleBrush(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.ui.CycleBrush(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.ui.ResizeBrush(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.ui.ResizeBrush(1)
	}

	cx, cy := ebiten.CursorPosition()
	world := g.camera.ScreenToWorld(mgl64.Vec2{float64(cx), float64(cy)})
	g.hoverChunk = tilemap.ChunkFromWorld(world)
	t, ok := g.chunks.TileAt(world)
	g.ui.SetHover(g.hoverChunk, t, ok)

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.chunks.Paint(world, g.ui.BrushRadius(), g.ui.BrushTile())
	}
}

// syncChunks hands the viewport to the chunk manager when it moved or a
// load budget left chunks waiting.
func (g *Game) syncChunks() {
	v := g.camera.Viewport()
	if g.synced && v == g.lastView && g.chunks.Pending() == 0 {
		return
	}
	g.ui.SetStats(g.chunks.UpdateVisibility(0, v))
	g.lastView = v
	g.synced = true
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(tilemap.WaterDeep.Color())
	g.renderer.Draw(screen, g.chunks, g.camera)

	if g.showWireframes {
		DrawWireframes(screen, g.chunks, g.camera, g.hoverChunk)
	}
	if g.gameState == StateWorldMenu {
		g.worldMenu.Draw(screen)
		return
	}
	g.ui.Draw(screen, g)
}

func (g *Game) Layout(w, h int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Archipelago")

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		if err != ebiten.Termination {
			log.Fatal(err)
		}
	}
}
