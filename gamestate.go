package main

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"Archipelago/tilemap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type GameState int

const (
	StateWorld GameState = iota
	StateWorldMenu
)

const (
	optSeed = iota
	optScale
	optNoise
	optRefine
	optGenerate
	optBack
	optCount
)

// WorldMenu edits a copy of the world settings. Nothing changes in the
// world until Generate is chosen.
type WorldMenu struct {
	selectedOption int
	animTimer      int

	gen    tilemap.GenerateConf
	refine tilemap.RefineConf
}

func NewWorldMenu(gen tilemap.GenerateConf, refine tilemap.RefineConf) *WorldMenu {
	return &WorldMenu{gen: gen, refine: refine}
}

// Settings returns the edited world settings.
func (wm *WorldMenu) Settings() (tilemap.GenerateConf, tilemap.RefineConf) {
	return wm.gen, wm.refine
}

// Update returns the next state and whether the world must be regenerated.
func (wm *WorldMenu) Update() (GameState, bool) {
	wm.animTimer++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		return StateWorld, false
	}

	// Navigate menu
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		wm.selectedOption = (wm.selectedOption + optCount - 1) % optCount
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		wm.selectedOption = (wm.selectedOption + 1) % optCount
	}

	step := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		step = -1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		step = 1
	}
	if step != 0 {
		wm.adjust(step)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		wm.gen.Seed = rand.Uint32()
	}

	// Select
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		switch wm.selectedOption {
		case optGenerate:
			return StateWorld, true
		case optBack:
			return StateWorld, false
		}
	}

	return StateWorldMenu, false
}

func (wm *WorldMenu) adjust(step int) {
	switch wm.selectedOption {
	case optSeed:
		wm.gen.Seed += uint32(step)
	case optScale:
		v := math.Round((wm.gen.ContinentScale+0.05*float64(step))*100) / 100
		wm.gen.ContinentScale = math.Max(0, math.Min(1, v))
	case optNoise:
		if wm.gen.Noise == tilemap.NoisePerlin {
			wm.gen.Noise = tilemap.NoiseSimplex
		} else {
			wm.gen.Noise = tilemap.NoisePerlin
		}
	case optRefine:
		wm.refine.MaxPasses = max(0, wm.refine.MaxPasses+step)
	}
}

func (wm *WorldMenu) label(i int) string {
	switch i {
	case optSeed:
		return fmt.Sprintf("Seed: %#x", wm.gen.Seed)
	case optScale:
		return fmt.Sprintf("Continent scale: %.2f", wm.gen.ContinentScale)
	case optNoise:
		return "Noise: " + wm.gen.Noise.String()
	case optRefine:
		return fmt.Sprintf("Refine passes: %d", wm.refine.MaxPasses)
	case optGenerate:
		return "Generate"
	case optBack:
		return "Back"
	}
	return ""
}

func (wm *WorldMenu) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Overlay
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{10, 20, 40, 200}, false)

	face := basicfont.Face7x13
	drawScaledText(screen, "WORLD", w/2, 120, 3, face, color.RGBA{120, 200, 255, 255})

	// Menu options
	startY := h / 3
	for i := 0; i < optCount; i++ {
		option := wm.label(i)
		y := startY + i*40
		optionWidth := len(option) * 7
		x := w/2 - optionWidth/2

		if i == wm.selectedOption {
			wave := math.Sin(float64(wm.animTimer)/10) * 3
			vector.DrawFilledRect(screen,
				float32(x-10)+float32(wave), float32(y-15),
				float32(optionWidth+20), 25,
				color.RGBA{40, 90, 160, 200}, false)
			text.Draw(screen, ">", face, x-20+int(wave), y, color.RGBA{255, 200, 100, 255})
			text.Draw(screen, option, face, x, y, color.White)
		} else {
			text.Draw(screen, option, face, x, y, color.RGBA{150, 150, 150, 255})
		}
	}

	hint := "Up/Down: Select | Left/Right: Change | R: Random seed | Enter: Apply | Esc: Back"
	text.Draw(screen, hint, face, w/2-len(hint)*7/2, h-50, color.RGBA{100, 100, 120, 255})
}

// Draw scaled text
func drawScaledText(screen *ebiten.Image, s string, cx, y int, scale float64, face font.Face, clr color.Color) {
	if scale <= 0 {
		return
	}

	// Text dims
	charWidth := 7   // basicfont character width
	charHeight := 13 // basicfont character height
	textWidth := len(s) * charWidth

	textImg := ebiten.NewImage(textWidth+4, charHeight+4)
	text.Draw(textImg, s, face, 2, charHeight, clr)

	scaledWidth := float64(textWidth) * scale
	scaledHeight := float64(charHeight) * scale

	// Shadow
	shadowOp := &ebiten.DrawImageOptions{}
	shadowOp.GeoM.Scale(scale, scale)
	shadowOp.GeoM.Translate(float64(cx)-scaledWidth/2+3, float64(y)-scaledHeight+3)
	shadowOp.ColorScale.Scale(0, 0, 0, 0.5)
	shadowOp.Filter = ebiten.FilterLinear
	screen.DrawImage(textImg, shadowOp)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(cx)-scaledWidth/2, float64(y)-scaledHeight)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(textImg, op)
}
