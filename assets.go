package main

import (
	"bytes"
	"image"
	_ "image/png" // Register PNG decoder
	"io/fs"
	"log"
	"os"

	"Archipelago/internal/config"
	"Archipelago/internal/view"
	"Archipelago/tilemap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

func loadImage(path string) *ebiten.Image {
	if embedded := assetFS(); embedded != nil {
		data, err := fs.ReadFile(embedded, path)
		if err != nil {
			log.Printf("Warning: Failed to load embedded image %s: %v", path, err)
			return nil
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			log.Printf("Warning: Failed to decode embedded image %s: %v", path, err)
			return nil
		}
		return ebiten.NewImageFromImage(img)
	}
	// Fallback to filesystem
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		log.Printf("Warning: Failed to load image %s: %v", path, err)
		return nil
	}
	return img
}

// loadTileset returns the tile set image, or nil when tiles are drawn as
// flat colors instead.
func loadTileset() *ebiten.Image {
	img := loadImage(tilemap.TilesetPath())
	if img == nil {
		log.Printf("Warning: %s not available, drawing tiles as flat colors", tilemap.TilesetPath())
		return nil
	}
	if img.Bounds().Dx()%tilemap.TileSize != 0 || img.Bounds().Dy()%tilemap.TileSize != 0 {
		log.Printf("Warning: %s is %v, not a multiple of %dpx tiles", tilemap.TilesetPath(), img.Bounds().Size(), tilemap.TileSize)
	}
	return img
}

func NewGame(cfg config.Config) (*Game, error) {
	g := &Game{
		cfg:       cfg,
		gameState: StateWorld,
		camera:    view.NewCamera(cfg.Width, cfg.Height),
		renderer:  NewChunkRenderer(loadTileset()),
		ui:        NewUI(),
		showDebug: cfg.Debug,
	}

	var logger *log.Logger
	if cfg.Verbose {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	chunks, err := tilemap.NewManager(tilemap.Config{
		Generate:        cfg.Generate,
		Refine:          cfg.Refine,
		MaxLoadsPerStep: cfg.MaxLoadsPerStep,
		CacheSize:       cfg.CacheSize,
		Workers:         cfg.Workers,
		Observer:        g.renderer,
		Logger:          logger,
	})
	if err != nil {
		return nil, err
	}
	g.chunks = chunks

	log.Printf("World seed=%#x scale=%.2f noise=%s refine=%d",
		cfg.Generate.Seed, cfg.Generate.ContinentScale, cfg.Generate.Noise, cfg.Refine.MaxPasses)
	return g, nil
}
