// Command mapgen renders a square block of chunks to a PNG preview without
// opening a window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strconv"
	"strings"

	"Archipelago/tilemap"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

type options struct {
	gen    tilemap.GenerateConf
	refine tilemap.RefineConf
	chunks int
	px     int
}

// render draws chunks*chunks chunks centered on the origin, one pixel per
// tile, then scales by px.
func render(opts options) (*image.RGBA, error) {
	if opts.chunks <= 0 {
		return nil, fmt.Errorf("chunks must be positive, got %d", opts.chunks)
	}
	side := opts.chunks * tilemap.ChunkTiles
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	first := -opts.chunks / 2
	field := tilemap.NewNoiseField(opts.gen)

	var g errgroup.Group
	for cx := 0; cx < opts.chunks; cx++ {
		for cy := 0; cy < opts.chunks; cy++ {
			id := tilemap.ChunkID{X: first + cx, Y: first + cy}
			ox, oy := cx*tilemap.ChunkTiles, cy*tilemap.ChunkTiles
			g.Go(func() error {
				grid := tilemap.NewGrid()
				tilemap.GenerateInto(field, opts.gen, id, grid)
				tilemap.Refine(grid, opts.refine)
				grid.Each(func(pos image.Point, t tilemap.Tile) {
					img.SetRGBA(ox+pos.X, oy+pos.Y, t.Color())
				})
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.px <= 1 {
		return img, nil
	}
	scaled := image.NewRGBA(image.Rect(0, 0, side*opts.px, side*opts.px))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
	return scaled, nil
}

// parseOptions reads the flags in args, with ARCHIPELAGO_* variables from
// getenv as defaults. It returns the options and the output path.
func parseOptions(args []string, getenv func(string) string) (options, string, error) {
	env := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv("ARCHIPELAGO_" + key)); v != "" {
			return v
		}
		return fallback
	}
	def := tilemap.DefaultGenerateConf()
	scaleDef, err := strconv.ParseFloat(env("CONTINENT_SCALE", strconv.FormatFloat(def.ContinentScale, 'g', -1, 64)), 64)
	if err != nil {
		return options{}, "", fmt.Errorf("ARCHIPELAGO_CONTINENT_SCALE: %w", err)
	}

	fs := flag.NewFlagSet("mapgen", flag.ContinueOnError)
	seed := fs.String("seed", env("SEED", strconv.FormatUint(uint64(def.Seed), 10)), "world seed (decimal or 0x hex)")
	scale := fs.Float64("scale", scaleDef, "continent scale in [0, 1]")
	noise := fs.String("noise", env("NOISE", def.Noise.String()), "noise kind: perlin or simplex")
	chunks := fs.Int("chunks", 8, "chunks per side")
	refine := fs.Int("refine", tilemap.DefaultRefineConf().MaxPasses, "refinement passes, -1 runs to a fixed point")
	px := fs.Int("px", 1, "pixels per tile")
	out := fs.String("out", "map.png", "output PNG")
	if err := fs.Parse(args); err != nil {
		return options{}, "", err
	}

	s, err := strconv.ParseUint(*seed, 0, 32)
	if err != nil {
		return options{}, "", fmt.Errorf("invalid seed %q: %w", *seed, err)
	}
	if *scale < 0 || *scale > 1 {
		return options{}, "", fmt.Errorf("continent scale %v outside [0, 1]", *scale)
	}
	kind, err := tilemap.ParseNoiseKind(*noise)
	if err != nil {
		return options{}, "", err
	}
	rc := tilemap.RefineConf{MaxPasses: *refine}
	if *refine < 0 {
		rc = tilemap.UntilStable()
	}
	return options{
		gen:    tilemap.GenerateConf{Seed: uint32(s), ContinentScale: *scale, Noise: kind},
		refine: rc,
		chunks: *chunks,
		px:     *px,
	}, *out, nil
}

// writePNG encodes img to path. A failed close is reported, since it can
// mean the file was not fully written.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func main() {
	opts, out, err := parseOptions(os.Args[1:], os.Getenv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("mapgen: %v", err)
	}

	img, err := render(opts)
	if err != nil {
		log.Fatalf("mapgen: %v", err)
	}
	if err := writePNG(out, img); err != nil {
		log.Fatalf("mapgen: %v", err)
	}
	log.Printf("mapgen: wrote %s (%dx%d)", out, img.Bounds().Dx(), img.Bounds().Dy())
}
