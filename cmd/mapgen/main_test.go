package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"Archipelago/tilemap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMatchesGenerate(t *testing.T) {
	opts := options{gen: tilemap.DefaultGenerateConf(), chunks: 2, px: 1}
	img, err := render(opts)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2*tilemap.ChunkTiles, 2*tilemap.ChunkTiles), img.Bounds())

	// The origin chunk lands in the bottom right quadrant.
	grid := tilemap.Generate(opts.gen, tilemap.ChunkID{})
	grid.Each(func(pos image.Point, tile tilemap.Tile) {
		got := img.RGBAAt(tilemap.ChunkTiles+pos.X, tilemap.ChunkTiles+pos.Y)
		require.Equal(t, tile.Color(), got, "%v", pos)
	})
}

func TestRenderScales(t *testing.T) {
	img, err := render(options{gen: tilemap.DefaultGenerateConf(), chunks: 1, px: 3})
	require.NoError(t, err)
	assert.Equal(t, 3*tilemap.ChunkTiles, img.Bounds().Dx())
	assert.Equal(t, img.RGBAAt(0, 0), img.RGBAAt(2, 2))
}

func TestRenderRejectsEmpty(t *testing.T) {
	_, err := render(options{chunks: 0})
	assert.Error(t, err)
}

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseOptionsEnvironment(t *testing.T) {
	env := envMap(map[string]string{
		"ARCHIPELAGO_SEED":            "0x10",
		"ARCHIPELAGO_CONTINENT_SCALE": "0.3",
		"ARCHIPELAGO_NOISE":           "simplex",
	})
	opts, out, err := parseOptions(nil, env)
	require.NoError(t, err)
	assert.Equal(t, tilemap.GenerateConf{Seed: 16, ContinentScale: 0.3, Noise: tilemap.NoiseSimplex}, opts.gen)
	assert.Equal(t, "map.png", out)

	opts, out, err = parseOptions([]string{"-scale", "0.8", "-refine", "-1", "-out", "x.png"}, env)
	require.NoError(t, err)
	assert.Equal(t, 0.8, opts.gen.ContinentScale)
	assert.Equal(t, tilemap.UntilStable(), opts.refine)
	assert.Equal(t, "x.png", out)

	_, _, err = parseOptions(nil, envMap(map[string]string{"ARCHIPELAGO_CONTINENT_SCALE": "big"}))
	assert.ErrorContains(t, err, "ARCHIPELAGO_CONTINENT_SCALE")
	_, _, err = parseOptions([]string{"-scale", "2"}, envMap(nil))
	assert.Error(t, err)
}

func TestWritePNG(t *testing.T) {
	img, err := render(options{gen: tilemap.DefaultGenerateConf(), chunks: 1, px: 1})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "map.png")
	require.NoError(t, writePNG(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	got, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), got.Bounds())

	err = writePNG(filepath.Join(t.TempDir(), "missing", "map.png"), img)
	assert.Error(t, err)
}
