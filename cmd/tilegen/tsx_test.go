package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamelCase(t *testing.T) {
	cases := map[string]string{
		"grass":                  "Grass",
		"grass_1":                "Grass1",
		"water_shallow_wave_alt": "WaterShallowWaveAlt",
		"beach-top left":         "BeachTopLeft",
		"3d_tile":                "T3dTile",
		"__":                     "",
	}
	for in, want := range cases {
		assert.Equal(t, want, camelCase(in), in)
	}
}

func TestTilesetTypes(t *testing.T) {
	ts, err := loadTileset("testdata/mini.tsx")
	require.NoError(t, err)
	assert.Equal(t, 8, ts.TileWidth)

	types, err := ts.types()
	require.NoError(t, err)
	assert.Equal(t, []tileType{
		{ID: 0, Name: "grass", Ident: "Grass"},
		{ID: 5, Name: "water_deep", Ident: "WaterDeep"},
		{ID: 9, Name: "beach_top_left", Ident: "BeachTopLeft"},
	}, types)

	img, err := ts.imagePath("testdata/mini.tsx", ".")
	require.NoError(t, err)
	assert.Equal(t, "images/mini.png", img)
}

func TestTilesetRejectsDuplicates(t *testing.T) {
	ts, err := parseTileset(strings.NewReader(`<tileset tilecount="4">
 <tile id="0" type="water_deep"/>
 <tile id="1" type="water-deep"/>
</tileset>`))
	require.NoError(t, err)
	_, err = ts.types()
	assert.ErrorContains(t, err, "WaterDeep")

	ts, err = parseTileset(strings.NewReader(`<tileset tilecount="4"><tile id="7" type="x"/></tileset>`))
	require.NoError(t, err)
	_, err = ts.types()
	assert.ErrorContains(t, err, "outside")

	_, err = ts.imagePath("x.tsx", ".")
	assert.ErrorIs(t, err, errNoImage)
}

func TestRequireTiles(t *testing.T) {
	types := []tileType{{Name: "grass"}, {Name: "void"}}
	assert.NoError(t, requireTiles(types, []string{"void"}))

	err := requireTiles(types, []string{"grass", "beach", "water_deep"})
	require.Error(t, err)
	assert.Equal(t, "missing required tiles: beach, water_deep", err.Error())
}

// The checked in enumeration must be what tilegen produces from the asset.
func TestGeneratedTilesUpToDate(t *testing.T) {
	root := filepath.Join("..", "..")
	tsx := filepath.Join(root, "assets", "sprites", "tiles.tsx")

	ts, err := loadTileset(tsx)
	require.NoError(t, err)
	types, err := ts.types()
	require.NoError(t, err)
	require.NoError(t, requireTiles(types, requiredTiles))
	img, err := ts.imagePath(tsx, root)
	require.NoError(t, err)

	src, err := generate(templateData{
		Source:  "assets/sprites/tiles.tsx",
		Package: "tilemap",
		Type:    "Tile",
		Image:   img,
		Tiles:   types,
	})
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join(root, "tilemap", "tiles_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(src), "run go generate ./tilemap")
}
