package main

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

var errNoImage = errors.New("tile set has no image")

// tileset is the subset of a Tiled .tsx file tilegen reads.
type tileset struct {
	Name       string `xml:"name,attr"`
	TileWidth  int    `xml:"tilewidth,attr"`
	TileHeight int    `xml:"tileheight,attr"`
	TileCount  int    `xml:"tilecount,attr"`
	Columns    int    `xml:"columns,attr"`
	Image      *struct {
		Source string `xml:"source,attr"`
	} `xml:"image"`
	Tiles []struct {
		ID int `xml:"id,attr"`
		// Type was renamed to class in Tiled 1.9.
		Type  string `xml:"type,attr"`
		Class string `xml:"class,attr"`
	} `xml:"tile"`
}

// tileType is one typed tile of the set.
type tileType struct {
	ID    int
	Name  string
	Ident string
}

func parseTileset(r io.Reader) (*tileset, error) {
	var ts tileset
	if err := xml.NewDecoder(r).Decode(&ts); err != nil {
		return nil, fmt.Errorf("decode tsx: %w", err)
	}
	return &ts, nil
}

func loadTileset(path string) (*tileset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ts, err := parseTileset(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ts, nil
}

// types returns the typed tiles sorted by id. Untyped tiles are skipped.
func (ts *tileset) types() ([]tileType, error) {
	var out []tileType
	seen := make(map[string]int)
	for _, t := range ts.Tiles {
		name := t.Type
		if name == "" {
			name = t.Class
		}
		if name == "" {
			continue
		}
		if ts.TileCount > 0 && (t.ID < 0 || t.ID >= ts.TileCount) {
			return nil, fmt.Errorf("tile %q: id %d outside the tile set", name, t.ID)
		}
		ident := camelCase(name)
		if ident == "" {
			return nil, fmt.Errorf("tile %d: type %q has no usable name", t.ID, name)
		}
		if prev, dup := seen[ident]; dup {
			return nil, fmt.Errorf("tiles %d and %d both map to %s", prev, t.ID, ident)
		}
		seen[ident] = t.ID
		out = append(out, tileType{ID: t.ID, Name: name, Ident: ident})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// imagePath resolves the tile set image relative to root, with forward
// slashes so the output is the same on every platform.
func (ts *tileset) imagePath(tsxPath, root string) (string, error) {
	if ts.Image == nil || ts.Image.Source == "" {
		return "", errNoImage
	}
	p := filepath.Join(filepath.Dir(tsxPath), filepath.FromSlash(ts.Image.Source))
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// requireTiles checks that every name in names is a typed tile.
func requireTiles(types []tileType, names []string) error {
	have := make(map[string]bool, len(types))
	for _, t := range types {
		have[t.Name] = true
	}
	var missing []string
	for _, n := range names {
		if !have[n] {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required tiles: %s", strings.Join(missing, ", "))
	}
	return nil
}

// camelCase turns a tile type like "water_deep_wave" into "WaterDeepWave".
func camelCase(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			upper = true
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if b.Len() == 0 && unicode.IsDigit(r) {
				b.WriteByte('T')
			}
			if upper {
				r = unicode.ToUpper(r)
				upper = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
