// Command tilegen turns the typed tiles of a Tiled tile set into a Go
// enumeration for the tilemap package.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// Tiles the generator and refinement rules refer to by name.
var requiredTiles = []string{
	"grass", "grass_1", "grass_2",
	"beach", "beach_top", "beach_top_left", "beach_top_right",
	"beach_bottom", "beach_bottom_left", "beach_bottom_right",
	"beach_left", "beach_right",
	"water_deep", "water_shallow",
	"void",
}

var outputTemplate = template.Must(template.New("tiles").Parse(`// Code generated by tilegen from {{.Source}}; DO NOT EDIT.

package {{.Package}}

import "strconv"

const (
{{- range .Tiles}}
	{{.Ident}} {{$.Type}} = {{.ID}}
{{- end}}
)

// {{.Type}}Count is the number of typed tiles in the tile set.
const {{.Type}}Count = {{len .Tiles}}

// All lists every tile type in tile-set order.
var All = [{{.Type}}Count]{{.Type}}{
{{- range .Tiles}}
	{{.Ident}},
{{- end}}
}

// TilesetPath returns the path of the tile set image.
func TilesetPath() string {
	return {{printf "%q" .Image}}
}

func (t {{.Type}}) String() string {
	switch t {
{{- range .Tiles}}
	case {{.Ident}}:
		return {{printf "%q" .Name}}
{{- end}}
	}
	return "{{.Type}}(" + strconv.Itoa(int(t)) + ")"
}
`))

type templateData struct {
	Source  string
	Package string
	Type    string
	Image   string
	Tiles   []tileType
}

func generate(data templateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := outputTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return src, nil
}

func main() {
	tsx := flag.String("tsx", "assets/sprites/tiles.tsx", "Tiled tile set to read")
	out := flag.String("out", "tiles_gen.go", "output file")
	root := flag.String("root", ".", "directory asset paths are made relative to")
	pkg := flag.String("pkg", "tilemap", "package name of the output")
	typeName := flag.String("type", "Tile", "name of the tile type")
	required := flag.String("require", strings.Join(requiredTiles, ","), "comma separated tile types that must exist")
	flag.Parse()

	ts, err := loadTileset(*tsx)
	if err != nil {
		log.Fatalf("tilegen: %v", err)
	}
	types, err := ts.types()
	if err != nil {
		log.Fatalf("tilegen: %s: %v", *tsx, err)
	}
	if *required != "" {
		if err := requireTiles(types, strings.Split(*required, ",")); err != nil {
			log.Fatalf("tilegen: %s: %v", *tsx, err)
		}
	}
	img, err := ts.imagePath(*tsx, *root)
	if err != nil {
		log.Fatalf("tilegen: %s: %v", *tsx, err)
	}
	source, err := filepath.Rel(*root, *tsx)
	if err != nil {
		source = *tsx
	}

	src, err := generate(templateData{
		Source:  filepath.ToSlash(source),
		Package: *pkg,
		Type:    *typeName,
		Image:   img,
		Tiles:   types,
	})
	if err != nil {
		log.Fatalf("tilegen: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("tilegen: %v", err)
	}
	log.Printf("tilegen: wrote %d tiles to %s", len(types), *out)
}
