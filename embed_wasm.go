//go:build js && wasm

package main

import (
	"embed"
	"io/fs"
)

// The browser has no filesystem, so the tile set ships inside the binary.
//
//go:embed all:assets
var embeddedAssets embed.FS

func assetFS() fs.FS {
	return embeddedAssets
}
