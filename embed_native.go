//go:build !js || !wasm

package main

import "io/fs"

// Native builds read assets from the working directory.
func assetFS() fs.FS {
	return nil
}
