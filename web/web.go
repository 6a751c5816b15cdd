// Package web holds the static assets served next to the API. `make wasm`
// drops main.wasm and wasm_exec.js into static/ before the server is built.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed static
var static embed.FS

// Assets returns the static files rooted at static/.
func Assets() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Dir serves the assets from a directory on disk, so edits show up on the next
// request without rebuilding the server.
func Dir(dir string) (fs.FS, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("assets dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets dir %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}
