package views

import (
	"embed"
	"io/fs"
)

//go:embed assets
var assetsFS embed.FS

// Assets exposes the static files under /assets.
func Assets() fs.FS {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
