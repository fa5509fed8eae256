package scaffold

import (
	"embed"
	"io/fs"
)

//go:embed assets/*.tpl
var embeddedAssets embed.FS

// EmbeddedFS returns the bundled scaffold assets (README and project
// metadata templates).
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// Default constructs an engine over the bundled assets.
func Default() (*Engine, error) {
	return New(WithFS(EmbeddedFS()))
}
