package template

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.yaml
var embeddedDefinitions embed.FS

// BuiltinFS returns the bundled definition set covering the standard
// library types (feature, data-access, util). Callers may pass this
// filesystem to LoadFS or swap in their own definitions directory.
func BuiltinFS() fs.FS {
	sub, err := fs.Sub(embeddedDefinitions, "templates")
	if err != nil {
		// The embed directive guarantees the subpath exists, so panic is
		// acceptable here.
		panic(err)
	}
	return sub
}

// Builtin loads the bundled definition set.
func Builtin() ([]Definition, error) {
	return LoadFS(BuiltinFS())
}
