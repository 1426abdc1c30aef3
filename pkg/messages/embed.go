package messages

import (
	"embed"
	"io/fs"
)

//go:embed catalog/*
var embeddedCatalog embed.FS

// EmbeddedFS returns the bundled default message catalog. Callers may pass
// this filesystem to LoadFS, or call Default for the parsed form.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedCatalog, "catalog")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// Default returns the catalog built from the embedded defaults. The embedded
// templates are compiled at build time in practice; a failure here means the
// bundled assets are broken, so panic is acceptable.
func Default() *Catalog {
	cat, err := LoadFS(EmbeddedFS())
	if err != nil {
		panic(err)
	}
	return cat
}
