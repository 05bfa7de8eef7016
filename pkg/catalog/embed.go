package catalog

import (
	"embed"
	"io/fs"
)

//go:embed data/*
var embeddedCatalog embed.FS

// EmbeddedFS returns the bundled catalog documents. Callers may pass this
// filesystem to LoadFS to use the default metadata.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedCatalog, "data")
	if err != nil {
		return embeddedCatalog
	}
	return sub
}
