package loading

import (
	"io/fs"

	"github.com/goliatone/go-loading/pkg/catalog"
	"github.com/goliatone/go-loading/pkg/renderers/page"
)

// EmbeddedTemplates exposes the built-in page renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return page.TemplatesFS()
}

// EmbeddedCatalog exposes the bundled variant metadata documents in the
// format pkg/catalog.LoadFS understands.
func EmbeddedCatalog() fs.FS {
	return catalog.EmbeddedFS()
}
