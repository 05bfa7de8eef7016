package page

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded document layout for consumers that want
// the default shell.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
