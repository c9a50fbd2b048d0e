package promptgen

import (
	"io/fs"

	"github.com/goliatone/go-promptgen/pkg/renderers/html"
)

// EmbeddedTemplates exposes the built-in HTML screen templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
