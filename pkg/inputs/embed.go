package inputs

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded control templates so callers can extend
// or replace them while keeping the shipped bundle as fallback.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
