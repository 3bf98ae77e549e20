// Package template defines the engine-agnostic seam input renderers draw
// their markup through. The pongo2tpl subpackage provides the shipped
// implementation.
package template

import "io"

// Renderer abstracts the template engine behind the built-in inputs.
// Implementations must be safe for concurrent use once constructed.
type Renderer interface {
	// Render dispatches on the argument: template content (contains "{{"
	// or "{%") renders inline, anything else is treated as a file name.
	Render(name string, data map[string]any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data map[string]any, out ...io.Writer) (string, error)
	RenderString(content string, data map[string]any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data map[string]any) error
}
