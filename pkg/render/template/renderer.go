package template

import (
	"io"
)

// TemplateRenderer is the seam the order viewer renders through. The default
// implementation lives in the gotemplate subpackage.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	// GlobalContext merges data into the values every template sees. View
	// data passed to RenderTemplate wins over globals with the same key.
	GlobalContext(data any) error
}
