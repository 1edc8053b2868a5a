package orders

import (
	"strings"
)

const (
	// DefaultBaseURL is the local order service address.
	DefaultBaseURL = "http://localhost:8080"
	// DefaultPathTemplate is the order lookup route of the order service.
	DefaultPathTemplate = "/orders/{id}"
)

// Endpoint locates the order lookup on the remote service.
type Endpoint struct {
	BaseURL      string
	PathTemplate string
}

// DefaultEndpoint returns the endpoint of a locally running order service.
func DefaultEndpoint() Endpoint {
	return Endpoint{
		BaseURL:      DefaultBaseURL,
		PathTemplate: DefaultPathTemplate,
	}
}

// Normalize fills empty fields with defaults and trims whitespace.
func (e Endpoint) Normalize() Endpoint {
	e.BaseURL = strings.TrimSpace(e.BaseURL)
	e.PathTemplate = strings.TrimSpace(e.PathTemplate)
	if e.BaseURL == "" {
		e.BaseURL = DefaultBaseURL
	}
	if e.PathTemplate == "" {
		e.PathTemplate = DefaultPathTemplate
	}
	if !strings.HasPrefix(e.PathTemplate, "/") {
		e.PathTemplate = "/" + e.PathTemplate
	}
	return e
}

// URL builds the lookup URL for identifier. The identifier is inserted
// verbatim, without escaping, in place of the first path parameter. A
// template without a parameter gets the identifier appended.
func (e Endpoint) URL(identifier string) string {
	e = e.Normalize()
	base := strings.TrimRight(e.BaseURL, "/")

	path := e.PathTemplate
	start := strings.Index(path, "{")
	end := strings.Index(path, "}")
	if start < 0 || end < start {
		return base + strings.TrimRight(path, "/") + "/" + identifier
	}
	return base + path[:start] + identifier + path[end+1:]
}
