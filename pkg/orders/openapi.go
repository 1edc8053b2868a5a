package orders

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// EndpointFromOpenAPI derives the order lookup endpoint from an OpenAPI
// document. When operationID is empty the first GET path under /orders/ with
// a single path parameter is used. The base URL comes from the first server
// entry and falls back to DefaultBaseURL.
func EndpointFromOpenAPI(ctx context.Context, raw []byte, operationID string) (Endpoint, error) {
	if len(raw) == 0 {
		return Endpoint{}, errors.New("orders: openapi document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return Endpoint{}, fmt.Errorf("orders: load openapi document: %w", err)
	}
	if doc.Paths == nil || doc.Paths.Len() == 0 {
		return Endpoint{}, ErrEndpointNotFound
	}

	paths := make([]string, 0, doc.Paths.Len())
	for path := range doc.Paths.Map() {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	operationID = strings.TrimSpace(operationID)
	selected := ""
	for _, path := range paths {
		item := doc.Paths.Value(path)
		if item == nil || item.Get == nil {
			continue
		}
		if operationID != "" {
			if item.Get.OperationID == operationID {
				selected = path
				break
			}
			continue
		}
		if strings.HasPrefix(path, "/orders/") && strings.Count(path, "{") == 1 {
			selected = path
			break
		}
	}
	if selected == "" {
		return Endpoint{}, ErrEndpointNotFound
	}

	endpoint := Endpoint{PathTemplate: selected}
	if len(doc.Servers) > 0 && doc.Servers[0] != nil {
		endpoint.BaseURL = doc.Servers[0].URL
	}
	return endpoint.Normalize(), nil
}

// LoadEndpointFile reads an OpenAPI document from disk and derives the
// endpoint from it.
func LoadEndpointFile(ctx context.Context, path, operationID string) (Endpoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Endpoint{}, fmt.Errorf("orders: read openapi document: %w", err)
	}
	return EndpointFromOpenAPI(ctx, data, operationID)
}
