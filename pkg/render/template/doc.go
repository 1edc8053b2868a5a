// Package template defines the renderer-agnostic template contract used by
// the order viewer component.
package template
