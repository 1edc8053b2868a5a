package orderviewer

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register net/http handlers.
// It is satisfied by *http.ServeMux and chi routers.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Routes lists the paths served by a mounted component.
type Routes struct {
	Page       string
	Submit     string
	Identifier string
	Script     string
	Stylesheet string
}

// MountRoutes derives every component path from basePath and routePath.
func MountRoutes(basePath, routePath string) Routes {
	page := mountPath(basePath, routePath)
	return Routes{
		Page:       page,
		Submit:     joinRoute(page, "submit"),
		Identifier: joinRoute(page, "identifier"),
		Script:     joinRoute(page, "assets/"+ScriptName),
		Stylesheet: joinRoute(page, "assets/"+StylesheetName),
	}
}

func (r Routes) templateData() map[string]any {
	return map[string]any{
		"page":       r.Page,
		"submit":     r.Submit,
		"identifier": r.Identifier,
		"script":     r.Script,
		"stylesheet": r.Stylesheet,
	}
}

// RegisterRoutes mounts a component built from fns under basePath on mux.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (Routes, error) {
	component, err := New(fns...)
	if err != nil {
		return Routes{}, err
	}
	return component.RegisterRoutes(mux, basePath)
}

func registerRoutes(mux Mux, routes Routes, h *handlers) error {
	if mux == nil {
		return fmt.Errorf("orderviewer: missing mux")
	}
	mux.Handle(routes.Page, http.HandlerFunc(h.page))
	mux.Handle(routes.Submit, http.HandlerFunc(h.submit))
	mux.Handle(routes.Identifier, http.HandlerFunc(h.identifier))
	mux.Handle(routes.Script, h.asset(ScriptName))
	mux.Handle(routes.Stylesheet, h.asset(StylesheetName))
	return nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}

func joinRoute(page, segment string) string {
	return strings.TrimRight(page, "/") + "/" + strings.TrimLeft(segment, "/")
}
