// Package themes turns go-theme manifests into the styling context rendered
// into the order viewer page.
package themes

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

const (
	// DefaultName is the name of the built-in manifest.
	DefaultName = "orderviewer"
	// StylesheetAsset is the asset key looked up for an optional stylesheet.
	StylesheetAsset = "orderviewer.stylesheet"
)

// DefaultManifest returns the built-in light theme with a dark variant.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":      "#1f6feb",
			"error":      "#d1242f",
			"surface":    "#ffffff",
			"text":       "#1f2328",
			"font":       "system-ui, sans-serif",
			"code-bg":    "#f6f8fa",
			"radius":     "6px",
			"max-width":  "48rem",
			"field-line": "#d0d7de",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand":      "#58a6ff",
					"error":      "#ff7b72",
					"surface":    "#0d1117",
					"text":       "#e6edf3",
					"code-bg":    "#161b22",
					"field-line": "#30363d",
				},
			},
		},
	}
}

// FromManifest resolves manifest and variant into a renderer config. Variant
// tokens, templates, and asset files override the base manifest; every token
// is also exposed as a "--token" CSS variable.
func FromManifest(manifest *theme.Manifest, variant string) (*theme.RendererConfig, error) {
	if manifest == nil {
		return nil, errors.New("themes: manifest is nil")
	}
	variant = strings.TrimSpace(variant)

	tokens := copyStringMap(manifest.Tokens)
	partials := copyStringMap(manifest.Templates)
	prefix := manifest.Assets.Prefix
	files := copyStringMap(manifest.Assets.Files)

	if variant != "" {
		v, ok := manifest.Variants[variant]
		if !ok {
			return nil, fmt.Errorf("themes: manifest %q has no variant %q", manifest.Name, variant)
		}
		tokens = mergeStringMap(tokens, v.Tokens)
		partials = mergeStringMap(partials, v.Templates)
		files = mergeStringMap(files, v.Assets.Files)
		if strings.TrimSpace(v.Assets.Prefix) != "" {
			prefix = v.Assets.Prefix
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	return &theme.RendererConfig{
		Theme:    manifest.Name,
		Variant:  variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: assetResolver(prefix, files),
	}, nil
}

// Page is the template-facing view of a renderer config.
type Page struct {
	Name         string `json:"name,omitempty"`
	Variant      string `json:"variant,omitempty"`
	CSSVarsStyle string `json:"css_vars,omitempty"`
	Stylesheet   string `json:"stylesheet,omitempty"`
}

// PageContext builds the page styling context. A nil config yields an empty
// Page.
func PageContext(cfg *theme.RendererConfig) Page {
	if cfg == nil {
		return Page{}
	}
	page := Page{
		Name:         cfg.Theme,
		Variant:      cfg.Variant,
		CSSVarsStyle: cssVarsStyle(cfg.CSSVars),
	}
	if cfg.AssetURL != nil {
		page.Stylesheet = cfg.AssetURL(StylesheetAsset)
	}
	return page
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		file, ok := files[key]
		if !ok || strings.TrimSpace(file) == "" {
			return ""
		}
		if strings.HasPrefix(file, "/") || strings.Contains(file, "://") {
			return file
		}
		if prefix == "" {
			return file
		}
		return path.Join(prefix, file)
	}
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func mergeStringMap(base, overrides map[string]string) map[string]string {
	if len(overrides) == 0 {
		return base
	}
	if base == nil {
		base = make(map[string]string, len(overrides))
	}
	for key, value := range overrides {
		base[key] = value
	}
	return base
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
