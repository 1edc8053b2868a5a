package orderviewer

import (
	"fmt"
	"io"

	"github.com/goliatone/go-orderviewer/pkg/i18n"
	rendertemplate "github.com/goliatone/go-orderviewer/pkg/render/template"
	"github.com/goliatone/go-orderviewer/pkg/render/template/gotemplate"
	"github.com/goliatone/go-orderviewer/pkg/sanitize"
	"github.com/goliatone/go-orderviewer/pkg/themes"
)

const (
	componentTemplate = "templates/viewer"
	pageTemplate      = "templates/page"

	// PrettyJSONFilter is the template filter the viewer template formats the
	// order body with. Custom renderers must provide it.
	PrettyJSONFilter = "pretty_json"
)

var defaultCopy = map[string]string{
	i18n.KeyHeading:       "Просмотр заказа",
	i18n.KeyPlaceholder:   "Введите ID заказа",
	i18n.KeySubmit:        "Получить заказ",
	i18n.KeyResultHeading: "Данные заказа:",
}

// Renderer turns viewer snapshots into HTML.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	translator i18n.Translator
	locale     string
}

// NewRenderer builds a renderer from opts, defaulting to the embedded pongo2
// templates. Copy, locale, theme, and logo do not change per request and are
// installed once as template globals.
func NewRenderer(opts Options) (*Renderer, error) {
	templates := opts.Templates
	if templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(TemplatesFS()),
			gotemplate.WithExtension(".tpl"),
			gotemplate.WithFilters(map[string]gotemplate.Filter{
				PrettyJSONFilter: prettyJSONFilter,
			}),
		)
		if err != nil {
			return nil, fmt.Errorf("orderviewer: configure template renderer: %w", err)
		}
		templates = engine
	}

	r := &Renderer{
		templates:  templates,
		translator: opts.Translator,
		locale:     opts.Locale,
	}

	globals := map[string]any{
		"locale": r.locale,
		"copy":   r.copy(),
		"theme":  themes.PageContext(opts.Theme),
		"logo":   sanitize.Icon(opts.LogoSVG),
	}
	if err := templates.GlobalContext(globals); err != nil {
		return nil, fmt.Errorf("orderviewer: template globals: %w", err)
	}
	return r, nil
}

// RenderComponent writes the component fragment: heading, form, and the
// error paragraph or result block.
func (r *Renderer) RenderComponent(snapshot Snapshot, routes Routes, out io.Writer) error {
	if _, err := r.templates.RenderTemplate(componentTemplate, r.componentData(snapshot, routes), out); err != nil {
		return fmt.Errorf("orderviewer: render component: %w", err)
	}
	return nil
}

// RenderPage writes a full HTML document around the component.
func (r *Renderer) RenderPage(snapshot Snapshot, routes Routes, out io.Writer) error {
	component, err := r.templates.RenderTemplate(componentTemplate, r.componentData(snapshot, routes))
	if err != nil {
		return fmt.Errorf("orderviewer: render component: %w", err)
	}

	data := map[string]any{
		"routes":    routes.templateData(),
		"component": component,
	}
	if _, err := r.templates.RenderTemplate(pageTemplate, data, out); err != nil {
		return fmt.Errorf("orderviewer: render page: %w", err)
	}
	return nil
}

func (r *Renderer) componentData(snapshot Snapshot, routes Routes) map[string]any {
	state := snapshot.State
	message, hasError := state.Message()
	body, hasData := state.Data()

	return map[string]any{
		"viewer": map[string]any{
			"identifier": snapshot.Identifier,
			"state":      state.Kind().String(),
			"has_error":  hasError,
			"error":      message,
			"has_data":   hasData,
			"body":       string(body),
		},
		"routes": routes.templateData(),
	}
}

func prettyJSONFilter(input any, _ any) (any, error) {
	body, _ := input.(string)
	return FormatJSON([]byte(body)), nil
}

func (r *Renderer) copy() map[string]any {
	return map[string]any{
		"heading":        r.translate(i18n.KeyHeading),
		"placeholder":    r.translate(i18n.KeyPlaceholder),
		"submit":         r.translate(i18n.KeySubmit),
		"result_heading": r.translate(i18n.KeyResultHeading),
	}
}

func (r *Renderer) translate(key string) string {
	return i18n.Translate(r.translator, r.locale, key, defaultCopy[key])
}
