package orderviewer

import "net/http"

// Component bundles the viewer configuration, its renderer, and the
// per-browser session store behind a mountable set of routes.
type Component struct {
	opts     Options
	fetcher  Fetcher
	renderer *Renderer
	sessions Sessions
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) (*Component, error) {
	opts := NewOptions(fns...)

	renderer, err := NewRenderer(opts)
	if err != nil {
		return nil, err
	}

	sessions := opts.Sessions
	if sessions == nil {
		sessions = NewMemorySessions(opts.SessionTTL)
	}

	return &Component{
		opts:     opts,
		fetcher:  fetcherFor(opts),
		renderer: renderer,
		sessions: sessions,
	}, nil
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return NewOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// NewViewer returns a fresh viewer sharing the component's fetcher.
func (c *Component) NewViewer() *Viewer {
	return newViewer(c.opts, c.fetcher)
}

func (c *Component) Renderer() *Renderer {
	return c.renderer
}

// Handler serves the component on its own mux rooted at "/".
func (c *Component) Handler() http.Handler {
	mux := http.NewServeMux()
	_, _ = c.RegisterRoutes(mux, "/")
	return mux
}

// RegisterRoutes registers the page, submit, identifier, and asset handlers
// under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (Routes, error) {
	routes := MountRoutes(basePath, c.opts.RoutePath)
	if err := registerRoutes(mux, routes, &handlers{component: c, routes: routes}); err != nil {
		return Routes{}, err
	}
	return routes, nil
}
