package orderviewer

import (
	"net/http"
	"strings"
	"time"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-orderviewer/pkg/i18n"
	"github.com/goliatone/go-orderviewer/pkg/orders"
	rendertemplate "github.com/goliatone/go-orderviewer/pkg/render/template"
)

// ResponseOrdering decides which response wins when submissions overlap.
type ResponseOrdering string

const (
	// OrderingSequenced keeps only the response of the latest submission.
	OrderingSequenced ResponseOrdering = "sequenced"
	// OrderingLastResolved applies every response as it arrives, so the last
	// one to resolve wins.
	OrderingLastResolved ResponseOrdering = "last-resolved"
)

type Options struct {
	RoutePath      string
	Endpoint       orders.Endpoint
	RequestTimeout time.Duration
	HTTPClient     *http.Client
	Fetcher        Fetcher
	Ordering       ResponseOrdering

	Locale     string
	Translator i18n.Translator
	Theme      *theme.RendererConfig
	LogoSVG    string
	Templates  rendertemplate.TemplateRenderer

	SessionTTL time.Duration
	Sessions   Sessions

	Logger   *zap.Logger
	Observer Observer
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:  "/",
		Endpoint:   orders.DefaultEndpoint(),
		Ordering:   OrderingSequenced,
		Locale:     i18n.DefaultLocale,
		SessionTTL: 30 * time.Minute,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if strings.TrimSpace(opts.RoutePath) == "" {
		opts.RoutePath = "/"
	}
	opts.Endpoint = opts.Endpoint.Normalize()
	if opts.RequestTimeout < 0 {
		opts.RequestTimeout = 0
	}
	if opts.Ordering != OrderingLastResolved {
		opts.Ordering = OrderingSequenced
	}
	if strings.TrimSpace(opts.Locale) == "" {
		opts.Locale = i18n.DefaultLocale
	}
	if opts.Translator == nil {
		opts.Translator = i18n.DefaultCatalog()
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 30 * time.Minute
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

// WithBaseURL points the default client at another order service.
func WithBaseURL(baseURL string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Endpoint.BaseURL = baseURL
	}
}

func WithEndpoint(endpoint orders.Endpoint) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Endpoint = endpoint
	}
}

// WithRequestTimeout bounds each lookup. By default requests are unbounded.
func WithRequestTimeout(timeout time.Duration) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RequestTimeout = timeout
	}
}

func WithHTTPClient(client *http.Client) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.HTTPClient = client
	}
}

// WithFetcher replaces the HTTP client entirely.
func WithFetcher(fetcher Fetcher) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Fetcher = fetcher
	}
}

func WithOrdering(ordering ResponseOrdering) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Ordering = ordering
	}
}

// WithUnsequencedResponses lets the last response to resolve win, even when
// it belongs to an older submission.
func WithUnsequencedResponses() OptionFn {
	return WithOrdering(OrderingLastResolved)
}

func WithLocale(locale string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Locale = locale
	}
}

func WithTranslator(translator i18n.Translator) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Translator = translator
	}
}

func WithTheme(cfg *theme.RendererConfig) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Theme = cfg
	}
}

// WithLogoSVG sets inline SVG markup shown above the component. The markup
// is sanitized before rendering.
func WithLogoSVG(markup string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LogoSVG = markup
	}
}

// WithTemplateRenderer replaces the embedded pongo2 engine. The renderer must
// serve the "templates/viewer" and "templates/page" templates and provide the
// pretty_json filter, which FormatJSON implements.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Templates = renderer
	}
}

func WithSessionTTL(ttl time.Duration) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SessionTTL = ttl
	}
}

func WithSessions(sessions Sessions) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Sessions = sessions
	}
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

func WithObserver(observer Observer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Observer = observer
	}
}
