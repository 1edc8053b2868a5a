package orderviewer

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-orderviewer/pkg/i18n"
	"github.com/goliatone/go-orderviewer/pkg/orders"
)

const defaultFetchError = "Ошибка при получении данных заказа. Проверьте ID и попробуйте снова."

// Fetcher retrieves the raw order body for an identifier.
type Fetcher interface {
	Fetch(ctx context.Context, identifier string) (json.RawMessage, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, identifier string) (json.RawMessage, error)

func (f FetcherFunc) Fetch(ctx context.Context, identifier string) (json.RawMessage, error) {
	return f(ctx, identifier)
}

// Outcome labels how a submission ended.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	// OutcomeStale marks a response dropped because a newer submission was
	// issued while it was in flight.
	OutcomeStale Outcome = "stale"
)

// Observer is notified once per finished submission.
type Observer interface {
	ObserveSubmit(outcome Outcome, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveSubmit(Outcome, time.Duration) {}

// Snapshot is a consistent copy of a viewer's fields.
type Snapshot struct {
	Identifier string
	State      State
}

// Viewer is one operator's order viewer.
type Viewer struct {
	mu         sync.Mutex
	identifier string
	state      State
	issued     uint64

	fetcher    Fetcher
	ordering   ResponseOrdering
	locale     string
	translator i18n.Translator
	logger     *zap.Logger
	observer   Observer
}

// NewViewer constructs a standalone viewer. Without WithFetcher it talks to
// the configured endpoint through an orders.Client.
func NewViewer(fns ...OptionFn) *Viewer {
	opts := NewOptions(fns...)
	return newViewer(opts, fetcherFor(opts))
}

func newViewer(opts Options, fetcher Fetcher) *Viewer {
	return &Viewer{
		state:      EmptyState(),
		fetcher:    fetcher,
		ordering:   opts.Ordering,
		locale:     opts.Locale,
		translator: opts.Translator,
		logger:     opts.Logger,
		observer:   opts.Observer,
	}
}

func fetcherFor(opts Options) Fetcher {
	if opts.Fetcher != nil {
		return opts.Fetcher
	}
	return orders.NewClient(opts.Endpoint,
		orders.WithHTTPClient(opts.HTTPClient),
		orders.WithTimeout(opts.RequestTimeout),
	)
}

// SetIdentifier replaces the stored identifier.
func (v *Viewer) SetIdentifier(identifier string) {
	v.mu.Lock()
	v.identifier = identifier
	v.mu.Unlock()
}

func (v *Viewer) Identifier() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.identifier
}

func (v *Viewer) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *Viewer) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot{Identifier: v.identifier, State: v.state}
}

// Submit fetches the order for the current identifier and records the
// result. It blocks until the order service answers or the request fails;
// other goroutines may use the viewer meanwhile. The returned State is the
// viewer's state once this submission has been applied or discarded.
func (v *Viewer) Submit(ctx context.Context) State {
	v.mu.Lock()
	v.issued++
	seq := v.issued
	identifier := v.identifier
	v.mu.Unlock()

	start := time.Now()
	data, err := v.fetcher.Fetch(ctx, identifier)
	elapsed := time.Since(start)

	next := ResultState(data)
	outcome := OutcomeSuccess
	if err != nil {
		next = ErrorState(i18n.Translate(v.translator, v.locale, i18n.KeyFetchError, defaultFetchError))
		outcome = OutcomeFailure
		v.logger.Warn("order fetch failed",
			zap.String("identifier", identifier),
			zap.String("cause", orders.Cause(err)),
			zap.Uint64("sequence", seq),
			zap.Error(err),
		)
	}

	v.mu.Lock()
	if v.ordering == OrderingSequenced && seq != v.issued {
		current := v.state
		latest := v.issued
		v.mu.Unlock()

		v.logger.Debug("discarding stale order response",
			zap.String("identifier", identifier),
			zap.Uint64("sequence", seq),
			zap.Uint64("latest", latest),
		)
		v.observer.ObserveSubmit(OutcomeStale, elapsed)
		return current
	}
	v.state = next
	v.mu.Unlock()

	v.observer.ObserveSubmit(outcome, elapsed)
	return next
}
