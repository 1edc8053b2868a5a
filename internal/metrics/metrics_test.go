package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/goliatone/go-orderviewer/components/orderviewer"
)

func TestObserveSubmit_CountsByOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveSubmit(orderviewer.OutcomeSuccess, 10*time.Millisecond)
	m.ObserveSubmit(orderviewer.OutcomeSuccess, 20*time.Millisecond)
	m.ObserveSubmit(orderviewer.OutcomeFailure, time.Millisecond)

	if got := testutil.ToFloat64(m.submissions.WithLabelValues("success")); got != 2 {
		t.Fatalf("expected 2 successes, got %v", got)
	}
	if got := testutil.ToFloat64(m.submissions.WithLabelValues("failure")); got != 1 {
		t.Fatalf("expected 1 failure, got %v", got)
	}
	if got := testutil.CollectAndCount(m.latency); got != 2 {
		t.Fatalf("expected 2 latency series, got %d", got)
	}
}

func TestTrackSessions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.TrackSessions(func() int { return 3 })

	expected := `
# HELP orderviewer_sessions Browser sessions currently holding a viewer.
# TYPE orderviewer_sessions gauge
orderviewer_sessions 3
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "orderviewer_sessions"); err != nil {
		t.Fatalf("unexpected gauge: %v", err)
	}
}

func TestHandler_ServesExposition(t *testing.T) {
	reg := NewRegistry()
	m := New(reg)
	m.ObserveSubmit(orderviewer.OutcomeStale, time.Millisecond)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `orderviewer_submissions_total{outcome="stale"} 1`) {
		t.Fatalf("expected stale counter in exposition:\n%s", rec.Body.String())
	}
}
