package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-orderviewer/components/orderviewer"
	"github.com/goliatone/go-orderviewer/pkg/testsupport"
)

func newRouter(t *testing.T, mount string, metrics http.Handler) (http.Handler, orderviewer.Routes, *observer.ObservedLogs) {
	t.Helper()

	svc := testsupport.NewOrderService(t, map[string]testsupport.OrderResponse{
		"1234": {Body: `{"status":"shipped"}`},
	})
	component, err := orderviewer.New(orderviewer.WithBaseURL(svc.URL))
	if err != nil {
		t.Fatalf("component: %v", err)
	}

	core, logs := observer.New(zap.InfoLevel)
	router, routes, err := NewRouter(component, mount, metrics, zap.New(core))
	if err != nil {
		t.Fatalf("router: %v", err)
	}
	return router, routes, logs
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "metrics")
	})
	router, _, _ := newRouter(t, "/", metrics)

	for path, want := range map[string]string{"/healthz": "ok", "/metrics": "metrics"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK || rec.Body.String() != want {
			t.Fatalf("%s: unexpected response %d %q", path, rec.Code, rec.Body.String())
		}
	}
}

func TestRouter_MountsComponentAndLogsRequests(t *testing.T) {
	router, routes, logs := newRouter(t, "/viewer", nil)
	if routes.Page != "/viewer/" {
		t.Fatalf("unexpected page route %q", routes.Page)
	}

	form := strings.NewReader("identifier=1234")
	req := httptest.NewRequest(http.MethodPost, routes.Submit, form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(orderviewer.FetchHeader, "fetch")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "shipped") {
		t.Fatalf("unexpected response %d:\n%s", rec.Code, rec.Body.String())
	}

	entries := logs.FilterMessage("http request").All()
	if len(entries) != 1 {
		t.Fatalf("expected one request log, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["path"] != routes.Submit || fields["status"] != int64(http.StatusOK) {
		t.Fatalf("unexpected log fields: %v", fields)
	}
	if id, _ := fields["request_id"].(string); id == "" {
		t.Fatalf("expected request id in log fields: %v", fields)
	}
}

func TestRouter_RequiresComponent(t *testing.T) {
	if _, _, err := NewRouter(nil, "/", nil, nil); err == nil {
		t.Fatalf("expected error for nil component")
	}
}

func TestServer_StopsOnContextCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	srv := New(Config{ShutdownTimeout: time.Second}, http.NotFoundHandler(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	res, err := http.Get("http://" + ln.Addr().String() + "/")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop")
	}
}
