package testsupport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
)

// OrderResponse scripts one answer of the fake order service.
type OrderResponse struct {
	Status int
	Body   string
}

// OrderService is an httptest server standing in for the remote order
// service. Unknown identifiers get a 404.
type OrderService struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string
}

// NewOrderService starts a fake order service answering GET /orders/{id}
// from responses. The server is closed when the test ends.
func NewOrderService(t *testing.T, responses map[string]OrderResponse) *OrderService {
	t.Helper()

	svc := &OrderService{}
	mux := http.NewServeMux()
	mux.HandleFunc("/orders/", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/orders/"):]
		svc.mu.Lock()
		svc.requests = append(svc.requests, r.Method+" "+r.URL.Path)
		svc.mu.Unlock()

		resp, ok := responses[id]
		if !ok {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		status := resp.Status
		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, resp.Body)
	})

	svc.Server = httptest.NewServer(mux)
	t.Cleanup(svc.Close)
	return svc
}

// Requests returns the "METHOD /path" lines received so far.
func (s *OrderService) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
