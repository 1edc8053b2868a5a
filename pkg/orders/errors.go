package orders

import (
	"errors"
	"net/http"
	"strconv"
)

var (
	// ErrRequest covers transport failures and requests that could not be built.
	ErrRequest = errors.New("orders: request failed")
	// ErrStatus is matched by every StatusError.
	ErrStatus = errors.New("orders: unexpected status")
	// ErrMalformedBody signals a 2xx response whose body is not JSON.
	ErrMalformedBody = errors.New("orders: malformed response body")
	// ErrEndpointNotFound is returned when an OpenAPI document has no
	// operation usable as the order lookup.
	ErrEndpointNotFound = errors.New("orders: order lookup operation not found")
)

// StatusError reports a non-2xx response from the order service.
type StatusError struct {
	Code   int
	Status string
}

func (e StatusError) Error() string {
	status := e.Status
	if status == "" {
		status = strconv.Itoa(e.StatusCode()) + " " + http.StatusText(e.StatusCode())
	}
	return "orders: unexpected status " + status
}

func (e StatusError) Unwrap() error { return ErrStatus }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Cause classifies err for logs and metrics labels.
func Cause(err error) string {
	var statusErr StatusError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &statusErr):
		return "status_" + strconv.Itoa(statusErr.StatusCode())
	case errors.Is(err, ErrMalformedBody):
		return "malformed_body"
	case errors.Is(err, ErrRequest):
		return "transport"
	default:
		return "unknown"
	}
}
