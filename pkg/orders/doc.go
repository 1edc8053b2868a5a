// Package orders talks to the remote order service.
//
// The service exposes a single lookup, GET {base}/orders/{id}, whose body is
// treated as opaque JSON. Client.Fetch returns the raw body on any 2xx
// response and a wrapped sentinel error otherwise, so callers can log the
// cause while presenting a single failure to the operator.
package orders
