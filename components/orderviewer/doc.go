// Package orderviewer provides the order viewer component: a form that takes
// an order identifier, fetches the order from the remote order service, and
// shows either the pretty-printed JSON body or a fixed localized error.
//
// Viewer holds the per-operator state (identifier plus an Empty, Result, or
// Error state) and is safe for concurrent use. Component wires viewers to a
// net/http surface: a server-rendered page, a submit endpoint that answers
// script-driven submissions with a fragment so the page never navigates, and
// a keystroke sync endpoint. Each browser gets its own viewer, keyed by a
// session cookie and kept in memory only.
//
// Concurrent submissions are tagged with increasing sequence numbers and
// responses for superseded submissions are discarded. WithUnsequencedResponses
// switches to last-to-resolve-wins.
package orderviewer
