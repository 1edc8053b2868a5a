package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoViewer is returned when Run is called without a viewer.
	ErrNoViewer = errors.New("tui: viewer is required")
)
