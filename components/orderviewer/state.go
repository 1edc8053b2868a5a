package orderviewer

import (
	"encoding/json"
)

// Kind tags the active case of a State.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindResult
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindResult:
		return "result"
	case KindError:
		return "error"
	default:
		return "empty"
	}
}

// State is what the viewer currently shows. At most one of order data and
// error message is set, and which one is decided by Kind.
type State struct {
	kind    Kind
	data    json.RawMessage
	message string
}

// EmptyState is the state before the first submission.
func EmptyState() State {
	return State{kind: KindEmpty}
}

// ResultState holds a copy of the order body. A nil body is stored as JSON
// null.
func ResultState(data json.RawMessage) State {
	if len(data) == 0 {
		return State{kind: KindResult, data: json.RawMessage("null")}
	}
	return State{kind: KindResult, data: append(json.RawMessage(nil), data...)}
}

// ErrorState holds a user-facing error message.
func ErrorState(message string) State {
	return State{kind: KindError, message: message}
}

func (s State) Kind() Kind {
	return s.kind
}

// Data returns a copy of the order body when the state is a result.
func (s State) Data() (json.RawMessage, bool) {
	if s.kind != KindResult {
		return nil, false
	}
	return append(json.RawMessage(nil), s.data...), true
}

// Message returns the error message when the state is an error.
func (s State) Message() (string, bool) {
	if s.kind != KindError {
		return "", false
	}
	return s.message, true
}

// Pretty formats the order body with FormatJSON. Non-result states return "".
func (s State) Pretty() string {
	if s.kind != KindResult {
		return ""
	}
	return FormatJSON(s.data)
}
