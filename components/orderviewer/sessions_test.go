package orderviewer

import (
	"testing"
	"time"
)

func TestMemorySessions_GetSet(t *testing.T) {
	s := NewMemorySessions(time.Minute)
	if _, ok := s.Get("missing"); ok {
		t.Fatalf("expected miss")
	}

	v := NewViewer()
	s.Set("abc", v)
	got, ok := s.Get("abc")
	if !ok || got != v {
		t.Fatalf("expected stored viewer")
	}
	if s.Len() != 1 {
		t.Fatalf("expected one session, got %d", s.Len())
	}

	s.Set("", v)
	if s.Len() != 1 {
		t.Fatalf("empty ids must be ignored")
	}
}

func TestMemorySessions_Expire(t *testing.T) {
	s := NewMemorySessions(20 * time.Millisecond)
	s.Set("abc", NewViewer())
	time.Sleep(50 * time.Millisecond)
	if _, ok := s.Get("abc"); ok {
		t.Fatalf("expected session to expire")
	}
}
