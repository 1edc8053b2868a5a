package orderviewer

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Sessions holds one viewer per browser session.
type Sessions interface {
	Get(id string) (*Viewer, bool)
	Set(id string, viewer *Viewer)
}

// MemorySessions keeps viewers in memory and forgets them after ttl without
// access.
type MemorySessions struct {
	store *cache.Cache
}

func NewMemorySessions(ttl time.Duration) *MemorySessions {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &MemorySessions{store: cache.New(ttl, 2*ttl)}
}

func (s *MemorySessions) Get(id string) (*Viewer, bool) {
	if s == nil || id == "" {
		return nil, false
	}
	raw, ok := s.store.Get(id)
	if !ok {
		return nil, false
	}
	viewer, ok := raw.(*Viewer)
	return viewer, ok
}

// Set stores viewer under id, resetting its expiry.
func (s *MemorySessions) Set(id string, viewer *Viewer) {
	if s == nil || id == "" || viewer == nil {
		return
	}
	s.store.SetDefault(id, viewer)
}

// Len reports the number of live sessions.
func (s *MemorySessions) Len() int {
	if s == nil {
		return 0
	}
	return s.store.ItemCount()
}
