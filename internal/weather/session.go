package weather

import (
	"context"
	"sync"
)

// Fetcher performs one provider call for a city. The snapshot is non-nil
// only when the outcome is OK.
type Fetcher interface {
	GetWeather(ctx context.Context, city string) (*Snapshot, Outcome)
}

// Session keeps the last successful snapshot across fetches. A failed
// fetch leaves the previous snapshot in place.
type Session struct {
	fetcher Fetcher

	mu       sync.RWMutex
	snapshot *Snapshot
}

func NewSession(fetcher Fetcher) *Session {
	return &Session{fetcher: fetcher}
}

func (s *Session) GetWeather(ctx context.Context, city string) Outcome {
	snapshot, outcome := s.fetcher.GetWeather(ctx, city)
	if outcome.OK() && snapshot != nil {
		s.mu.Lock()
		s.snapshot = snapshot
		s.mu.Unlock()
	}
	return outcome
}

// Snapshot returns the live snapshot, or nil if no fetch has succeeded yet.
func (s *Session) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
