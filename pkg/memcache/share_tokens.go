package memcache

import (
	"context"
	"sync"
	"time"
)

// ShareTokenStore maps share tokens to trip ids until they expire.
type ShareTokenStore interface {
	Set(ctx context.Context, token string, tripID string, ttl time.Duration) error

	// Get returns the trip id for token. ok is false when the token is
	// missing or expired.
	Get(ctx context.Context, token string) (tripID string, ok bool, err error)
}

type entry struct {
	tripID    string
	expiresAt time.Time
}

type ShareTokens struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewShareTokens() *ShareTokens {
	return &ShareTokens{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *ShareTokens) Set(_ context.Context, token string, tripID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)
	s.data[token] = entry{
		tripID:    tripID,
		expiresAt: now.Add(ttl),
	}
	return nil
}

func (s *ShareTokens) Get(_ context.Context, token string) (string, bool, error) {
	s.mu.RLock()
	e, ok := s.data[token]
	s.mu.RUnlock()

	if !ok {
		return "", false, nil
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, token)
		s.mu.Unlock()
		return "", false, nil
	}
	return e.tripID, true, nil
}

// sweep drops expired entries. Callers hold the write lock.
func (s *ShareTokens) sweep(now time.Time) {
	for token, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, token)
		}
	}
}
