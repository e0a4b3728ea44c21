package notify

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"compliancedesk/pkg/platform/sentinel"
)

type entry struct {
	n     Notification
	timer *time.Timer
}

// InMemory removes each banner with time.AfterFunc. Dismissing first stops
// the timer, and a timer that fires after a dismissal finds nothing to do.
type InMemory struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*entry
}

func NewInMemory(ttl time.Duration) *InMemory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &InMemory{ttl: ttl, entries: make(map[string]*entry)}
}

func (s *InMemory) Push(_ context.Context, n Notification) (Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[n.ID]; exists {
		return Notification{}, fmt.Errorf("notification %s: %w", n.ID, sentinel.ErrConflict)
	}
	n.ExpiresAt = n.CreatedAt.Add(s.ttl)
	id := n.ID
	s.entries[id] = &entry{
		n:     n,
		timer: time.AfterFunc(s.ttl, func() { s.expire(id) }),
	}
	return n, nil
}

func (s *InMemory) expire(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

// List returns visible banners, oldest first.
func (s *InMemory) List(_ context.Context) ([]Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.n)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *InMemory) Dismiss(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return fmt.Errorf("notification %s: %w", id, sentinel.ErrNotFound)
	}
	e.timer.Stop()
	delete(s.entries, id)
	return nil
}

// Close stops every pending timer.
func (s *InMemory) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.entries {
		e.timer.Stop()
		delete(s.entries, id)
	}
}
