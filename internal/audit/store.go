package audit

import (
	"context"
	"sync"
)

// Sink receives published events.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// Store is a sink that can also be read back.
type Store interface {
	Sink
	List(ctx context.Context, q Query) ([]Event, error)
}

// DefaultCapacity bounds the in-memory trail.
const DefaultCapacity = 1000

// InMemoryStore keeps the most recent events. When full, the oldest event is
// dropped to make room.
type InMemoryStore struct {
	mu       sync.RWMutex
	events   []Event
	capacity int
	dropped  int64
}

func NewInMemoryStore(capacity int) *InMemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &InMemoryStore{capacity: capacity}
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) >= s.capacity {
		s.events = append(s.events[:0:0], s.events[1:]...)
		s.dropped++
	}
	s.events = append(s.events, event)
	return nil
}

// List returns matching events, newest first.
func (s *InMemoryStore) List(_ context.Context, q Query) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, 0, len(s.events))
	for i := len(s.events) - 1; i >= 0; i-- {
		if !q.matches(s.events[i]) {
			continue
		}
		out = append(out, s.events[i])
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out, nil
}

// Dropped returns how many events were evicted to respect capacity.
func (s *InMemoryStore) Dropped() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dropped
}
