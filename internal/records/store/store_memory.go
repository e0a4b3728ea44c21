// Package store keeps one in-memory state container per record type.
//
// Each container holds an immutable slice that is swapped wholesale by the
// pure reducers in models. Reads hand out copies, so callers never alias
// stored state.
package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"compliancedesk/internal/records/models"
	"compliancedesk/pkg/platform/sentinel"
)

// Entity is a record the store can assign identifiers to.
type Entity[T any] interface {
	models.Record[T]
	WithID(id string) T
}

// InMemory is a mutex-guarded collection of T with a monotonic id sequence.
// Identifiers are "<prefix>-NNN" and are never reused after a delete.
type InMemory[T Entity[T]] struct {
	mu     sync.RWMutex
	prefix string
	seq    int
	items  []T
}

// NewInMemory builds a store holding a copy of seed. The id sequence resumes
// after the highest numbered seeded id carrying prefix.
func NewInMemory[T Entity[T]](prefix string, seed []T) *InMemory[T] {
	s := &InMemory[T]{prefix: prefix, items: models.CloneAll(seed)}
	for _, it := range seed {
		if n, ok := s.sequenceOf(it.RecordID()); ok && n > s.seq {
			s.seq = n
		}
	}
	return s
}

func (s *InMemory[T]) sequenceOf(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, s.prefix+"-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s *InMemory[T]) nextID() string {
	s.seq++
	return fmt.Sprintf("%s-%03d", s.prefix, s.seq)
}

// List returns every record in insertion order.
func (s *InMemory[T]) List(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneAll(s.items), nil
}

func (s *InMemory[T]) FindByID(_ context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := models.Find(s.items, id)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %s: %w", s.prefix, id, sentinel.ErrNotFound)
	}
	return rec, nil
}

// Create stores rec under a freshly generated id, ignoring any id it carries.
func (s *InMemory[T]) Create(_ context.Context, rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := rec.WithID(s.nextID())
	s.items = models.Insert(s.items, stored)
	return stored.Clone(), nil
}

// Update replaces the record sharing rec's id.
func (s *InMemory[T]) Update(_ context.Context, rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := models.Replace(s.items, rec)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %s: %w", s.prefix, rec.RecordID(), sentinel.ErrNotFound)
	}
	s.items = next
	return rec.Clone(), nil
}

// Modify applies fn to the stored record under the write lock and stores the
// result. The id is pinned; fn cannot move a record.
func (s *InMemory[T]) Modify(_ context.Context, id string, fn func(T) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	current, ok := models.Find(s.items, id)
	if !ok {
		return zero, fmt.Errorf("%s %s: %w", s.prefix, id, sentinel.ErrNotFound)
	}
	updated, err := fn(current)
	if err != nil {
		return zero, err
	}
	updated = updated.WithID(id)
	s.items, _ = models.Replace(s.items, updated)
	return updated.Clone(), nil
}

func (s *InMemory[T]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := models.Remove(s.items, id)
	if !ok {
		return fmt.Errorf("%s %s: %w", s.prefix, id, sentinel.ErrNotFound)
	}
	s.items = next
	return nil
}

// Reset replaces the whole collection with a copy of items. The id sequence
// only moves forward.
func (s *InMemory[T]) Reset(_ context.Context, items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = models.CloneAll(items)
	for _, it := range items {
		if n, ok := s.sequenceOf(it.RecordID()); ok && n > s.seq {
			s.seq = n
		}
	}
}

func (s *InMemory[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
