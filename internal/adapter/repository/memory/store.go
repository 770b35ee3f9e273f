package memory

import (
	"sync"
	"time"

	"github.com/api-sage/bank-back-office/internal/domain"
)

// Record is the constraint every stored entity satisfies through its pointer
// type: a string identifier plus the soft-delete marker.
type Record[T any] interface {
	*T
	EntityID() string
	SoftDeleted() bool
	MarkDeleted(at time.Time)
}

// Notifier receives entities as they are soft deleted. Delivery is
// fire-and-forget, at most once: the store never blocks on a slow subscriber
// and never retries a dropped event.
type Notifier interface {
	EntityDeleted(kind string, entity any)
}

// Store is the single authoritative in-memory sequence for one entity kind.
// Entities are held by value in insertion order; every read hands out a copy,
// so callers can only change state by going back through the store.
//
// All methods are safe for concurrent use. The embedded RWMutex restores the
// invariants the original single-threaded system got for free.
type Store[T any, PT Record[T]] struct {
	mu       sync.RWMutex
	kind     string
	items    []T
	notifier Notifier
}

func NewStore[T any, PT Record[T]](kind string, notifier Notifier) *Store[T, PT] {
	return &Store[T, PT]{kind: kind, notifier: notifier}
}

func (s *Store[T, PT]) Add(entity T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, entity)
	return entity
}

// Replace swaps the live entity with the given id for a whole new value.
// Merging a patch over the current fields is the caller's job.
func (s *Store[T, PT]) Replace(id string, entity T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.live(i) && PT(&s.items[i]).EntityID() == id {
			s.items[i] = entity
			return entity, nil
		}
	}
	var zero T
	return zero, domain.ErrRecordNotFound
}

// Remove splices the entity out of the sequence entirely.
func (s *Store[T, PT]) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.live(i) && PT(&s.items[i]).EntityID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrRecordNotFound
}

// RemoveSoft stamps the deletion timestamp and keeps the entity around for
// audit reads. The notifier sees the stamped entity.
func (s *Store[T, PT]) RemoveSoft(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.live(i) && PT(&s.items[i]).EntityID() == id {
			PT(&s.items[i]).MarkDeleted(time.Now().UTC())
			if s.notifier != nil {
				deleted := s.items[i]
				s.notifier.EntityDeleted(s.kind, deleted)
			}
			return nil
		}
	}
	return domain.ErrRecordNotFound
}

// All returns the live entities in insertion order.
func (s *Store[T, PT]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.items))
	for i := range s.items {
		if s.live(i) {
			out = append(out, s.items[i])
		}
	}
	return out
}

func (s *Store[T, PT]) FindByID(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.live(i) && PT(&s.items[i]).EntityID() == id {
			return s.items[i], nil
		}
	}
	var zero T
	return zero, domain.ErrRecordNotFound
}

// FindByIDIncludingDeleted is the audit read: it sees soft-deleted rows that
// every other query excludes.
func (s *Store[T, PT]) FindByIDIncludingDeleted(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if PT(&s.items[i]).EntityID() == id {
			return s.items[i], nil
		}
	}
	var zero T
	return zero, domain.ErrRecordNotFound
}

// Filter returns the live entities matching pred, in insertion order.
func (s *Store[T, PT]) Filter(pred func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []T
	for i := range s.items {
		if s.live(i) && pred(s.items[i]) {
			out = append(out, s.items[i])
		}
	}
	return out
}

// FindFirst returns the first live entity matching pred.
func (s *Store[T, PT]) FindFirst(pred func(T) bool) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.live(i) && pred(s.items[i]) {
			return s.items[i], nil
		}
	}
	var zero T
	return zero, domain.ErrRecordNotFound
}

func (s *Store[T, PT]) live(i int) bool {
	return !PT(&s.items[i]).SoftDeleted()
}
