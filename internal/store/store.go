// Package store holds the portal's client-side cache of the backend
// collections. One generic Store serves every resource: each instance
// follows the same fetch-after-write policy and the same failure semantics.
package store

import (
	"context"
	"sync"

	"wastewise_portal/internal/api"
)

// Ops binds a Store to one backend resource. R is the write payload, which
// usually equals T but differs for assignments.
type Ops[T any, R any] struct {
	Name   string
	ID     func(T) string
	List   func(ctx context.Context) ([]T, error)
	Create func(ctx context.Context, item R) error
	Update func(ctx context.Context, id string, item R) error
	Delete func(ctx context.Context, id string) error
}

// Store owns one collection's cache plus its loading/error flags. All reads
// are snapshots; all writes go through the backend and re-fetch the whole
// collection. There is no optimistic local mutation.
type Store[T any, R any] struct {
	ops Ops[T, R]

	mu      sync.RWMutex
	items   []T
	err     string
	loading bool
	loaded  bool
}

func New[T any, R any](ops Ops[T, R]) *Store[T, R] {
	return &Store[T, R]{ops: ops}
}

// Items returns a snapshot copy of the cached collection.
func (s *Store[T, R]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Err returns the last recorded error message, or "". An empty collection
// with a non-empty Err means a failed load, not "no records yet".
func (s *Store[T, R]) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Store[T, R]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LoadOnce performs the initial fetch exactly once per process. A failed
// first load is not retried automatically; callers use Refresh.
func (s *Store[T, R]) LoadOnce(ctx context.Context) {
	s.mu.Lock()
	if s.loaded {
		s.mu.Unlock()
		return
	}
	s.loaded = true
	s.mu.Unlock()

	_ = s.Refresh(ctx)
}

// Refresh replaces the collection wholesale. On failure the collection is
// emptied and the error recorded: a failed refresh presents an empty list
// plus an error banner rather than stale data.
func (s *Store[T, R]) Refresh(ctx context.Context) error {
	s.setLoading(true)

	items, err := s.ops.List(ctx)
	if ctx.Err() != nil {
		// The consuming screen is gone; never apply a stale response.
		s.setLoading(false)
		return ctx.Err()
	}

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.items = nil
		s.err = api.ErrorMessage(err)
		s.mu.Unlock()
		// Hand back the original error so 401s stay recognizable.
		return err
	}
	s.items = items
	s.err = ""
	s.mu.Unlock()
	return nil
}

// Create performs the backend create and then re-fetches the collection.
func (s *Store[T, R]) Create(ctx context.Context, item R) error {
	return s.mutate(ctx, func() error { return s.ops.Create(ctx, item) })
}

func (s *Store[T, R]) Update(ctx context.Context, id string, item R) error {
	return s.mutate(ctx, func() error { return s.ops.Update(ctx, id, item) })
}

func (s *Store[T, R]) Delete(ctx context.Context, id string) error {
	return s.mutate(ctx, func() error { return s.ops.Delete(ctx, id) })
}

func (s *Store[T, R]) mutate(ctx context.Context, op func() error) error {
	s.setLoading(true)
	if err := op(); err != nil {
		s.mu.Lock()
		s.loading = false
		s.err = api.ErrorMessage(err)
		s.mu.Unlock()
		// Hand the caller the original error so 401s stay recognizable.
		return err
	}
	return s.Refresh(ctx)
}

func (s *Store[T, R]) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	if v {
		s.err = ""
	}
	s.mu.Unlock()
}

// Find looks an item up by id in the current cache. No network.
func (s *Store[T, R]) Find(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if s.ops.ID(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns the cached items matching pred. Recomputed on every call,
// never cached separately.
func (s *Store[T, R]) Filter(pred func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []T{}
	for _, item := range s.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

func (s *Store[T, R]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store[T, R]) CountWhere(pred func(T) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, item := range s.items {
		if pred(item) {
			n++
		}
	}
	return n
}

// CountBy groups the cached items by key and counts each group.
func (s *Store[T, R]) CountBy(key func(T) string) map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := map[string]int{}
	for _, item := range s.items {
		out[key(item)]++
	}
	return out
}

// UniqueCount counts distinct non-empty key values.
func (s *Store[T, R]) UniqueCount(key func(T) string) int {
	seen := map[string]struct{}{}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if k := key(item); k != "" {
			seen[k] = struct{}{}
		}
	}
	return len(seen)
}
