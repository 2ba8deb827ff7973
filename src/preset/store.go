package preset

import (
	"sync/atomic"
)

// Store holds the registry currently in service. Readers call Current and
// never observe a partially built registry; reloads replace it wholesale.
type Store struct {
	current atomic.Pointer[Registry]
}

func NewStore(initial *Registry) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Current returns the registry in service, or nil if none was ever loaded.
func (s *Store) Current() *Registry {
	return s.current.Load()
}

// Reload builds a new registry with load and swaps it in. On failure the
// previous registry stays in service.
func (s *Store) Reload(load func() (*Registry, error)) (*Registry, error) {
	next, err := load()
	if err != nil {
		return nil, err
	}
	s.current.Store(next)
	return next, nil
}

func (s *Store) ReloadFile(path string, opts ...Option) (*Registry, error) {
	return s.Reload(func() (*Registry, error) {
		return LoadFile(path, opts...)
	})
}
