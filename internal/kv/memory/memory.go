package memory

import (
	"context"
	"sync"

	"finanzas/internal/kv"
)

// Store keeps slots in process memory. Contents are lost on exit.
type Store struct {
	mu     sync.Mutex
	slots  map[string]string
	writes int
}

func New() *Store {
	return &Store{slots: make(map[string]string)}
}

// NewWithSeed returns a store prefilled with the given slots.
func NewWithSeed(seed map[string]string) *Store {
	s := New()
	for k, v := range seed {
		s.slots[k] = v
	}
	return s
}

// Read returns the slot value.
func (s *Store) Read(_ context.Context, slot string) (string, bool, error) {
	if slot == "" {
		return "", false, kv.ErrEmptySlot
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.slots[slot]
	return v, ok, nil
}

// Write stores the slot value.
func (s *Store) Write(_ context.Context, slot, value string) error {
	if slot == "" {
		return kv.ErrEmptySlot
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[slot] = value
	s.writes++
	return nil
}

// Writes returns how many writes the store accepted.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
