// Package store persists the single configuration record of a payout contract.
package store

import (
	"fmt"
	"sync"

	"github.com/bitfsorg/ecopayout-go/contract"
)

// Store loads and saves the contract state record.
type Store interface {
	// Load returns the persisted record, or ErrNotFound.
	Load() (*contract.State, error)

	// Save replaces the entire record.
	Save(state *contract.State) error
}

// checkState rejects nil or invariant-violating records.
func checkState(state *contract.State) error {
	if state == nil {
		return fmt.Errorf("%w: state", ErrNilParam)
	}
	if err := state.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	return nil
}

// MemStore is an in-memory implementation of Store for testing.
type MemStore struct {
	mu    sync.RWMutex
	state *contract.State

	// SaveErr, when set, is returned by Save without modifying the record.
	SaveErr error
}

// Compile-time interface check.
var _ Store = (*MemStore)(nil)

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Load returns a copy of the stored record.
func (s *MemStore) Load() (*contract.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state == nil {
		return nil, ErrNotFound
	}
	cp := *s.state
	return &cp, nil
}

// Save stores a copy of state.
func (s *MemStore) Save(state *contract.State) error {
	if err := checkState(state); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return s.SaveErr
	}
	cp := *state
	s.state = &cp
	return nil
}
