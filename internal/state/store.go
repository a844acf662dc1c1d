// Package state owns the live game aggregate and its persistence. All
// game services mutate state through a single mutex-guarded store, which
// is the only writer the aggregate ever sees.
package state

import (
	"sync"
	"time"

	"github.com/knedy989-code/Cookie-RNG/internal/domain"
)

// Store serializes all access to the game aggregate.
type Store struct {
	mu       sync.Mutex
	state    *domain.GameState
	onChange func()
	now      func() time.Time
}

// NewStore wraps an aggregate. The store takes ownership; callers must
// not retain the pointer.
func NewStore(initial *domain.GameState) *Store {
	if initial == nil {
		initial = domain.NewGameState()
	}
	return &Store{
		state: initial,
		now:   time.Now,
	}
}

// OnChange registers a callback invoked after every successful update.
// Used to mark the snapshot saver dirty.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Update runs fn against the aggregate under the write lock. If fn
// returns an error the update is considered rejected: fn must validate
// before mutating. On success UpdatedAt is stamped and the change
// callback fires.
func (s *Store) Update(fn func(gs *domain.GameState) error) error {
	s.mu.Lock()
	err := fn(s.state)
	if err == nil {
		s.state.UpdatedAt = s.now()
	}
	onChange := s.onChange
	s.mu.Unlock()

	if err != nil {
		return err
	}
	if onChange != nil {
		onChange()
	}
	return nil
}

// View runs fn against the aggregate under the lock. fn must not mutate
// and must not retain references past its return.
func (s *Store) View(fn func(gs *domain.GameState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

// Snapshot returns a deep copy safe for serialization.
func (s *Store) Snapshot() *domain.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}
