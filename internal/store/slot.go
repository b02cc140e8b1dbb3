// internal/store/slot.go
//
// Holder for the one live game session.
//
// Characteristics:
//   - At most one session at a time; Save replaces whatever was there.
//   - Get only succeeds for the live session's ID, so stale IDs fail.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// ErrNotFound is returned when no live session matches.
var ErrNotFound = errors.New("not found")

// Store holds the live session.
type Store interface {
	// Save makes g the live session, returning the one it replaced (may be nil).
	Save(ctx context.Context, g *game.Session) (*game.Session, error)

	// Get returns the live session if its ID is id.
	Get(ctx context.Context, id string) (*game.Session, error)

	// Current returns the live session regardless of ID.
	Current(ctx context.Context) (*game.Session, error)
}

type slot struct {
	mu   sync.RWMutex  // guards live
	live *game.Session // nil until the first Save
}

// NewSlot constructs an empty single-session Store.
func NewSlot() Store {
	return &slot{}
}

func (s *slot) Save(ctx context.Context, g *game.Session) (*game.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.live
	s.live = g
	return prev, nil
}

func (s *slot) Get(ctx context.Context, id string) (*game.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.live != nil && s.live.ID() == id {
		return s.live, nil
	}
	return nil, ErrNotFound
}

func (s *slot) Current(ctx context.Context) (*game.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.live == nil {
		return nil, ErrNotFound
	}
	return s.live, nil
}
