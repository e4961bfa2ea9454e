package game

import (
	"context"
	"sync"

	"github.com/m3rciful/cockfight/core/logger"
	"log/slog"
)

// Store keeps per-chat tournament state. The roster and bracket are shared,
// each chat advances through them independently.
type Store struct {
	registry *Registry
	pairings []Pair

	mu     sync.RWMutex
	states map[int64]*State
}

// NewStore builds a store over an already loaded roster.
func NewStore(ctx context.Context, reg *Registry) *Store {
	return &Store{
		registry: reg,
		pairings: ResolvePairings(ctx, reg),
		states:   make(map[int64]*State),
	}
}

// Registry returns the shared fighter roster.
func (s *Store) Registry() *Registry {
	return s.registry
}

// GetOrCreate returns the state for a chat, creating it on first access.
func (s *Store) GetOrCreate(ctx context.Context, chatID int64) *State {
	s.mu.RLock()
	st, ok := s.states[chatID]
	s.mu.RUnlock()
	if ok {
		return st
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.states[chatID]; ok {
		return st
	}
	st = NewState(s.pairings)
	s.states[chatID] = st
	logger.Info(ctx, "game", "state.created",
		slog.Int64("chat_id", chatID),
	)
	return st
}

// Remove drops the state for a chat. The next access starts fresh.
func (s *Store) Remove(ctx context.Context, chatID int64) {
	s.mu.Lock()
	_, existed := s.states[chatID]
	delete(s.states, chatID)
	s.mu.Unlock()
	if existed {
		logger.Info(ctx, "game", "state.removed",
			slog.Int64("chat_id", chatID),
		)
	}
}
