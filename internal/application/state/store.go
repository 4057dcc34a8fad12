package state

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"kanban/internal/domain/action"
	"kanban/internal/domain/entity"
	"kanban/internal/domain/service"
)

// Persistence is the durability boundary the store talks to.
// Implementations swallow and log their own failures.
type Persistence interface {
	Saver
	Load(ctx context.Context) *entity.Board
	Clear(ctx context.Context) bool
}

// Store owns the canonical board and is the single entry point for mutations.
//
// Until Restore has completed, dispatched actions change the in-memory board
// only; nothing is written so an empty start-up board can never overwrite
// persisted data.
type Store struct {
	mu        sync.Mutex
	board     entity.Board
	reducer   *service.Reducer
	storage   Persistence
	persister *Persister
	logger    *log.Logger

	restored bool
	dirty    bool
}

// NewStore creates a store holding an empty board
func NewStore(reducer *service.Reducer, storage Persistence, logger *log.Logger) *Store {
	return &Store{
		board:     entity.NewBoard(),
		reducer:   reducer,
		storage:   storage,
		persister: NewPersister(storage),
		logger:    logger,
	}
}

// Restore loads persisted state once. It reports whether a board was found.
// Later calls are no-ops.
func (s *Store) Restore(ctx context.Context) bool {
	s.mu.Lock()
	if s.restored {
		s.mu.Unlock()
		return false
	}
	s.mu.Unlock()

	persisted := s.storage.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.restored {
		return false
	}
	s.restored = true

	if persisted != nil {
		if s.dirty {
			s.logger.Warn("discarding changes made before the persisted board was restored")
		}
		s.board, _ = s.reducer.Reduce(s.board, action.LoadState{Board: *persisted})
		s.dirty = false
		return true
	}

	if s.dirty {
		s.persister.Enqueue(s.board)
		s.dirty = false
	}
	return false
}

// Restored reports whether the initial load has completed
func (s *Store) Restored() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restored
}

// Dispatch applies a to the board and schedules a save when the board changed.
// It returns the resulting board.
func (s *Store) Dispatch(a action.Action) entity.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := s.reducer.Reduce(s.board, a)
	if !changed {
		s.logger.WithField("action", a.Kind()).Debug("action left board unchanged")
		return s.board
	}

	s.board = next
	s.logger.WithField("action", a.Kind()).Debug("action applied")

	if !s.restored {
		s.dirty = true
		return s.board
	}
	s.persister.Enqueue(s.board)
	return s.board
}

// Board returns the canonical board. The result shares storage with the
// store and must be treated as read-only.
func (s *Store) Board() entity.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board
}

// Filtered returns the search projection of the current board
func (s *Store) Filtered(query string) entity.Board {
	return service.Filter(s.Board(), query)
}

// Flush waits for pending saves to reach storage
func (s *Store) Flush() {
	s.persister.Flush()
}

// Clear wipes persisted state and resets the board to empty.
// The empty board is not saved; it is what a missing document reads as.
func (s *Store) Clear(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.persister.Flush()
	ok := s.storage.Clear(ctx)
	s.board = entity.NewBoard()
	s.restored = true
	s.dirty = false
	return ok
}

// Close writes the last snapshot and stops the background writer
func (s *Store) Close() {
	if s.persister.Pending() {
		s.logger.Debug("writing pending board changes before exit")
	}
	s.persister.Close()
}

// Dispatcher is the surface use cases need from the store
type Dispatcher interface {
	Dispatch(a action.Action) entity.Board
	Board() entity.Board
	Filtered(query string) entity.Board
}

var _ Dispatcher = (*Store)(nil)
