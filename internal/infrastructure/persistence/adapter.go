package persistence

import (
	"context"

	log "github.com/sirupsen/logrus"

	"kanban/internal/domain/entity"
	"kanban/internal/domain/repository"
)

// Adapter is the board's durability boundary. Storage errors never escape it:
// a failed load reads as "nothing persisted" and failed writes are logged.
type Adapter struct {
	store  repository.BoardStore
	logger *log.Logger
}

// NewAdapter wraps a store
func NewAdapter(store repository.BoardStore, logger *log.Logger) *Adapter {
	return &Adapter{
		store:  store,
		logger: logger,
	}
}

// Load returns the persisted board, or nil when absent or unreadable
func (a *Adapter) Load(ctx context.Context) *entity.Board {
	board, err := a.store.Load(ctx)
	if err != nil {
		a.logger.WithError(err).Error("failed to load persisted board")
		return nil
	}
	if board == nil {
		a.logger.Debug("no persisted board found")
		return nil
	}

	a.logger.WithField("lists", len(board.Lists)).WithField("tasks", board.TaskCount()).Info("restored persisted board")
	return board
}

// Save writes the board, reporting whether it succeeded
func (a *Adapter) Save(ctx context.Context, board entity.Board) bool {
	if err := a.store.Save(ctx, board); err != nil {
		a.logger.WithError(err).Error("failed to save board")
		return false
	}
	a.logger.WithField("lists", len(board.Lists)).Debug("board saved")
	return true
}

// Clear removes the persisted document, reporting whether it succeeded
func (a *Adapter) Clear(ctx context.Context) bool {
	if err := a.store.Clear(ctx); err != nil {
		a.logger.WithError(err).Error("failed to clear persisted board")
		return false
	}
	a.logger.Info("persisted board cleared")
	return true
}

// Close releases the underlying store
func (a *Adapter) Close() error {
	return a.store.Close()
}
