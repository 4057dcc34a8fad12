package repository

import (
	"context"

	"kanban/internal/domain/entity"
)

// BoardStore persists the whole board as a single document
type BoardStore interface {
	// Load returns the persisted board, or nil when nothing has been saved yet
	Load(ctx context.Context) (*entity.Board, error)

	// Save replaces the persisted document with board
	Save(ctx context.Context, board entity.Board) error

	// Clear removes the persisted document
	Clear(ctx context.Context) error

	// Close releases any resources held by the store
	Close() error
}
