package board

import (
	"context"

	"kanban/internal/domain/entity"
)

// Clearer wipes persisted state
type Clearer interface {
	Clear(ctx context.Context) bool
}

// ResetBoardUseCase handles discarding the board and its persisted document
type ResetBoardUseCase struct {
	store Clearer
}

// NewResetBoardUseCase creates a new ResetBoardUseCase
func NewResetBoardUseCase(store Clearer) *ResetBoardUseCase {
	return &ResetBoardUseCase{store: store}
}

// Execute empties the board. The in-memory board is reset even when storage fails.
func (uc *ResetBoardUseCase) Execute(ctx context.Context) error {
	if !uc.store.Clear(ctx) {
		return entity.ErrClearFailed
	}
	return nil
}
