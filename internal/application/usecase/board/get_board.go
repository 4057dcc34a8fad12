package board

import (
	"context"

	"kanban/internal/application/dto"
	"kanban/internal/application/state"
)

// GetBoardUseCase handles reading the board, optionally through a search query
type GetBoardUseCase struct {
	store state.Dispatcher
}

// NewGetBoardUseCase creates a new GetBoardUseCase
func NewGetBoardUseCase(store state.Dispatcher) *GetBoardUseCase {
	return &GetBoardUseCase{store: store}
}

// Execute returns every list, each restricted to tasks whose names contain query
func (uc *GetBoardUseCase) Execute(ctx context.Context, query string) (dto.BoardDTO, error) {
	total := uc.store.Board().TaskCount()
	return dto.BoardToDTO(uc.store.Filtered(query), query, total), nil
}
