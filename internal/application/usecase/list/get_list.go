package list

import (
	"context"

	"kanban/internal/application/dto"
	"kanban/internal/application/state"
	"kanban/internal/domain/service"
)

// GetListUseCase handles showing a single list
type GetListUseCase struct {
	store state.Dispatcher
}

// NewGetListUseCase creates a new GetListUseCase
func NewGetListUseCase(store state.Dispatcher) *GetListUseCase {
	return &GetListUseCase{store: store}
}

// Execute returns the referenced list, restricted to tasks matching query
func (uc *GetListUseCase) Execute(ctx context.Context, ref, query string) (dto.ListDTO, error) {
	list, err := service.ResolveList(uc.store.Filtered(query), ref)
	if err != nil {
		return dto.ListDTO{}, err
	}
	return dto.ListToDTO(list), nil
}
