package list

import (
	"context"

	"kanban/internal/application/dto"
	"kanban/internal/application/state"
	"kanban/internal/domain/action"
	"kanban/internal/domain/service"
)

// SortListUseCase handles ordering a list's tasks by name
type SortListUseCase struct {
	store state.Dispatcher
}

// NewSortListUseCase creates a new SortListUseCase
func NewSortListUseCase(store state.Dispatcher) *SortListUseCase {
	return &SortListUseCase{store: store}
}

// Execute sorts the referenced list
func (uc *SortListUseCase) Execute(ctx context.Context, ref string) (dto.ListDTO, error) {
	list, err := service.ResolveList(uc.store.Board(), ref)
	if err != nil {
		return dto.ListDTO{}, err
	}

	board := uc.store.Dispatch(action.SortList{ListID: list.ID})
	if sorted, ok := board.FindList(list.ID); ok {
		return dto.ListToDTO(sorted), nil
	}
	return dto.ListToDTO(list), nil
}
