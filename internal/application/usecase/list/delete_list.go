package list

import (
	"context"

	"kanban/internal/application/dto"
	"kanban/internal/application/state"
	"kanban/internal/domain/action"
	"kanban/internal/domain/service"
)

// DeleteListUseCase handles deleting a list together with its tasks
type DeleteListUseCase struct {
	store state.Dispatcher
}

// NewDeleteListUseCase creates a new DeleteListUseCase
func NewDeleteListUseCase(store state.Dispatcher) *DeleteListUseCase {
	return &DeleteListUseCase{store: store}
}

// Execute deletes the referenced list and returns it as it was before deletion
func (uc *DeleteListUseCase) Execute(ctx context.Context, ref string) (dto.ListDTO, error) {
	list, err := service.ResolveList(uc.store.Board(), ref)
	if err != nil {
		return dto.ListDTO{}, err
	}

	uc.store.Dispatch(action.DeleteList{ListID: list.ID})
	return dto.ListToDTO(list), nil
}
