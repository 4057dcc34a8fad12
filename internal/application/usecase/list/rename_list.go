package list

import (
	"context"

	"kanban/internal/application/dto"
	"kanban/internal/application/state"
	"kanban/internal/application/usecase"
	"kanban/internal/domain/action"
	"kanban/internal/domain/service"
)

// RenameListUseCase handles renaming a list
type RenameListUseCase struct {
	store state.Dispatcher
}

// NewRenameListUseCase creates a new RenameListUseCase
func NewRenameListUseCase(store state.Dispatcher) *RenameListUseCase {
	return &RenameListUseCase{store: store}
}

// Execute renames the referenced list. An empty name leaves the list as it was.
func (uc *RenameListUseCase) Execute(ctx context.Context, ref, name string) (dto.ListDTO, error) {
	name, err := usecase.ListName(name)
	if err != nil {
		return dto.ListDTO{}, err
	}

	list, err := service.ResolveList(uc.store.Board(), ref)
	if err != nil {
		return dto.ListDTO{}, err
	}

	board := uc.store.Dispatch(action.RenameList{ListID: list.ID, Name: name})
	if renamed, ok := board.FindList(list.ID); ok {
		return dto.ListToDTO(renamed), nil
	}
	return dto.ListToDTO(list), nil
}
