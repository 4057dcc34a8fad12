package list

import (
	"context"

	"kanban/internal/application/dto"
	"kanban/internal/application/state"
	"kanban/internal/application/usecase"
	"kanban/internal/domain/action"
)

// AddListUseCase handles creating a list
type AddListUseCase struct {
	store state.Dispatcher
}

// NewAddListUseCase creates a new AddListUseCase
func NewAddListUseCase(store state.Dispatcher) *AddListUseCase {
	return &AddListUseCase{store: store}
}

// Execute appends a list with the given name to the end of the board
func (uc *AddListUseCase) Execute(ctx context.Context, name string) (dto.ListDTO, error) {
	name, err := usecase.ListName(name)
	if err != nil {
		return dto.ListDTO{}, err
	}

	board := uc.store.Dispatch(action.AddList{Name: name})
	return dto.ListToDTO(board.Lists[len(board.Lists)-1]), nil
}
