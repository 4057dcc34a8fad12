package task

import (
	"context"

	"kanban/internal/application/dto"
	"kanban/internal/application/state"
)

// ListTasksUseCase handles listing tasks across the board
type ListTasksUseCase struct {
	store state.Dispatcher
}

// NewListTasksUseCase creates a new ListTasksUseCase
func NewListTasksUseCase(store state.Dispatcher) *ListTasksUseCase {
	return &ListTasksUseCase{store: store}
}

// Execute lists tasks whose names match query, optionally limited to one list.
// Tasks are returned in board order.
func (uc *ListTasksUseCase) Execute(ctx context.Context, query, listRef string) ([]dto.TaskDTO, error) {
	board := uc.store.Filtered(query)

	listID, err := scopeList(board, listRef)
	if err != nil {
		return nil, err
	}

	result := make([]dto.TaskDTO, 0)
	for _, list := range board.Lists {
		if listID != "" && list.ID != listID {
			continue
		}
		for _, task := range list.Tasks {
			result = append(result, dto.TaskToDTOInList(task, list))
		}
	}

	return result, nil
}
