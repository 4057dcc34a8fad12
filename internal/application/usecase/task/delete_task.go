package task

import (
	"context"

	"kanban/internal/application/dto"
	"kanban/internal/application/state"
	"kanban/internal/domain/action"
	"kanban/internal/domain/service"
)

// DeleteTaskUseCase handles deleting a task
type DeleteTaskUseCase struct {
	store state.Dispatcher
}

// NewDeleteTaskUseCase creates a new DeleteTaskUseCase
func NewDeleteTaskUseCase(store state.Dispatcher) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{store: store}
}

// Execute deletes the referenced task, optionally scoped to a list
func (uc *DeleteTaskUseCase) Execute(ctx context.Context, taskRef, listRef string) (dto.TaskDTO, error) {
	board := uc.store.Board()

	listID, err := scopeList(board, listRef)
	if err != nil {
		return dto.TaskDTO{}, err
	}

	task, listID, err := service.ResolveTask(board, taskRef, listID)
	if err != nil {
		return dto.TaskDTO{}, err
	}
	list, _ := board.FindList(listID)

	uc.store.Dispatch(action.DeleteTask{ListID: listID, TaskID: task.ID})
	return dto.TaskToDTOInList(task, list), nil
}
