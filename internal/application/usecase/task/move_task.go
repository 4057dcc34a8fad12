package task

import (
	"context"

	"kanban/internal/application/dto"
	"kanban/internal/application/state"
	"kanban/internal/domain/action"
	"kanban/internal/domain/service"
)

// MoveTaskUseCase handles moving a task to the end of another list
type MoveTaskUseCase struct {
	store state.Dispatcher
}

// NewMoveTaskUseCase creates a new MoveTaskUseCase
func NewMoveTaskUseCase(store state.Dispatcher) *MoveTaskUseCase {
	return &MoveTaskUseCase{store: store}
}

// Execute moves the task and reports whether it changed lists.
// Moving a task onto its own list leaves it where it is.
func (uc *MoveTaskUseCase) Execute(ctx context.Context, req dto.MoveTaskRequest) (dto.TaskDTO, bool, error) {
	board := uc.store.Board()

	sourceID, err := scopeList(board, req.SourceListRef)
	if err != nil {
		return dto.TaskDTO{}, false, err
	}

	task, sourceID, err := service.ResolveTask(board, req.TaskRef, sourceID)
	if err != nil {
		return dto.TaskDTO{}, false, err
	}

	target, err := service.ResolveList(board, req.TargetListRef)
	if err != nil {
		return dto.TaskDTO{}, false, err
	}

	if target.ID == sourceID {
		return taskInList(board, task.ID, task), false, nil
	}

	board = uc.store.Dispatch(action.MoveTask{
		TaskID:       task.ID,
		SourceListID: sourceID,
		TargetListID: target.ID,
	})
	return taskInList(board, task.ID, task), true, nil
}
