package task

import (
	"context"

	"kanban/internal/application/dto"
	"kanban/internal/application/state"
	"kanban/internal/application/usecase"
	"kanban/internal/domain/action"
	"kanban/internal/domain/entity"
	"kanban/internal/domain/service"
)

// UpdateTaskUseCase handles editing a task's name and description
type UpdateTaskUseCase struct {
	store state.Dispatcher
}

// NewUpdateTaskUseCase creates a new UpdateTaskUseCase
func NewUpdateTaskUseCase(store state.Dispatcher) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{store: store}
}

// Execute applies the request. A blank name is rejected and the task keeps its prior values.
func (uc *UpdateTaskUseCase) Execute(ctx context.Context, req dto.UpdateTaskRequest) (dto.TaskDTO, error) {
	board := uc.store.Board()

	listID, err := scopeList(board, req.ListRef)
	if err != nil {
		return dto.TaskDTO{}, err
	}

	task, listID, err := service.ResolveTask(board, req.TaskRef, listID)
	if err != nil {
		return dto.TaskDTO{}, err
	}

	name := task.Name
	if req.Name != nil {
		if name, err = usecase.TaskName(*req.Name); err != nil {
			return dto.TaskDTO{}, err
		}
	}
	description := task.Description
	if req.Description != nil {
		description = usecase.Description(*req.Description)
	}

	board = uc.store.Dispatch(action.UpdateTask{
		ListID:      listID,
		TaskID:      task.ID,
		Name:        name,
		Description: description,
	})
	return taskInList(board, task.ID, task), nil
}

// scopeList resolves an optional list reference to its ID
func scopeList(board entity.Board, ref string) (string, error) {
	if ref == "" {
		return "", nil
	}
	list, err := service.ResolveList(board, ref)
	if err != nil {
		return "", err
	}
	return list.ID, nil
}

// taskInList looks the task up again after a dispatch, falling back to prior
func taskInList(board entity.Board, taskID string, prior entity.Task) dto.TaskDTO {
	for _, list := range board.Lists {
		if idx := list.TaskIndex(taskID); idx >= 0 {
			return dto.TaskToDTOInList(list.Tasks[idx], list)
		}
	}
	return dto.TaskToDTO(prior)
}
