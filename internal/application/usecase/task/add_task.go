package task

import (
	"context"

	"kanban/internal/application/dto"
	"kanban/internal/application/state"
	"kanban/internal/application/usecase"
	"kanban/internal/domain/action"
	"kanban/internal/domain/service"
)

// AddTaskUseCase handles creating a task
type AddTaskUseCase struct {
	store state.Dispatcher
}

// NewAddTaskUseCase creates a new AddTaskUseCase
func NewAddTaskUseCase(store state.Dispatcher) *AddTaskUseCase {
	return &AddTaskUseCase{store: store}
}

// Execute appends a task to the end of the referenced list
func (uc *AddTaskUseCase) Execute(ctx context.Context, req dto.AddTaskRequest) (dto.TaskDTO, error) {
	name, err := usecase.TaskName(req.Name)
	if err != nil {
		return dto.TaskDTO{}, err
	}

	list, err := service.ResolveList(uc.store.Board(), req.ListRef)
	if err != nil {
		return dto.TaskDTO{}, err
	}

	board := uc.store.Dispatch(action.AddTask{
		ListID:      list.ID,
		Name:        name,
		Description: usecase.Description(req.Description),
	})

	updated, _ := board.FindList(list.ID)
	return dto.TaskToDTOInList(updated.Tasks[len(updated.Tasks)-1], updated), nil
}
