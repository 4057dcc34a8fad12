package dto

import "kanban/internal/domain/entity"

// BoardDTO represents a board data transfer object
type BoardDTO struct {
	Lists      []ListDTO `json:"lists" yaml:"lists"`
	Query      string    `json:"query,omitempty" yaml:"query,omitempty"`
	TaskCount  int       `json:"task_count" yaml:"task_count"`
	TotalTasks int       `json:"total_tasks" yaml:"total_tasks"`
}

// ListDTO represents a list data transfer object
type ListDTO struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	TaskCount int       `json:"task_count" yaml:"task_count"`
	Tasks     []TaskDTO `json:"tasks" yaml:"tasks"`
}

// TaskDTO represents a task data transfer object
type TaskDTO struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	ListID      string `json:"list_id,omitempty" yaml:"list_id,omitempty"`
	ListName    string `json:"list_name,omitempty" yaml:"list_name,omitempty"`
}

// AddTaskRequest represents a request to create a task
type AddTaskRequest struct {
	ListRef     string `json:"list"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateTaskRequest represents a request to update a task.
// Nil fields keep their current value.
type UpdateTaskRequest struct {
	TaskRef     string  `json:"task"`
	ListRef     string  `json:"list,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// MoveTaskRequest represents a request to move a task
type MoveTaskRequest struct {
	TaskRef       string `json:"task"`
	SourceListRef string `json:"source_list,omitempty"`
	TargetListRef string `json:"target_list"`
}

// BoardToDTO converts a board. total is the unfiltered task count.
func BoardToDTO(board entity.Board, query string, total int) BoardDTO {
	lists := make([]ListDTO, len(board.Lists))
	for i, list := range board.Lists {
		lists[i] = ListToDTO(list)
	}
	return BoardDTO{
		Lists:      lists,
		Query:      query,
		TaskCount:  board.TaskCount(),
		TotalTasks: total,
	}
}

// ListToDTO converts a list and its tasks
func ListToDTO(list entity.List) ListDTO {
	tasks := make([]TaskDTO, len(list.Tasks))
	for i, task := range list.Tasks {
		tasks[i] = TaskToDTOInList(task, list)
	}
	return ListDTO{
		ID:        list.ID,
		Name:      list.Name,
		TaskCount: len(list.Tasks),
		Tasks:     tasks,
	}
}

// TaskToDTO converts a task without list context
func TaskToDTO(task entity.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
	}
}

// TaskToDTOInList converts a task and records the list that owns it
func TaskToDTOInList(task entity.Task, list entity.List) TaskDTO {
	d := TaskToDTO(task)
	d.ListID = list.ID
	d.ListName = list.Name
	return d
}
