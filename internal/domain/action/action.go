package action

import "kanban/internal/domain/entity"

// Kind identifies an action in the board's mutation vocabulary
type Kind string

const (
	KindAddList    Kind = "add_list"
	KindDeleteList Kind = "delete_list"
	KindRenameList Kind = "rename_list"
	KindAddTask    Kind = "add_task"
	KindDeleteTask Kind = "delete_task"
	KindUpdateTask Kind = "update_task"
	KindMoveTask   Kind = "move_task"
	KindSortList   Kind = "sort_list"
	KindLoadState  Kind = "load_state"
)

// Action is an intent dispatched to the state engine
type Action interface {
	Kind() Kind
}

// AddList appends a new, empty list
type AddList struct {
	Name string `json:"name"`
}

// DeleteList removes a list together with its tasks
type DeleteList struct {
	ListID string `json:"list_id"`
}

// RenameList replaces a list's name
type RenameList struct {
	ListID string `json:"list_id"`
	Name   string `json:"name"`
}

// AddTask appends a new task to a list
type AddTask struct {
	ListID      string `json:"list_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DeleteTask removes a task from a list
type DeleteTask struct {
	ListID string `json:"list_id"`
	TaskID string `json:"task_id"`
}

// UpdateTask replaces a task's name and description in place
type UpdateTask struct {
	ListID      string `json:"list_id"`
	TaskID      string `json:"task_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MoveTask transfers a task from one list to the end of another
type MoveTask struct {
	TaskID       string `json:"task_id"`
	SourceListID string `json:"source_list_id"`
	TargetListID string `json:"target_list_id"`
}

// SortList orders a list's tasks by name
type SortList struct {
	ListID string `json:"list_id"`
}

// LoadState replaces the whole board, used when restoring persisted state
type LoadState struct {
	Board entity.Board `json:"board"`
}

func (AddList) Kind() Kind    { return KindAddList }
func (DeleteList) Kind() Kind { return KindDeleteList }
func (RenameList) Kind() Kind { return KindRenameList }
func (AddTask) Kind() Kind    { return KindAddTask }
func (DeleteTask) Kind() Kind { return KindDeleteTask }
func (UpdateTask) Kind() Kind { return KindUpdateTask }
func (MoveTask) Kind() Kind   { return KindMoveTask }
func (SortList) Kind() Kind   { return KindSortList }
func (LoadState) Kind() Kind  { return KindLoadState }
