package service

import (
	"kanban/internal/domain/action"
	"kanban/internal/domain/entity"
	"kanban/internal/domain/valueobject"
)

// Reducer computes the next board state for a dispatched action.
//
// Reduce never modifies the board it is given and performs no I/O. Actions
// that reference lists or tasks that no longer exist leave the board as it
// was, and so do action kinds the reducer does not know.
type Reducer struct {
	ids    valueobject.IDGenerator
	sorter *Sorter
}

// NewReducer creates a new Reducer
func NewReducer(ids valueobject.IDGenerator, sorter *Sorter) *Reducer {
	return &Reducer{
		ids:    ids,
		sorter: sorter,
	}
}

// Apply returns the board that results from applying a to board
func (r *Reducer) Apply(board entity.Board, a action.Action) entity.Board {
	next, _ := r.Reduce(board, a)
	return next
}

// Reduce applies a to board and reports whether the state changed.
// When nothing changed the original board is returned as-is.
func (r *Reducer) Reduce(board entity.Board, a action.Action) (entity.Board, bool) {
	switch act := a.(type) {
	case action.AddList:
		return r.addList(board, act), true
	case action.DeleteList:
		return r.deleteList(board, act)
	case action.RenameList:
		return r.renameList(board, act)
	case action.AddTask:
		return r.addTask(board, act)
	case action.DeleteTask:
		return r.deleteTask(board, act)
	case action.UpdateTask:
		return r.updateTask(board, act)
	case action.MoveTask:
		return r.moveTask(board, act)
	case action.SortList:
		return r.sortList(board, act)
	case action.LoadState:
		return act.Board, true
	default:
		return board, false
	}
}

func (r *Reducer) addList(board entity.Board, act action.AddList) entity.Board {
	lists := make([]entity.List, len(board.Lists), len(board.Lists)+1)
	copy(lists, board.Lists)
	lists = append(lists, entity.List{
		ID:    r.ids.NewID(),
		Name:  act.Name,
		Tasks: []entity.Task{},
	})
	return entity.Board{Lists: lists}
}

func (r *Reducer) deleteList(board entity.Board, act action.DeleteList) (entity.Board, bool) {
	idx := board.ListIndex(act.ListID)
	if idx < 0 {
		return board, false
	}

	lists := make([]entity.List, 0, len(board.Lists)-1)
	lists = append(lists, board.Lists[:idx]...)
	lists = append(lists, board.Lists[idx+1:]...)
	return entity.Board{Lists: lists}, true
}

func (r *Reducer) renameList(board entity.Board, act action.RenameList) (entity.Board, bool) {
	idx := board.ListIndex(act.ListID)
	if idx < 0 {
		return board, false
	}

	return replaceList(board, idx, func(list entity.List) entity.List {
		list.Name = act.Name
		return list
	}), true
}

func (r *Reducer) addTask(board entity.Board, act action.AddTask) (entity.Board, bool) {
	idx := board.ListIndex(act.ListID)
	if idx < 0 {
		return board, false
	}

	task := entity.Task{
		ID:          r.ids.NewID(),
		Name:        act.Name,
		Description: act.Description,
	}
	return replaceList(board, idx, func(list entity.List) entity.List {
		tasks := make([]entity.Task, len(list.Tasks), len(list.Tasks)+1)
		copy(tasks, list.Tasks)
		list.Tasks = append(tasks, task)
		return list
	}), true
}

func (r *Reducer) deleteTask(board entity.Board, act action.DeleteTask) (entity.Board, bool) {
	listIdx := board.ListIndex(act.ListID)
	if listIdx < 0 {
		return board, false
	}
	taskIdx := board.Lists[listIdx].TaskIndex(act.TaskID)
	if taskIdx < 0 {
		return board, false
	}

	return replaceList(board, listIdx, func(list entity.List) entity.List {
		list.Tasks = removeTask(list.Tasks, taskIdx)
		return list
	}), true
}

func (r *Reducer) updateTask(board entity.Board, act action.UpdateTask) (entity.Board, bool) {
	listIdx := board.ListIndex(act.ListID)
	if listIdx < 0 {
		return board, false
	}
	taskIdx := board.Lists[listIdx].TaskIndex(act.TaskID)
	if taskIdx < 0 {
		return board, false
	}

	return replaceList(board, listIdx, func(list entity.List) entity.List {
		tasks := make([]entity.Task, len(list.Tasks))
		copy(tasks, list.Tasks)
		tasks[taskIdx].Name = act.Name
		tasks[taskIdx].Description = act.Description
		list.Tasks = tasks
		return list
	}), true
}

func (r *Reducer) moveTask(board entity.Board, act action.MoveTask) (entity.Board, bool) {
	sourceIdx := board.ListIndex(act.SourceListID)
	if sourceIdx < 0 {
		return board, false
	}
	taskIdx := board.Lists[sourceIdx].TaskIndex(act.TaskID)
	if taskIdx < 0 {
		return board, false
	}
	if act.SourceListID == act.TargetListID {
		return board, false
	}
	// Removing without a destination would drop the task, so a stale target is a no-op
	targetIdx := board.ListIndex(act.TargetListID)
	if targetIdx < 0 {
		return board, false
	}

	task := board.Lists[sourceIdx].Tasks[taskIdx]
	lists := make([]entity.List, len(board.Lists))
	copy(lists, board.Lists)

	source := lists[sourceIdx]
	source.Tasks = removeTask(source.Tasks, taskIdx)
	lists[sourceIdx] = source

	target := lists[targetIdx]
	targetTasks := make([]entity.Task, len(target.Tasks), len(target.Tasks)+1)
	copy(targetTasks, target.Tasks)
	target.Tasks = append(targetTasks, task)
	lists[targetIdx] = target

	return entity.Board{Lists: lists}, true
}

func (r *Reducer) sortList(board entity.Board, act action.SortList) (entity.Board, bool) {
	idx := board.ListIndex(act.ListID)
	if idx < 0 {
		return board, false
	}

	return replaceList(board, idx, func(list entity.List) entity.List {
		list.Tasks = r.sorter.SortTasks(list.Tasks)
		return list
	}), true
}

// replaceList copies the list slice and swaps in the result of fn for the list at idx.
// fn receives the list by value and must not write into its task slice.
func replaceList(board entity.Board, idx int, fn func(entity.List) entity.List) entity.Board {
	lists := make([]entity.List, len(board.Lists))
	copy(lists, board.Lists)
	lists[idx] = fn(lists[idx])
	return entity.Board{Lists: lists}
}

func removeTask(tasks []entity.Task, idx int) []entity.Task {
	out := make([]entity.Task, 0, len(tasks)-1)
	out = append(out, tasks[:idx]...)
	return append(out, tasks[idx+1:]...)
}
