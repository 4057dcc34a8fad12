package entity

// Task represents a unit of work owned by exactly one list
type Task struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// List represents a named, ordered container of tasks
type List struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Tasks []Task `json:"tasks" yaml:"tasks"`
}

// Board is the root aggregate and the unit of persistence
type Board struct {
	Lists []List `json:"lists" yaml:"lists"`
}

// NewBoard returns an empty board
func NewBoard() Board {
	return Board{Lists: []List{}}
}

// ListIndex returns the position of the list with the given ID, or -1
func (b Board) ListIndex(listID string) int {
	for i, list := range b.Lists {
		if list.ID == listID {
			return i
		}
	}
	return -1
}

// FindList returns a copy of the list with the given ID
func (b Board) FindList(listID string) (List, bool) {
	idx := b.ListIndex(listID)
	if idx < 0 {
		return List{}, false
	}
	return b.Lists[idx].Clone(), true
}

// FindTask locates a task anywhere on the board and returns it with its owning list ID
func (b Board) FindTask(taskID string) (Task, string, bool) {
	for _, list := range b.Lists {
		if idx := list.TaskIndex(taskID); idx >= 0 {
			return list.Tasks[idx], list.ID, true
		}
	}
	return Task{}, "", false
}

// TaskCount returns the number of tasks across all lists
func (b Board) TaskCount() int {
	count := 0
	for _, list := range b.Lists {
		count += len(list.Tasks)
	}
	return count
}

// Clone returns a deep copy of the board
func (b Board) Clone() Board {
	lists := make([]List, len(b.Lists))
	for i, list := range b.Lists {
		lists[i] = list.Clone()
	}
	return Board{Lists: lists}
}

// Normalize replaces nil task slices with empty ones so that encoded
// documents are stable regardless of how the board was built
func (b Board) Normalize() Board {
	out := b.Clone()
	for i := range out.Lists {
		if out.Lists[i].Tasks == nil {
			out.Lists[i].Tasks = []Task{}
		}
	}
	return out
}

// TaskIndex returns the position of the task with the given ID, or -1
func (l List) TaskIndex(taskID string) int {
	for i, task := range l.Tasks {
		if task.ID == taskID {
			return i
		}
	}
	return -1
}

// Clone returns a copy of the list with its own task slice
func (l List) Clone() List {
	tasks := make([]Task, len(l.Tasks))
	copy(tasks, l.Tasks)
	l.Tasks = tasks
	return l
}
