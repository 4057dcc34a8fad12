package entity

import "errors"

var (
	// List errors
	ErrListNotFound  = errors.New("list not found")
	ErrEmptyListName = errors.New("list name cannot be empty")
	ErrAmbiguousList = errors.New("list reference matches more than one list")

	// Task errors
	ErrTaskNotFound  = errors.New("task not found")
	ErrEmptyTaskName = errors.New("task name cannot be empty")
	ErrAmbiguousTask = errors.New("task reference matches more than one task")

	// Storage errors
	ErrUnknownBackend = errors.New("unknown storage backend")
	ErrUnknownFormat  = errors.New("unknown document format")
	ErrClearFailed    = errors.New("failed to clear persisted board")
)
