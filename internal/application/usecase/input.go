package usecase

import (
	"strings"

	"kanban/internal/domain/entity"
)

// ListName trims a list name and rejects it when nothing is left
func ListName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", entity.ErrEmptyListName
	}
	return name, nil
}

// TaskName trims a task name and rejects it when nothing is left
func TaskName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", entity.ErrEmptyTaskName
	}
	return name, nil
}

// Description trims a task description. Empty descriptions are allowed.
func Description(description string) string {
	return strings.TrimSpace(description)
}
