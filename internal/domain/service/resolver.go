package service

import (
	"fmt"

	"kanban/internal/domain/entity"
)

// ResolveList finds a list by ID, falling back to an exact name match.
// A name shared by several lists is ambiguous.
func ResolveList(board entity.Board, ref string) (entity.List, error) {
	if list, ok := board.FindList(ref); ok {
		return list, nil
	}

	var matches []entity.List
	for _, list := range board.Lists {
		if list.Name == ref {
			matches = append(matches, list)
		}
	}

	switch len(matches) {
	case 0:
		return entity.List{}, fmt.Errorf("%w: %s", entity.ErrListNotFound, ref)
	case 1:
		return matches[0].Clone(), nil
	default:
		return entity.List{}, fmt.Errorf("%w: %s", entity.ErrAmbiguousList, ref)
	}
}

// ResolveTask finds a task by ID or exact name and returns it with its list ID.
// When listID is non-empty the search is limited to that list.
func ResolveTask(board entity.Board, ref, listID string) (entity.Task, string, error) {
	type match struct {
		task   entity.Task
		listID string
	}
	var byName []match

	for _, list := range board.Lists {
		if listID != "" && list.ID != listID {
			continue
		}
		for _, task := range list.Tasks {
			if task.ID == ref {
				return task, list.ID, nil
			}
			if task.Name == ref {
				byName = append(byName, match{task: task, listID: list.ID})
			}
		}
	}

	switch len(byName) {
	case 0:
		return entity.Task{}, "", fmt.Errorf("%w: %s", entity.ErrTaskNotFound, ref)
	case 1:
		return byName[0].task, byName[0].listID, nil
	default:
		return entity.Task{}, "", fmt.Errorf("%w: %s", entity.ErrAmbiguousTask, ref)
	}
}
