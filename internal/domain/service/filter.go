package service

import (
	"strings"

	"golang.org/x/text/cases"

	"kanban/internal/domain/entity"
)

// Filter derives a read-only view of the board restricted to tasks whose
// name contains query, ignoring case. Every list is kept, even when none of
// its tasks match. An empty query returns the board unchanged.
func Filter(board entity.Board, query string) entity.Board {
	if query == "" {
		return board
	}

	folder := cases.Fold()
	needle := folder.String(query)

	lists := make([]entity.List, len(board.Lists))
	for i, list := range board.Lists {
		matched := make([]entity.Task, 0, len(list.Tasks))
		for _, task := range list.Tasks {
			if matchesQuery(folder, task.Name, needle) {
				matched = append(matched, task)
			}
		}
		lists[i] = entity.List{
			ID:    list.ID,
			Name:  list.Name,
			Tasks: matched,
		}
	}

	return entity.Board{Lists: lists}
}

// matchesQuery reports whether name contains the already folded needle
func matchesQuery(folder cases.Caser, name, needle string) bool {
	return strings.Contains(folder.String(name), needle)
}
