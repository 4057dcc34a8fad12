package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/cases"

	"kanban/internal/domain/entity"
)

func allTaskNames(b entity.Board) []string {
	var names []string
	for _, list := range b.Lists {
		names = append(names, taskNames(list)...)
	}
	return names
}

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	board := sampleBoard()

	filtered := Filter(board, "")

	assert.Equal(t, board, filtered)
}

func TestFilter_CaseInsensitive(t *testing.T) {
	board := sampleBoard()

	for _, query := range []string{"buy", "BUY", "Buy"} {
		filtered := Filter(board, query)
		assert.ElementsMatch(t, []string{"Buy groceries", "Buy tickets"}, allTaskNames(filtered), "query %q", query)
	}
}

func TestFilter_KeepsEveryList(t *testing.T) {
	board := sampleBoard()

	filtered := Filter(board, "tickets")

	require.Len(t, filtered.Lists, 2)
	assert.Equal(t, "todo", filtered.Lists[0].ID)
	assert.Empty(t, filtered.Lists[0].Tasks)
	assert.Equal(t, []string{"Buy tickets"}, taskNames(filtered.Lists[1]))
}

func TestFilter_PreservesOrder(t *testing.T) {
	board := entity.Board{Lists: []entity.List{{
		ID: "l",
		Tasks: []entity.Task{
			{ID: "1", Name: "zeta report"},
			{ID: "2", Name: "other"},
			{ID: "3", Name: "alpha report"},
		},
	}}}

	filtered := Filter(board, "REPORT")

	assert.Equal(t, []string{"zeta report", "alpha report"}, taskNames(filtered.Lists[0]))
}

func TestFilter_DoesNotAliasCanonicalState(t *testing.T) {
	board := sampleBoard()

	filtered := Filter(board, "buy")
	filtered.Lists[0].Tasks[0].Name = "changed"
	filtered.Lists[1].Name = "changed"

	assert.Equal(t, sampleBoard(), board)
}

func TestFilter_MatchesDescriptionIsNotConsidered(t *testing.T) {
	board := sampleBoard()

	filtered := Filter(board, "quarterly")

	assert.Empty(t, allTaskNames(filtered))
}

func TestMatchesQuery(t *testing.T) {
	folder := cases.Fold()

	assert.True(t, matchesQuery(folder, "Buy groceries", folder.String("GROC")))
	assert.False(t, matchesQuery(folder, "Write report", folder.String("buy")))
}
