package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanban/internal/application/dto"
	"kanban/internal/di"
	"kanban/internal/infrastructure/config"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := newUnrestoredModel(t)
	return update(t, m, restoredMsg{found: m.container.Store.Restore(context.Background())})
}

// newUnrestoredModel is a sized model whose persisted board has not been loaded yet
func newUnrestoredModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig(t.TempDir())
	cfg.Log.File = filepath.Join(t.TempDir(), "kanban.log")

	container, cleanup, err := di.InitializeContainer(cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	m := NewModel(container, nil)
	return update(t, m, tea.WindowSizeMsg{Width: 200, Height: 40})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func press(t *testing.T, m Model, keyNames ...string) Model {
	t.Helper()
	for _, k := range keyNames {
		m = update(t, m, keyMsg(k))
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// seed builds two lists directly through the use cases
func seed(t *testing.T, m Model, tasks ...string) Model {
	t.Helper()
	ctx := context.Background()
	todo, err := m.container.AddListUseCase.Execute(ctx, "To Do")
	require.NoError(t, err)
	_, err = m.container.AddListUseCase.Execute(ctx, "Done")
	require.NoError(t, err)
	for _, name := range tasks {
		_, err := m.container.AddTaskUseCase.Execute(ctx, dto.AddTaskRequest{ListRef: todo.ID, Name: name})
		require.NoError(t, err)
	}
	m.refresh()
	m.syncViewport()
	return m
}

func mouse(x, y int, act tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: act, Button: tea.MouseButtonLeft}
}

func TestModel_AddListAndTaskThroughForms(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "n")
	require.Equal(t, modeForm, m.mode)
	m = typeText(t, m, "To Do")
	m = press(t, m, "enter")
	require.Equal(t, modeBoard, m.mode)

	m = press(t, m, "a")
	m = typeText(t, m, "Ship release")
	m = press(t, m, "tab")
	m = typeText(t, m, "v2")
	m = press(t, m, "enter")

	board := m.container.Store.Board()
	require.Len(t, board.Lists, 1)
	assert.Equal(t, "To Do", board.Lists[0].Name)
	require.Len(t, board.Lists[0].Tasks, 1)
	assert.Equal(t, "Ship release", board.Lists[0].Tasks[0].Name)
	assert.Equal(t, "v2", board.Lists[0].Tasks[0].Description)
	assert.Contains(t, m.View(), "Ship release")
}

func TestModel_BlankNameKeepsFormOpen(t *testing.T) {
	m := seed(t, newTestModel(t))
	before := m.container.Store.Board()

	m = press(t, m, "a")
	m = typeText(t, m, "   ")
	m = press(t, m, "enter")

	assert.Equal(t, modeForm, m.mode)
	assert.Error(t, m.err)
	assert.Equal(t, before, m.container.Store.Board())

	m = press(t, m, "esc")
	assert.Equal(t, modeBoard, m.mode)
	assert.Nil(t, m.form)
}

func TestModel_EditTaskPrefillsForm(t *testing.T) {
	m := seed(t, newTestModel(t), "Write report")

	m = press(t, m, "e")
	require.NotNil(t, m.form)
	assert.Equal(t, "Write report", m.form.name.Value())

	m = typeText(t, m, "s")
	m = press(t, m, "enter")

	assert.Equal(t, "Write reports", m.container.Store.Board().Lists[0].Tasks[0].Name)
}

func TestModel_SearchFiltersView(t *testing.T) {
	m := seed(t, newTestModel(t), "Buy groceries", "Write report", "Buy tickets")

	m = press(t, m, "/")
	require.Equal(t, modeSearch, m.mode)
	m = typeText(t, m, "buy")

	assert.Equal(t, "buy", m.query)
	assert.Equal(t, 2, m.board.TaskCount)
	assert.Equal(t, 3, m.board.TotalTasks)
	assert.Len(t, m.container.Store.Board().Lists[0].Tasks, 3, "filter never touches the board")

	m = press(t, m, "enter")
	assert.Equal(t, modeBoard, m.mode)
	assert.Equal(t, "buy", m.query)
	assert.NotContains(t, m.renderHelp(), "sort", "sorting a filtered view is not offered")

	m = press(t, m, "esc")
	assert.Empty(t, m.query)
	assert.Equal(t, 3, m.board.TaskCount)
	assert.Contains(t, m.renderHelp(), "sort")
}

func TestModel_DeleteListAsksFirst(t *testing.T) {
	m := seed(t, newTestModel(t), "a", "b")

	m = press(t, m, "D")
	require.Equal(t, modeConfirm, m.mode)
	assert.Contains(t, m.confirm.prompt, "2 task(s)")

	m = press(t, m, "n")
	assert.Equal(t, modeBoard, m.mode)
	assert.Len(t, m.container.Store.Board().Lists, 2)

	m = press(t, m, "D", "y")
	board := m.container.Store.Board()
	require.Len(t, board.Lists, 1)
	assert.Equal(t, "Done", board.Lists[0].Name)
}

func TestModel_MoveKeySendsTaskToNextList(t *testing.T) {
	m := seed(t, newTestModel(t), "Ship release")

	m = press(t, m, "m")

	board := m.container.Store.Board()
	assert.Empty(t, board.Lists[0].Tasks)
	require.Len(t, board.Lists[1].Tasks, 1)
	assert.Equal(t, 1, m.focusedColumn, "focus follows the moved task")
}

func TestModel_SortKey(t *testing.T) {
	m := seed(t, newTestModel(t), "Ship release", "Ask Al")

	m = press(t, m, "s")

	tasks := m.container.Store.Board().Lists[0].Tasks
	assert.Equal(t, "Ask Al", tasks[0].Name)
	assert.Equal(t, "Ship release", tasks[1].Name)
}

func TestModel_DragTaskToOtherList(t *testing.T) {
	m := seed(t, newTestModel(t), "Ship release")
	l := m.layout()
	y := l.tasksTop
	x := l.columnWidth / 2

	m = update(t, m, mouse(x, y, tea.MouseActionPress))
	assert.True(t, m.drag.Pressed())
	assert.False(t, m.drag.Active())

	m = update(t, m, mouse(x+l.columnWidth, y, tea.MouseActionMotion))
	require.True(t, m.drag.Active())
	assert.Contains(t, m.renderStatus(), "Ship release")

	m = update(t, m, mouse(x+l.columnWidth, y, tea.MouseActionRelease))

	board := m.container.Store.Board()
	assert.Empty(t, board.Lists[0].Tasks)
	require.Len(t, board.Lists[1].Tasks, 1)
	assert.Equal(t, "Ship release", board.Lists[1].Tasks[0].Name)
	assert.False(t, m.drag.Active())
}

func TestModel_ClickDoesNotMoveTask(t *testing.T) {
	m := seed(t, newTestModel(t), "Ship release")
	l := m.layout()
	x, y := l.columnWidth/2, l.tasksTop

	m = update(t, m, mouse(x, y, tea.MouseActionPress))
	m = update(t, m, mouse(x+2, y, tea.MouseActionMotion))
	m = update(t, m, mouse(x+2, y, tea.MouseActionRelease))

	assert.Len(t, m.container.Store.Board().Lists[0].Tasks, 1)
}

func TestModel_DropOutsideListsIsNoop(t *testing.T) {
	m := seed(t, newTestModel(t), "Ship release")
	l := m.layout()
	x, y := l.columnWidth/2, l.tasksTop

	m = update(t, m, mouse(x, y, tea.MouseActionPress))
	m = update(t, m, mouse(x+30, 0, tea.MouseActionMotion))
	require.True(t, m.drag.Active())
	m = update(t, m, mouse(x+30, 0, tea.MouseActionRelease))

	assert.Len(t, m.container.Store.Board().Lists[0].Tasks, 1)
	assert.False(t, m.drag.Active())
}

func TestModel_ViewShowsEmptyBoardHint(t *testing.T) {
	m := newTestModel(t)

	view := m.View()

	assert.Contains(t, view, "No lists yet")
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 200)
	}
}

func TestModel_ConfigReloadSwapsBindings(t *testing.T) {
	m := seed(t, newTestModel(t), "Ship release")
	t.Cleanup(func() { InitKeybindings(config.DefaultConfig("")) })

	cfg := config.DefaultConfig("")
	cfg.Keybindings.Move = []string{"M"}
	cfg.TUI.DragThreshold = 30
	m = update(t, m, configReloadedMsg{cfg: cfg})

	assert.Equal(t, "config reloaded", m.status)
	m = press(t, m, "m")
	assert.Len(t, m.container.Store.Board().Lists[0].Tasks, 1, "old binding no longer moves")
	m = press(t, m, "M")
	assert.Empty(t, m.container.Store.Board().Lists[0].Tasks)
}

func TestModel_HeaderShowsRestoreProgress(t *testing.T) {
	m := newUnrestoredModel(t)
	assert.Contains(t, m.renderHeader(), "restoring...")

	m = update(t, m, restoredMsg{found: m.container.Store.Restore(context.Background())})

	assert.NotContains(t, m.renderHeader(), "restoring...")
}

func TestModel_ConfigReloadKeepsDragInProgress(t *testing.T) {
	m := seed(t, newTestModel(t), "Ship release")
	l := m.layout()
	x, y := l.columnWidth/2, l.tasksTop

	m = update(t, m, mouse(x, y, tea.MouseActionPress))
	m = update(t, m, mouse(x+l.columnWidth, y, tea.MouseActionMotion))
	require.True(t, m.drag.Active())

	cfg := config.DefaultConfig("")
	cfg.TUI.DragThreshold = 30
	m = update(t, m, configReloadedMsg{cfg: cfg})
	t.Cleanup(func() { InitKeybindings(config.DefaultConfig("")) })

	require.True(t, m.drag.Active())
	m = update(t, m, mouse(x+l.columnWidth, y, tea.MouseActionRelease))

	board := m.container.Store.Board()
	assert.Empty(t, board.Lists[0].Tasks)
	assert.Len(t, board.Lists[1].Tasks, 1)
}
