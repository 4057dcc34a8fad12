package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"kanban/internal/application/dragdrop"
	"kanban/internal/application/dto"
	"kanban/internal/di"
	"kanban/internal/domain/entity"
	"kanban/internal/infrastructure/config"
)

type mode int

const (
	modeBoard mode = iota
	modeSearch
	modeForm
	modeConfirm
)

type formKind int

const (
	formAddTask formKind = iota
	formEditTask
	formAddList
	formRenameList
)

// form is an open editor for a list or task. Cancelling it leaves the board untouched.
type form struct {
	kind        formKind
	listID      string
	taskID      string
	name        textinput.Model
	description textinput.Model
	field       int // 0 name, 1 description
}

// confirmation is a pending yes/no question
type confirmation struct {
	prompt string
	listID string
}

// Model represents the TUI state
type Model struct {
	container *di.Container
	watcher   *ConfigWatcher

	board                  dto.BoardDTO // filtered view of the canonical board
	query                  string
	focusedColumn          int   // which list is currently selected
	focusedTask            int   // which task in the current list is selected
	scrollOffsets          []int // scroll offset for each list (vertical)
	horizontalScrollOffset int   // horizontal scroll offset for lists
	width                  int
	height                 int

	mode    mode
	search  textinput.Model
	form    *form
	confirm *confirmation
	drag    *dragdrop.Tracker

	status string
	err    error
}

// NewModel creates a new TUI model. watcher may be nil.
func NewModel(container *di.Container, watcher *ConfigWatcher) Model {
	search := textinput.New()
	search.Placeholder = "filter tasks by name"
	search.Prompt = "/ "

	m := Model{
		container: container,
		watcher:   watcher,
		search:    search,
		drag:      dragdrop.NewTracker(container.Config.TUI.DragThreshold),
	}
	m.refresh()
	return m
}

// restoredMsg reports that persisted state has been loaded
type restoredMsg struct {
	found bool
}

// configReloadedMsg carries a config re-read after the file changed on disk
type configReloadedMsg struct {
	cfg *config.Config
	err error
}

// restore loads persisted state off the event loop
func (m Model) restore() tea.Cmd {
	store := m.container.Store
	return func() tea.Msg {
		return restoredMsg{found: store.Restore(context.Background())}
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.restore()}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.Next())
	}
	return tea.Batch(cmds...)
}

// refresh rebuilds the view from the store and keeps focus in range
func (m *Model) refresh() {
	board, err := m.container.GetBoardUseCase.Execute(context.Background(), m.query)
	if err != nil {
		m.err = err
		return
	}
	m.board = board

	if len(m.scrollOffsets) != len(board.Lists) {
		offsets := make([]int, len(board.Lists))
		copy(offsets, m.scrollOffsets)
		m.scrollOffsets = offsets
	}

	if m.focusedColumn >= len(board.Lists) {
		m.focusedColumn = len(board.Lists) - 1
	}
	if m.focusedColumn < 0 {
		m.focusedColumn = 0
	}
	m.clampTaskFocus()
}

// Helper to get the focused list
func (m Model) currentList() *dto.ListDTO {
	if m.focusedColumn < 0 || m.focusedColumn >= len(m.board.Lists) {
		return nil
	}
	return &m.board.Lists[m.focusedColumn]
}

// Helper to get task count in current list
func (m Model) currentColumnTaskCount() int {
	list := m.currentList()
	if list == nil {
		return 0
	}
	return len(list.Tasks)
}

// Helper to get current task
func (m Model) currentTask() *dto.TaskDTO {
	count := m.currentColumnTaskCount()
	if count == 0 || m.focusedTask < 0 || m.focusedTask >= count {
		return nil
	}
	return &m.board.Lists[m.focusedColumn].Tasks[m.focusedTask]
}

// canSort reports whether sorting the focused list is offered.
// Sorting a filtered view would hide the effect, so it needs an empty query.
func (m Model) canSort() bool {
	return m.query == "" && m.currentColumnTaskCount() > 0
}

// Helper to update scroll position to keep focused task visible
func (m *Model) updateScroll(visibleTasks int) {
	if m.focusedColumn < 0 || m.focusedColumn >= len(m.scrollOffsets) {
		return
	}
	if visibleTasks < 1 {
		visibleTasks = 1
	}

	taskCount := m.currentColumnTaskCount()
	if taskCount == 0 {
		m.scrollOffsets[m.focusedColumn] = 0
		return
	}

	scrollOffset := m.scrollOffsets[m.focusedColumn]

	if m.focusedTask < scrollOffset {
		m.scrollOffsets[m.focusedColumn] = m.focusedTask
	} else if m.focusedTask >= scrollOffset+visibleTasks {
		m.scrollOffsets[m.focusedColumn] = m.focusedTask - visibleTasks + 1
	}

	maxScroll := taskCount - visibleTasks
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scrollOffsets[m.focusedColumn] > maxScroll {
		m.scrollOffsets[m.focusedColumn] = maxScroll
	}
	if m.scrollOffsets[m.focusedColumn] < 0 {
		m.scrollOffsets[m.focusedColumn] = 0
	}
}

// Helper to update horizontal scroll to keep focused list visible
func (m *Model) updateHorizontalScroll(visibleColumns int) {
	if visibleColumns <= 0 {
		visibleColumns = 1
	}

	totalColumns := len(m.board.Lists)
	if totalColumns == 0 {
		m.horizontalScrollOffset = 0
		return
	}

	if m.focusedColumn < m.horizontalScrollOffset {
		m.horizontalScrollOffset = m.focusedColumn
	} else if m.focusedColumn >= m.horizontalScrollOffset+visibleColumns {
		m.horizontalScrollOffset = m.focusedColumn - visibleColumns + 1
	}

	maxScroll := totalColumns - visibleColumns
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.horizontalScrollOffset > maxScroll {
		m.horizontalScrollOffset = maxScroll
	}
	if m.horizontalScrollOffset < 0 {
		m.horizontalScrollOffset = 0
	}
}

// clampTaskFocus ensures the task focus is within valid bounds
func (m *Model) clampTaskFocus() {
	taskCount := m.currentColumnTaskCount()
	if taskCount == 0 {
		m.focusedTask = 0
	} else if m.focusedTask >= taskCount {
		m.focusedTask = taskCount - 1
	}
}

// syncViewport keeps the focused list and task on screen
func (m *Model) syncViewport() {
	l := m.layout()
	m.updateHorizontalScroll(l.visibleColumns)
	m.updateScroll(l.visibleTasks)
}

func toEntityTask(task dto.TaskDTO) entity.Task {
	return entity.Task{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
	}
}
