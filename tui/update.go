package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"kanban/internal/application/dragdrop"
	"kanban/internal/application/dto"
	"kanban/tui/style"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncViewport()
		return m, nil

	case restoredMsg:
		if msg.found {
			m.status = "board restored"
		}
		m.refresh()
		m.syncViewport()
		return m, nil

	case configReloadedMsg:
		return m.applyConfig(msg)

	case tea.MouseMsg:
		if m.mode == modeBoard {
			m.handleMouse(msg)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateBoard(msg)
		}
	}

	return m, nil
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	switch {
	case key.Matches(msg, keys.Quit):
		if m.watcher != nil {
			m.watcher.Close()
		}
		return m, tea.Quit

	case key.Matches(msg, cancelKey):
		if m.query != "" {
			m.setQuery("")
		}

	case key.Matches(msg, keys.Left):
		m.moveLeft()

	case key.Matches(msg, keys.Right):
		m.moveRight()

	case key.Matches(msg, keys.Up):
		m.moveUp()

	case key.Matches(msg, keys.Down):
		m.moveDown()

	case key.Matches(msg, keys.Move):
		m.moveTask()

	case key.Matches(msg, keys.Add):
		if list := m.currentList(); list != nil {
			return m, m.openForm(formAddTask, list.ID, nil)
		}

	case key.Matches(msg, keys.Edit):
		if task := m.currentTask(); task != nil {
			return m, m.openForm(formEditTask, m.currentList().ID, task)
		}

	case key.Matches(msg, keys.AddList):
		return m, m.openForm(formAddList, "", nil)

	case key.Matches(msg, keys.Rename):
		if list := m.currentList(); list != nil {
			return m, m.openForm(formRenameList, list.ID, nil)
		}

	case key.Matches(msg, keys.Delete):
		m.deleteTask()

	case key.Matches(msg, keys.DeleteList):
		m.askDeleteList()

	case key.Matches(msg, keys.Sort):
		m.sortList()

	case key.Matches(msg, keys.Search):
		m.mode = modeSearch
		m.search.SetValue(m.query)
		m.search.CursorEnd()
		return m, m.search.Focus()
	}

	m.syncViewport()
	return m, nil
}

// moveLeft moves focus to the left list
func (m *Model) moveLeft() {
	if m.focusedColumn > 0 {
		m.focusedColumn--
		m.focusedTask = 0
		m.clampTaskFocus()
	}
}

// moveRight moves focus to the right list
func (m *Model) moveRight() {
	if m.focusedColumn < len(m.board.Lists)-1 {
		m.focusedColumn++
		m.focusedTask = 0
		m.clampTaskFocus()
	}
}

// moveUp moves focus to the task above
func (m *Model) moveUp() {
	if m.focusedTask > 0 {
		m.focusedTask--
	}
}

// moveDown moves focus to the task below
func (m *Model) moveDown() {
	if m.focusedTask < m.currentColumnTaskCount()-1 {
		m.focusedTask++
	}
}

// moveTask moves the focused task to the end of the next list
func (m *Model) moveTask() {
	task := m.currentTask()
	if task == nil || m.focusedColumn >= len(m.board.Lists)-1 {
		return
	}
	target := m.board.Lists[m.focusedColumn+1]

	_, moved, err := m.container.MoveTaskUseCase.Execute(context.Background(), dto.MoveTaskRequest{
		TaskRef:       task.ID,
		SourceListRef: m.currentList().ID,
		TargetListRef: target.ID,
	})
	if err != nil {
		m.err = err
		return
	}
	m.refresh()
	if moved {
		m.focusTask(target.ID, task.ID)
	}
}

// deleteTask removes the focused task
func (m *Model) deleteTask() {
	task := m.currentTask()
	if task == nil {
		return
	}

	if _, err := m.container.DeleteTaskUseCase.Execute(context.Background(), task.ID, m.currentList().ID); err != nil {
		m.err = err
		return
	}
	m.status = fmt.Sprintf("deleted %q", task.Name)
	m.refresh()
}

// askDeleteList asks before deleting a list and everything in it
func (m *Model) askDeleteList() {
	list := m.currentList()
	if list == nil {
		return
	}

	total := list.TaskCount
	if canonical, ok := m.container.Store.Board().FindList(list.ID); ok {
		total = len(canonical.Tasks)
	}
	m.confirm = &confirmation{
		prompt: fmt.Sprintf("Delete list %q and its %d task(s)? (y/n)", list.Name, total),
		listID: list.ID,
	}
	m.mode = modeConfirm
}

// sortList orders the focused list by name when sorting is offered
func (m *Model) sortList() {
	if !m.canSort() {
		return
	}
	if _, err := m.container.SortListUseCase.Execute(context.Background(), m.currentList().ID); err != nil {
		m.err = err
		return
	}
	m.refresh()
}

// focusTask moves focus to a task if it is visible
func (m *Model) focusTask(listID, taskID string) {
	for i, list := range m.board.Lists {
		if list.ID != listID {
			continue
		}
		m.focusedColumn = i
		for j, task := range list.Tasks {
			if task.ID == taskID {
				m.focusedTask = j
				return
			}
		}
		m.clampTaskFocus()
		return
	}
}

func (m *Model) setQuery(query string) {
	m.query = query
	m.refresh()
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, submitKey):
		m.mode = modeBoard
		m.search.Blur()
		return m, nil

	case key.Matches(msg, cancelKey):
		m.mode = modeBoard
		m.search.Blur()
		m.search.SetValue("")
		m.setQuery("")
		m.syncViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.query {
		m.setQuery(m.search.Value())
		m.syncViewport()
	}
	return m, cmd
}

// openForm starts editing. Task forms are prefilled from task when editing.
func (m *Model) openForm(kind formKind, listID string, task *dto.TaskDTO) tea.Cmd {
	f := &form{
		kind:        kind,
		listID:      listID,
		name:        textinput.New(),
		description: textinput.New(),
	}
	f.name.Prompt = ""
	f.description.Prompt = ""
	f.name.Placeholder = "name"
	f.description.Placeholder = "description (optional)"

	switch kind {
	case formEditTask:
		f.taskID = task.ID
		f.name.SetValue(task.Name)
		f.description.SetValue(task.Description)
	case formRenameList:
		if list := m.currentList(); list != nil {
			f.name.SetValue(list.Name)
		}
	}
	f.name.CursorEnd()

	m.form = f
	m.mode = modeForm
	m.err = nil
	return f.name.Focus()
}

func (f *form) hasDescription() bool {
	return f.kind == formAddTask || f.kind == formEditTask
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form

	switch {
	case key.Matches(msg, cancelKey):
		m.closeForm()
		return m, nil

	case key.Matches(msg, submitKey):
		if err := m.submitForm(); err != nil {
			m.err = err
			return m, nil
		}
		m.closeForm()
		m.syncViewport()
		return m, nil

	case key.Matches(msg, nextField):
		if f.hasDescription() {
			f.field = 1 - f.field
			if f.field == 0 {
				f.description.Blur()
				return m, f.name.Focus()
			}
			f.name.Blur()
			return m, f.description.Focus()
		}
		return m, nil
	}

	var cmd tea.Cmd
	if f.field == 0 {
		f.name, cmd = f.name.Update(msg)
	} else {
		f.description, cmd = f.description.Update(msg)
	}
	return m, cmd
}

// submitForm commits the form. A blank name is rejected and nothing changes.
func (m *Model) submitForm() error {
	ctx := context.Background()
	f := m.form

	switch f.kind {
	case formAddList:
		list, err := m.container.AddListUseCase.Execute(ctx, f.name.Value())
		if err != nil {
			return err
		}
		m.refresh()
		m.focusTask(list.ID, "")

	case formRenameList:
		if _, err := m.container.RenameListUseCase.Execute(ctx, f.listID, f.name.Value()); err != nil {
			return err
		}
		m.refresh()

	case formAddTask:
		task, err := m.container.AddTaskUseCase.Execute(ctx, dto.AddTaskRequest{
			ListRef:     f.listID,
			Name:        f.name.Value(),
			Description: f.description.Value(),
		})
		if err != nil {
			return err
		}
		m.refresh()
		m.focusTask(f.listID, task.ID)

	case formEditTask:
		name := f.name.Value()
		description := f.description.Value()
		if _, err := m.container.UpdateTaskUseCase.Execute(ctx, dto.UpdateTaskRequest{
			TaskRef:     f.taskID,
			ListRef:     f.listID,
			Name:        &name,
			Description: &description,
		}); err != nil {
			return err
		}
		m.refresh()
	}

	return nil
}

func (m *Model) closeForm() {
	m.form = nil
	m.mode = modeBoard
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, confirmYes):
		if _, err := m.container.DeleteListUseCase.Execute(context.Background(), m.confirm.listID); err != nil {
			m.err = err
		}
		m.refresh()
		m.syncViewport()
	case key.Matches(msg, confirmNo):
	default:
		return m, nil
	}

	m.confirm = nil
	m.mode = modeBoard
	return m, nil
}

// handleMouse feeds the drag tracker and dispatches the move it produces
func (m *Model) handleMouse(msg tea.MouseMsg) {
	point := dragdrop.Point{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		col, idx := m.hitTest(msg.X, msg.Y)
		if col < 0 {
			return
		}
		m.focusedColumn = col
		if idx < 0 {
			m.clampTaskFocus()
			return
		}
		m.focusedTask = idx
		list := m.board.Lists[col]
		m.drag.Press(toEntityTask(list.Tasks[idx]), list.ID, point)

	case tea.MouseActionMotion:
		m.drag.Move(point)

	case tea.MouseActionRelease:
		if !m.drag.Pressed() {
			return
		}
		m.drag.Move(point)

		// cards sit inside their column, so any cell of a column targets its list
		target := dragdrop.DropTarget{Kind: dragdrop.TargetNone}
		if col, _ := m.hitTest(msg.X, msg.Y); col >= 0 {
			target = dragdrop.ListTarget(m.board.Lists[col].ID)
		}

		task, _ := m.drag.ActiveTask()
		move, ok := m.drag.Release(target)
		if !ok {
			return
		}
		m.container.Store.Dispatch(move)
		m.refresh()
		m.focusTask(move.TargetListID, task.ID)
		m.syncViewport()
	}
}

// applyConfig swaps in styles and key bindings from a reloaded config
func (m Model) applyConfig(msg configReloadedMsg) (tea.Model, tea.Cmd) {
	var next tea.Cmd
	if m.watcher != nil {
		next = m.watcher.Next()
	}

	if msg.err != nil {
		if errors.Is(msg.err, errWatcherClosed) {
			return m, nil
		}
		m.err = fmt.Errorf("config reload failed: %w", msg.err)
		return m, next
	}

	style.InitStyles(msg.cfg)
	InitKeybindings(msg.cfg)
	m.drag.SetThreshold(msg.cfg.TUI.DragThreshold)
	m.status = "config reloaded"
	m.syncViewport()
	return m, next
}
