package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kanban/internal/application/dto"
	"kanban/tui/style"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	var body string
	if len(m.board.Lists) == 0 {
		l := m.layout()
		body = lipgloss.Place(m.width, l.columnHeight, lipgloss.Center, lipgloss.Center,
			style.HelpStyle.Render(emptyBoardHint()))
	} else {
		body = m.renderBoard()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderStatus(), m.renderHelp())
}

func emptyBoardHint() string {
	return fmt.Sprintf("No lists yet. Press %s to create one.", keys.AddList.Help().Key)
}

// renderHeader renders the single title or search line
func (m Model) renderHeader() string {
	var line string
	switch {
	case m.mode == modeSearch:
		line = style.SearchStyle.Render(m.search.View())
	case m.query != "":
		line = style.SearchStyle.Render(fmt.Sprintf("/ %s  (%d of %d tasks)", m.query, m.board.TaskCount, m.board.TotalTasks))
	default:
		line = style.ColumnTitleStyle.UnsetAlign().Render(fmt.Sprintf("Kanban  %d lists  %d tasks", len(m.board.Lists), m.board.TotalTasks))
		if !m.container.Store.Restored() {
			line += style.HelpStyle.UnsetPadding().Render("  restoring...")
		}
	}
	return lipgloss.NewStyle().MaxWidth(m.width).MaxHeight(headerHeight).Render(line)
}

// renderBoard renders the visible lists side by side
func (m Model) renderBoard() string {
	l := m.layout()

	end := m.horizontalScrollOffset + l.visibleColumns
	if end > len(m.board.Lists) {
		end = len(m.board.Lists)
	}

	dropTarget := -1
	if m.drag.Active() {
		if col, _ := m.hitTest(m.drag.Position().X, m.drag.Position().Y); col >= 0 {
			dropTarget = col
		}
	}

	var columns []string
	for i := m.horizontalScrollOffset; i < end; i++ {
		columns = append(columns, m.renderColumn(m.board.Lists[i], i, l, i == dropTarget))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// renderColumn renders a single list with scrolling support
func (m Model) renderColumn(list dto.ListDTO, colIndex int, l layout, isDropTarget bool) string {
	isFocused := colIndex == m.focusedColumn

	title := style.ColumnTitleStyle.Width(l.textWidth).MaxHeight(1).
		Render(truncate(fmt.Sprintf("%s (%d)", list.Name, len(list.Tasks)), l.textWidth))

	scrollOffset := 0
	if colIndex < len(m.scrollOffsets) {
		scrollOffset = m.scrollOffsets[colIndex]
	}

	totalTasks := len(list.Tasks)
	startIdx := scrollOffset
	if startIdx > totalTasks {
		startIdx = totalTasks
	}
	endIdx := startIdx + l.visibleTasks
	if endIdx > totalTasks {
		endIdx = totalTasks
	}

	indicator := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		Width(l.textWidth).
		Align(lipgloss.Center)

	lines := []string{title, ""}

	// the line above the first task is always reserved so hit-testing stays fixed
	if startIdx > 0 {
		lines = append(lines, indicator.Render(fmt.Sprintf("▲ %d more", startIdx)))
	} else {
		lines = append(lines, "")
	}

	for i := startIdx; i < endIdx; i++ {
		isSelected := isFocused && i == m.focusedTask
		lines = append(lines, renderTaskCard(list.Tasks[i], l.textWidth, isSelected))
	}

	if endIdx < totalTasks {
		lines = append(lines, indicator.Render(fmt.Sprintf("▼ %d more", totalTasks-endIdx)))
	}

	if totalTasks == 0 {
		empty := "(empty)"
		if m.query != "" {
			empty = "(no matches)"
		}
		lines = append(lines, style.TaskStyle.Width(l.textWidth).Foreground(lipgloss.Color("240")).Render(empty))
	}

	content := strings.Join(lines, "\n")

	columnStyle := style.ColumnStyle
	switch {
	case isDropTarget:
		columnStyle = style.DropColumnStyle
	case isFocused:
		columnStyle = style.FocusedColumnStyle
	}
	return columnStyle.
		Width(l.innerWidth).
		Height(l.innerHeight).
		MaxHeight(l.columnHeight).
		Render(content)
}

// renderTaskCard renders the two-line card for a task
func renderTaskCard(task dto.TaskDTO, width int, selected bool) string {
	nameStyle := style.TaskStyle
	if selected {
		nameStyle = style.SelectedTaskStyle
	}
	nameWidth := width - nameStyle.GetHorizontalPadding()
	descWidth := width - style.DescriptionStyle.GetHorizontalPadding()

	name := nameStyle.Width(width).MaxHeight(1).Render(truncate(task.Name, nameWidth))
	description := style.DescriptionStyle.Width(width).MaxHeight(1).Render(truncate(task.Description, descWidth))
	return name + "\n" + description
}

// renderStatus renders the one-line status area: prompts, errors and the drag overlay
func (m Model) renderStatus() string {
	var line string

	switch {
	case m.drag.Active():
		task, _ := m.drag.ActiveTask()
		text := "⇢ " + task.Name
		if task.Description != "" {
			text += " · " + task.Description
		}
		line = style.DragOverlayStyle.Render(truncate(text, m.width-2))

	case m.mode == modeForm && m.form != nil:
		line = m.renderForm()

	case m.mode == modeConfirm && m.confirm != nil:
		line = style.ErrorStyle.Render(m.confirm.prompt)

	case m.err != nil:
		line = style.ErrorStyle.Render(m.err.Error())

	case m.status != "":
		line = style.HelpStyle.UnsetPadding().Render(m.status)
	}

	return lipgloss.NewStyle().MaxWidth(m.width).MaxHeight(1).Render(line)
}

func (m Model) renderForm() string {
	f := m.form
	var label string
	switch f.kind {
	case formAddTask:
		label = "New task"
	case formEditTask:
		label = "Edit task"
	case formAddList:
		label = "New list"
	case formRenameList:
		label = "Rename list"
	}

	line := style.ColumnTitleStyle.UnsetAlign().Render(label+": ") + f.name.View()
	if f.hasDescription() {
		line += "  " + style.DescriptionStyle.UnsetPadding().Render("│") + " " + f.description.View()
	}
	if m.err != nil {
		line += "  " + style.ErrorStyle.UnsetPadding().Render(m.err.Error())
	}
	return line
}

// renderHelp renders the help text at the bottom
func (m Model) renderHelp() string {
	var parts []string

	switch m.mode {
	case modeSearch:
		parts = []string{"enter keep filter", "esc clear"}
	case modeForm:
		parts = []string{"enter save", "esc cancel"}
		if m.form != nil && m.form.hasDescription() {
			parts = append(parts, "tab next field")
		}
	case modeConfirm:
		parts = []string{"y confirm", "n cancel"}
	default:
		for _, b := range keys.helpBindings(m.canSort()) {
			if !b.Enabled() {
				continue
			}
			parts = append(parts, b.Help().Key+" "+b.Help().Desc)
		}
		if m.query != "" {
			parts = append(parts, "esc clear filter")
		}
	}

	help := strings.Join(parts, "  •  ")
	width := m.width - style.HelpStyle.GetHorizontalPadding()
	return style.HelpStyle.Render(truncate(help, width))
}
