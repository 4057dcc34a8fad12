package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kanban/tui/style"
)

const (
	headerHeight   = 1
	taskCardHeight = 2 // name line plus description line
	minColumnWidth = 24

	// title, blank separator and the "more above" line sit above the first task
	columnHeaderLines = 3
	// the "more below" line
	columnFooterLines = 1
)

// layout is the board geometry shared by rendering and mouse hit-testing
type layout struct {
	columnWidth    int // outer width including border
	innerWidth     int // width including padding, excluding border
	textWidth      int
	columnHeight   int // outer height including border
	innerHeight    int
	visibleColumns int
	visibleTasks   int
	tasksTop       int // screen row of the first task line
}

func (m Model) layout() layout {
	pv := style.ColumnStyle.GetPaddingTop()
	ph := style.ColumnStyle.GetPaddingLeft()

	visible := m.width / minColumnWidth
	if visible < 1 {
		visible = 1
	}
	if n := len(m.board.Lists); n > 0 && visible > n {
		visible = n
	}

	l := layout{visibleColumns: visible}
	l.columnWidth = m.width / visible
	l.innerWidth = l.columnWidth - 2
	l.textWidth = l.innerWidth - 2*ph
	if l.textWidth < 1 {
		l.textWidth = 1
	}

	minHeight := 2 + 2*pv + columnHeaderLines + taskCardHeight + columnFooterLines
	l.columnHeight = m.height - headerHeight - m.footerHeight()
	if l.columnHeight < minHeight {
		l.columnHeight = minHeight
	}
	l.innerHeight = l.columnHeight - 2

	textHeight := l.innerHeight - 2*pv
	l.visibleTasks = (textHeight - columnHeaderLines - columnFooterLines) / taskCardHeight
	if l.visibleTasks < 1 {
		l.visibleTasks = 1
	}
	l.tasksTop = headerHeight + 1 + pv + columnHeaderLines

	return l
}

// footerHeight is the status line plus the help block
func (m Model) footerHeight() int {
	return 1 + lipgloss.Height(style.HelpStyle.Render(""))
}

// hitTest maps a screen cell to a list index and task index, -1 when absent
func (m Model) hitTest(x, y int) (int, int) {
	l := m.layout()
	if l.columnWidth <= 0 || x < 0 || y < headerHeight || y >= headerHeight+l.columnHeight {
		return -1, -1
	}

	slot := x / l.columnWidth
	col := m.horizontalScrollOffset + slot
	if slot >= l.visibleColumns || col >= len(m.board.Lists) {
		return -1, -1
	}

	rel := y - l.tasksTop
	if rel < 0 {
		return col, -1
	}
	idx := rel / taskCardHeight
	if idx >= l.visibleTasks {
		return col, -1
	}

	if col < len(m.scrollOffsets) {
		idx += m.scrollOffsets[col]
	}
	if idx >= len(m.board.Lists[col].Tasks) {
		return col, -1
	}
	return col, idx
}

// truncate shortens s to fit width cells on a single line
func truncate(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}

	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
