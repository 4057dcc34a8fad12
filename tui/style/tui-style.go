package style

import (
	"github.com/charmbracelet/lipgloss"

	"kanban/internal/infrastructure/config"
)

var (
	ColumnStyle        lipgloss.Style
	FocusedColumnStyle lipgloss.Style
	DropColumnStyle    lipgloss.Style
	ColumnTitleStyle   lipgloss.Style
	TaskStyle          lipgloss.Style
	SelectedTaskStyle  lipgloss.Style
	DescriptionStyle   lipgloss.Style
	DragOverlayStyle   lipgloss.Style
	SearchStyle        lipgloss.Style
	HelpStyle          lipgloss.Style
	ErrorStyle         lipgloss.Style
)

func init() {
	InitStyles(config.DefaultConfig(""))
}

// InitStyles initializes the styles from config
func InitStyles(cfg *config.Config) {
	styles := cfg.TUI.Styles

	ColumnStyle = columnStyle(styles.Column)
	FocusedColumnStyle = columnStyle(styles.FocusedColumn)
	DropColumnStyle = columnStyle(styles.DropColumn)

	ColumnTitleStyle = textStyle(styles.ColumnTitle)
	TaskStyle = textStyle(styles.Task)
	SelectedTaskStyle = textStyle(styles.SelectedTask)
	DescriptionStyle = textStyle(styles.Description)
	DragOverlayStyle = textStyle(styles.DragOverlay)
	SearchStyle = textStyle(styles.Search)
	ErrorStyle = textStyle(styles.Error)

	// Help padding only applies above and to the left
	HelpStyle = lipgloss.NewStyle().
		Padding(styles.Help.PaddingVertical, 0, 0, styles.Help.PaddingHorizontal)
	if styles.Help.Foreground != "" {
		HelpStyle = HelpStyle.Foreground(lipgloss.Color(styles.Help.Foreground))
	}
}

func columnStyle(cs config.ColumnStyle) lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(cs.PaddingVertical, cs.PaddingHorizontal).
		Border(getBorder(cs.BorderStyle)).
		BorderForeground(lipgloss.Color(cs.BorderColor))
}

func textStyle(ts config.TextStyle) lipgloss.Style {
	s := lipgloss.NewStyle().
		Padding(ts.PaddingVertical, ts.PaddingHorizontal)
	if ts.Foreground != "" {
		s = s.Foreground(lipgloss.Color(ts.Foreground))
	}
	if ts.Background != "" {
		s = s.Background(lipgloss.Color(ts.Background))
	}
	if ts.Bold {
		s = s.Bold(true)
	}
	if ts.Italic {
		s = s.Italic(true)
	}
	if ts.Align != "" {
		s = s.Align(getAlign(ts.Align))
	}
	return s
}

// getBorder returns the border style based on the name
func getBorder(name string) lipgloss.Border {
	switch name {
	case "rounded":
		return lipgloss.RoundedBorder()
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// getAlign returns the alignment based on the name
func getAlign(name string) lipgloss.Position {
	switch name {
	case "left":
		return lipgloss.Left
	case "center":
		return lipgloss.Center
	case "right":
		return lipgloss.Right
	default:
		return lipgloss.Center
	}
}
