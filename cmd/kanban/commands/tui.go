package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"kanban/tui"
	"kanban/tui/style"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal user interface",
	Long: `Launch the interactive TUI (Terminal User Interface) for managing your Kanban board.

Default keyboard shortcuts (configurable under keybindings in the config file):
  ←/h      - Move to left list
  →/l      - Move to right list
  ↑/k      - Move to task above
  ↓/j      - Move to task below
  a        - Add new task to current list
  e/Enter  - Edit selected task
  d        - Delete selected task
  m        - Move task to next list
  n        - Add a new list
  r        - Rename current list
  D        - Delete current list (asks first)
  s        - Sort current list by name
  /        - Filter tasks by name (Esc clears)
  q/Ctrl+C - Quit application

Tasks can also be dragged onto another list with the mouse.

Changes to the config file are picked up while the TUI is running.

Examples:
  # Launch TUI
  kanban tui

  # Launch TUI (shorthand - default command)
  kanban`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Initialize styles and keybindings from config
		style.InitStyles(cfg)
		tui.InitKeybindings(cfg)

		watcher, err := tui.NewConfigWatcher(loader)
		if err != nil {
			container.Logger.WithError(err).Warn("config changes will not be picked up")
			watcher = nil
		}

		m := tui.NewModel(container, watcher)

		// Start the program
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running TUI: %w", err)
		}

		if watcher != nil {
			watcher.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
