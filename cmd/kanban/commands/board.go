package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"kanban/cmd/kanban/output"
	"kanban/internal/application/dto"
)

// boardCmd represents the board command
var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show or reset the board",
	Long: `Show the whole board or discard it.

Examples:
  # Show every list and task
  kanban board show

  # Show only tasks whose name contains "ship"
  kanban board show --search ship

  # Show the board as JSON
  kanban board show --output json

  # Delete everything, including the saved document
  kanban board reset --yes`,
}

// boardShowCmd prints the board
var boardShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the board",
	Long: `Show every list on the board with its tasks.

With --search, tasks are filtered by a case-insensitive match on their name.
Lists are always shown, even when none of their tasks match.

Examples:
  # Show the board
  kanban board show

  # Filter tasks by name
  kanban board show --search "buy"

  # Show in YAML format
  kanban board show --output yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext()
		query, _ := cmd.Flags().GetString("search")

		board, err := container.GetBoardUseCase.Execute(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to get board: %w", err)
		}

		switch {
		case formatter.Structured():
			return formatter.Print(board)
		case formatter.Format() == output.FormatFZF:
			printTasksFZF(flattenTasks(board))
			return nil
		default:
			printBoard(board)
			return nil
		}
	},
}

// boardResetCmd discards the board
var boardResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every list and task",
	Long: `Delete every list and task and remove the saved board document.

WARNING: This cannot be undone.

Examples:
  # Reset (with confirmation)
  kanban board reset

  # Reset without confirmation
  kanban board reset --yes`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext()
		yes, _ := cmd.Flags().GetBool("yes")

		board, err := container.GetBoardUseCase.Execute(ctx, "")
		if err != nil {
			return fmt.Errorf("failed to get board: %w", err)
		}

		if !yes && !confirm(cmd, "About to delete %d list(s) and %d task(s)", len(board.Lists), board.TotalTasks) {
			printer.Info("Reset cancelled")
			return nil
		}

		if err := container.ResetBoardUseCase.Execute(ctx); err != nil {
			return fmt.Errorf("failed to reset board: %w", err)
		}

		printer.Success("Board reset")
		return nil
	},
}

// printBoard renders each list as a header followed by a task table
func printBoard(board dto.BoardDTO) {
	if len(board.Lists) == 0 {
		printer.Info("The board is empty")
		printer.Info("Create a list with: kanban list add <name>")
		return
	}

	if board.Query != "" {
		printer.Subtle("%d of %d tasks match %q", board.TaskCount, board.TotalTasks, board.Query)
	}

	for i, list := range board.Lists {
		if i > 0 {
			printer.Println("")
		}
		printList(list)
	}
}

func printList(list dto.ListDTO) {
	printer.Header("%s (%d)", list.Name, len(list.Tasks))
	printer.Subtle("id: %s", list.ID)

	if len(list.Tasks) == 0 {
		printer.Subtle("  no tasks")
		return
	}

	rows := make([][]string, 0, len(list.Tasks))
	for i, task := range list.Tasks {
		rows = append(rows, []string{strconv.Itoa(i + 1), task.Name, task.Description, task.ID})
	}
	printer.Table([]string{"#", "Name", "Description", "ID"}, rows)
}

func flattenTasks(board dto.BoardDTO) []dto.TaskDTO {
	tasks := make([]dto.TaskDTO, 0, board.TaskCount)
	for _, list := range board.Lists {
		for _, task := range list.Tasks {
			task.ListID = list.ID
			task.ListName = list.Name
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// printTasksFZF prints "id<TAB>name<TAB>list" lines for piping
func printTasksFZF(tasks []dto.TaskDTO) {
	for _, task := range tasks {
		printer.Println("%s\t%s\t%s", task.ID, task.Name, task.ListName)
	}
}

func init() {
	rootCmd.AddCommand(boardCmd)

	// Add subcommands
	boardCmd.AddCommand(boardShowCmd)
	boardCmd.AddCommand(boardResetCmd)

	boardShowCmd.Flags().StringP("search", "s", "", "Only show tasks whose name contains this text")
	boardResetCmd.Flags().BoolP("yes", "y", false, "Reset without confirmation")
}
