package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"kanban/cmd/kanban/output"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Manage lists",
	Long: `Manage the lists on the board - add, rename, delete, sort and show them.

New lists are appended to the right of the board. A list can be referenced by
its id or by its exact name.

Examples:
  # Add a list
  kanban list add "In Progress"

  # Rename a list
  kanban list rename "In Progress" Doing

  # Sort the tasks of a list by name
  kanban list sort "To Do"

  # Delete a list and all of its tasks
  kanban list delete Doing --yes`,
}

// listAddCmd creates a new list
var listAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a list",
	Long: `Add an empty list to the right end of the board.

Examples:
  # Add a list
  kanban list add "Code Review"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext()

		list, err := container.AddListUseCase.Execute(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to add list: %w", err)
		}

		if formatter.Structured() {
			return formatter.Print(list)
		}
		printer.Success("Created list: %s", list.Name)
		printer.Subtle("id: %s", list.ID)
		return nil
	},
}

// listRenameCmd renames a list
var listRenameCmd = &cobra.Command{
	Use:   "rename <list> <new-name>",
	Short: "Rename a list",
	Long: `Rename a list. Its tasks and position are unchanged.

Examples:
  # Rename by name
  kanban list rename "In Progress" Doing`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext()

		list, err := container.RenameListUseCase.Execute(ctx, args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to rename list: %w", err)
		}

		if formatter.Structured() {
			return formatter.Print(list)
		}
		printer.Success("Renamed list to: %s", list.Name)
		return nil
	},
}

// listDeleteCmd deletes a list
var listDeleteCmd = &cobra.Command{
	Use:   "delete <list>",
	Short: "Delete a list and its tasks",
	Long: `Delete a list together with every task in it.

WARNING: The tasks in the list are deleted as well.

Examples:
  # Delete with confirmation
  kanban list delete Archived

  # Delete without confirmation
  kanban list delete Archived --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext()
		yes, _ := cmd.Flags().GetBool("yes")

		list, err := container.GetListUseCase.Execute(ctx, args[0], "")
		if err != nil {
			return fmt.Errorf("failed to find list: %w", err)
		}

		if !yes && !confirm(cmd, "About to delete list '%s' and its %d task(s)", list.Name, list.TaskCount) {
			printer.Info("Delete cancelled")
			return nil
		}

		deleted, err := container.DeleteListUseCase.Execute(ctx, list.ID)
		if err != nil {
			return fmt.Errorf("failed to delete list: %w", err)
		}

		printer.Success("Deleted list: %s (%d task(s))", deleted.Name, deleted.TaskCount)
		return nil
	},
}

// listSortCmd sorts the tasks of a list
var listSortCmd = &cobra.Command{
	Use:   "sort <list>",
	Short: "Sort the tasks of a list by name",
	Long: `Sort the tasks of a list by name, ignoring case and accents according to
board.locale in the config. Tasks with equal names keep their order.

Examples:
  # Sort a list
  kanban list sort "To Do"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext()

		list, err := container.SortListUseCase.Execute(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to sort list: %w", err)
		}

		if formatter.Structured() {
			return formatter.Print(list)
		}
		printer.Success("Sorted %d task(s) in %s", len(list.Tasks), list.Name)
		return nil
	},
}

// listShowCmd shows a single list
var listShowCmd = &cobra.Command{
	Use:   "show [list]",
	Short: "Show lists",
	Long: `Without an argument, show a summary of every list. With a list reference,
show that list and its tasks.

Examples:
  # Summary of all lists
  kanban list show

  # One list
  kanban list show "To Do"

  # One list, only tasks matching a query
  kanban list show "To Do" --search report`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext()
		query, _ := cmd.Flags().GetString("search")

		if len(args) == 1 {
			list, err := container.GetListUseCase.Execute(ctx, args[0], query)
			if err != nil {
				return fmt.Errorf("failed to get list: %w", err)
			}
			if formatter.Structured() {
				return formatter.Print(list)
			}
			printList(list)
			return nil
		}

		board, err := container.GetBoardUseCase.Execute(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to get board: %w", err)
		}

		switch {
		case formatter.Structured():
			return formatter.Print(board.Lists)
		case formatter.Format() == output.FormatFZF:
			for _, list := range board.Lists {
				printer.Println("%s\t%s", list.ID, list.Name)
			}
			return nil
		}

		if len(board.Lists) == 0 {
			printer.Info("No lists found")
			printer.Info("Create one with: kanban list add <name>")
			return nil
		}

		rows := make([][]string, 0, len(board.Lists))
		for _, list := range board.Lists {
			rows = append(rows, []string{list.Name, strconv.Itoa(len(list.Tasks)), list.ID})
		}
		printer.Table([]string{"Name", "Tasks", "ID"}, rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	// Add subcommands
	listCmd.AddCommand(listAddCmd)
	listCmd.AddCommand(listRenameCmd)
	listCmd.AddCommand(listDeleteCmd)
	listCmd.AddCommand(listSortCmd)
	listCmd.AddCommand(listShowCmd)

	listDeleteCmd.Flags().BoolP("yes", "y", false, "Delete without confirmation")
	listShowCmd.Flags().StringP("search", "s", "", "Only show tasks whose name contains this text")
}
