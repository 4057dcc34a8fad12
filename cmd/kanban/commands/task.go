package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kanban/cmd/kanban/output"
	"kanban/internal/application/dto"
)

// taskCmd represents the task command
var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
	Long: `Manage tasks on the board - add, update, move, delete and query them.

A task has a name and an optional description and always belongs to exactly
one list. Tasks can be referenced by id or by exact name; use --list when the
same name appears in more than one list.

Examples:
  # List all tasks
  kanban task list

  # Add a task
  kanban task add "To Do" "Fix login bug" --description "Safari only"

  # Update a task
  kanban task update "Fix login bug" --name "Fix login on Safari"

  # Move a task to another list
  kanban task move "Fix login on Safari" Done

  # Pick a task with fzf and delete it
  kanban task list --output fzf | fzf | kanban task delete`,
}

// taskListCmd lists tasks
var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks in board order with optional filtering.

Output formats:
  text - Human-readable table (default)
  json - JSON output for scripting
  yaml - YAML output
  fzf  - id, name and list (tab-separated)

Examples:
  # List all tasks
  kanban task list

  # List tasks in a specific list
  kanban task list --list "To Do"

  # List tasks whose name contains "buy"
  kanban task list --search buy`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext()
		query, _ := cmd.Flags().GetString("search")
		listRef, _ := cmd.Flags().GetString("list")

		tasks, err := container.ListTasksUseCase.Execute(ctx, query, listRef)
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		switch {
		case formatter.Structured():
			return formatter.Print(tasks)
		case formatter.Format() == output.FormatFZF:
			printTasksFZF(tasks)
			return nil
		}

		if len(tasks) == 0 {
			printer.Info("No tasks found")
			return nil
		}

		rows := make([][]string, 0, len(tasks))
		for _, task := range tasks {
			rows = append(rows, []string{task.ListName, task.Name, task.Description, task.ID})
		}
		printer.Table([]string{"List", "Name", "Description", "ID"}, rows)
		return nil
	},
}

// taskAddCmd creates a new task
var taskAddCmd = &cobra.Command{
	Use:   "add <list> <name>",
	Short: "Add a task",
	Long: `Add a task to the bottom of a list.

Examples:
  # Add a task
  kanban task add "To Do" "Write report"

  # Add a task with a description
  kanban task add "To Do" "Write report" --description "quarterly numbers"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext()
		description, _ := cmd.Flags().GetString("description")

		task, err := container.AddTaskUseCase.Execute(ctx, dto.AddTaskRequest{
			ListRef:     args[0],
			Name:        args[1],
			Description: description,
		})
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}

		if formatter.Structured() {
			return formatter.Print(task)
		}
		printer.Success("Created task: %s in %s", task.Name, task.ListName)
		printer.Subtle("id: %s", task.ID)
		return nil
	},
}

// taskUpdateCmd updates a task
var taskUpdateCmd = &cobra.Command{
	Use:   "update [task]",
	Short: "Update task name or description",
	Long: `Update the name and/or description of a task. The task keeps its id and
its position in its list.

Examples:
  # Rename a task
  kanban task update "Write report" --name "Write summary"

  # Clear the description
  kanban task update "Write summary" --description ""`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext()

		args, err := resolveArgs(cmd, args, 1)
		if err != nil {
			return err
		}

		if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("description") {
			return fmt.Errorf("no updates specified. Use --name or --description")
		}

		req := dto.UpdateTaskRequest{TaskRef: args[0]}
		req.ListRef, _ = cmd.Flags().GetString("list")
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			req.Name = &name
		}
		if cmd.Flags().Changed("description") {
			description, _ := cmd.Flags().GetString("description")
			req.Description = &description
		}

		task, err := container.UpdateTaskUseCase.Execute(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}

		if formatter.Structured() {
			return formatter.Print(task)
		}
		printer.Success("Updated task: %s", task.Name)
		return nil
	},
}

// taskDeleteCmd deletes a task
var taskDeleteCmd = &cobra.Command{
	Use:   "delete [task]",
	Short: "Delete a task",
	Long: `Delete a task. The task reference can be piped in, for example from
"kanban task list --output fzf | fzf".

Examples:
  # Delete a task
  kanban task delete "Write summary"

  # Delete a task whose name also appears in another list
  kanban task delete "Write summary" --list Done`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext()
		listRef, _ := cmd.Flags().GetString("list")

		args, err := resolveArgs(cmd, args, 1)
		if err != nil {
			return err
		}

		task, err := container.DeleteTaskUseCase.Execute(ctx, args[0], listRef)
		if err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}

		printer.Success("Deleted task: %s", task.Name)
		return nil
	},
}

// taskMoveCmd moves a task to another list
var taskMoveCmd = &cobra.Command{
	Use:   "move [task] <target-list>",
	Short: "Move a task to another list",
	Long: `Move a task to the bottom of another list. Moving a task onto the list it
is already in changes nothing.

Examples:
  # Move a task
  kanban task move "Ship release" Done

  # Pick the task with fzf
  kanban task list --output fzf | fzf | kanban task move Done`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := getContext()
		from, _ := cmd.Flags().GetString("from")

		args, err := resolveArgs(cmd, args, 2)
		if err != nil {
			return err
		}

		task, moved, err := container.MoveTaskUseCase.Execute(ctx, dto.MoveTaskRequest{
			TaskRef:       args[0],
			SourceListRef: from,
			TargetListRef: args[1],
		})
		if err != nil {
			return fmt.Errorf("failed to move task: %w", err)
		}

		if formatter.Structured() {
			return formatter.Print(task)
		}
		if !moved {
			printer.Info("%s is already in %s", task.Name, task.ListName)
			return nil
		}
		printer.Success("Moved %s to %s", task.Name, task.ListName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(taskCmd)

	// Add subcommands
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskUpdateCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	taskCmd.AddCommand(taskMoveCmd)

	// taskListCmd flags
	taskListCmd.Flags().StringP("search", "s", "", "Only show tasks whose name contains this text")
	taskListCmd.Flags().StringP("list", "l", "", "Only show tasks in this list")

	// taskAddCmd flags
	taskAddCmd.Flags().StringP("description", "d", "", "Task description")

	// taskUpdateCmd flags
	taskUpdateCmd.Flags().String("name", "", "New task name")
	taskUpdateCmd.Flags().StringP("description", "d", "", "New task description")
	taskUpdateCmd.Flags().StringP("list", "l", "", "List the task is in")

	// taskDeleteCmd flags
	taskDeleteCmd.Flags().StringP("list", "l", "", "List the task is in")

	// taskMoveCmd flags
	taskMoveCmd.Flags().String("from", "", "List the task is in")
}
