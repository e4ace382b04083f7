package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/knakagawa/taskpad/internal/app"
	"github.com/knakagawa/taskpad/internal/domain"
	"github.com/knakagawa/taskpad/internal/usecase"
	"github.com/spf13/cobra"
)

// newAddCommand creates the add command.
func newAddCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>...",
		Short: "Add a new task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{Text: text})
			if err != nil {
				return err
			}
			if !out.Created {
				return domain.ErrEmptyText
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added: %s\n", strings.TrimSpace(text))
			return nil
		},
	}
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(w, "No tasks.")
				return nil
			}

			for i, task := range out.Tasks {
				mark := " "
				if task.Completed {
					mark = "x"
				}
				_, _ = fmt.Fprintf(w, "%3d  [%s] %s\n", i+1, mark, task.Text)
			}

			label := "items"
			if out.Remaining == 1 {
				label = "item"
			}
			_, _ = fmt.Fprintf(w, "\n%d %s left\n", out.Remaining, label)
			return nil
		},
	}
}

// newDoneCommand creates the done command.
func newDoneCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "done <position>",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := taskAtPosition(c, args[0])
			if err != nil {
				return err
			}

			out, err := c.ToggleTaskUseCase().Execute(cmd.Context(), usecase.ToggleTaskInput{TaskID: task.ID})
			if err != nil {
				return err
			}

			state := "open"
			if out.Completed {
				state = "done"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Marked %s: %s\n", state, task.Text)
			return nil
		},
	}
}

// newRemoveCommand creates the rm command.
func newRemoveCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <position>",
		Aliases: []string{"remove"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := taskAtPosition(c, args[0])
			if err != nil {
				return err
			}

			if _, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: task.ID}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted: %s\n", task.Text)
			return nil
		},
	}
}

// newClearCommand creates the clear command.
func newClearCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all completed tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ClearCompletedUseCase().Execute(cmd.Context(), usecase.ClearCompletedInput{})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d completed task(s)\n", out.Removed)
			return nil
		},
	}
}

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import tasks from a YAML file",
		Long: `Import tasks from a YAML file.

The file is a sequence of entries:

  - text: Buy milk
  - text: Ship release
    completed: true

Entries with empty text are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ImportTasksUseCase().Execute(cmd.Context(), usecase.ImportTasksInput{Path: args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d task(s)", out.Imported)
			if out.Skipped > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), ", skipped %d", out.Skipped)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}

// taskAtPosition resolves a 1-based list position to a task. IDs are
// opaque, so the CLI addresses tasks by their display position.
func taskAtPosition(c *app.Container, arg string) (*domain.Task, error) {
	pos, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid position %q: %w", arg, err)
	}

	tasks := c.List.Tasks()
	if pos < 1 || pos > len(tasks) {
		return nil, domain.ErrTaskNotFound
	}
	return tasks[pos-1], nil
}
