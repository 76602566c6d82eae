package cli

import (
	"fmt"
	"text/tabwriter"

	"hr-dashboard-api/pkg/client"
	"hr-dashboard-api/pkg/models"

	"github.com/spf13/cobra"
)

func newTasksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "Manage tasks",
	}
	cmd.AddCommand(newTasksListCmd(a))
	cmd.AddCommand(newTasksAddCmd(a))
	cmd.AddCommand(newTasksUpdateCmd(a))
	cmd.AddCommand(newTasksRmCmd(a))
	return cmd
}

func assigneeName(t models.Task) string {
	switch {
	case t.Employee != nil:
		return t.Employee.Name
	case t.EmployeeID != nil:
		return *t.EmployeeID
	}
	return "-"
}

func printTasks(cmd *cobra.Command, list []models.Task) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tTITLE\tPRIORITY\tSTATUS\tPROGRESS\tASSIGNEE")
	for _, t := range list {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d%%\t%s\n", t.ID, t.Title, t.Priority, t.Status, t.Progress, assigneeName(t))
	}
	_ = tw.Flush()
}

func newTasksListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.dashboard(cmd)
			if err := d.Load(cmd.Context()); err != nil {
				return reported(err)
			}
			printTasks(cmd, d.Tasks)
			return nil
		},
	}
}

func newTasksAddCmd(a *app) *cobra.Command {
	var in client.TaskFields
	var progress int
	var employeeID string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("progress") {
				in.Progress = &progress
			}
			if employeeID != "" {
				in.EmployeeID = &employeeID
			}
			d := a.dashboard(cmd)
			_ = d.TaskForm.OpenCreate()
			created, err := d.SubmitTask(cmd.Context(), in)
			if err != nil {
				return reported(err)
			}
			printTasks(cmd, []models.Task{created})
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Title, "title", "", "Title (required)")
	cmd.Flags().StringVar(&in.Description, "description", "", "Description")
	cmd.Flags().StringVar(&in.Priority, "priority", "", "Low, Medium or High (default Medium)")
	cmd.Flags().StringVar(&in.Status, "status", "", "Pending, In Progress or Completed (default Pending)")
	cmd.Flags().IntVar(&progress, "progress", 0, "Progress 0-100")
	cmd.Flags().StringVar(&employeeID, "employee", "", "Assignee employee id")
	return cmd
}

func newTasksUpdateCmd(a *app) *cobra.Command {
	var title, description, priority, status, employeeID string
	var progress int

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a task; --employee \"\" unassigns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch client.TaskPatch
			flags := cmd.Flags()
			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("description") {
				patch.Description = &description
			}
			if flags.Changed("priority") {
				patch.Priority = &priority
			}
			if flags.Changed("status") {
				patch.Status = &status
			}
			if flags.Changed("progress") {
				patch.Progress = &progress
			}
			if flags.Changed("employee") {
				patch.EmployeeID = &employeeID
			}
			updated, err := a.dashboard(cmd).UpdateTask(cmd.Context(), args[0], patch)
			if err != nil {
				return reported(err)
			}
			printTasks(cmd, []models.Task{updated})
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Title")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&priority, "priority", "", "Low, Medium or High")
	cmd.Flags().StringVar(&status, "status", "", "Pending, In Progress or Completed")
	cmd.Flags().IntVar(&progress, "progress", 0, "Progress 0-100")
	cmd.Flags().StringVar(&employeeID, "employee", "", "Assignee employee id")
	return cmd
}

func newTasksRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.dashboard(cmd).DeleteTask(cmd.Context(), args[0]); err != nil {
				return reported(err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", args[0])
			return nil
		},
	}
}
