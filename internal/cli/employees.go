package cli

import (
	"fmt"
	"text/tabwriter"

	"hr-dashboard-api/internal/dashboard"
	"hr-dashboard-api/pkg/client"
	"hr-dashboard-api/pkg/models"

	"github.com/spf13/cobra"
)

func newEmployeesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"employee", "emp"},
		Short:   "Manage employees",
	}
	cmd.AddCommand(newEmployeesListCmd(a))
	cmd.AddCommand(newEmployeesAddCmd(a))
	cmd.AddCommand(newEmployeesUpdateCmd(a))
	cmd.AddCommand(newEmployeesRmCmd(a))
	return cmd
}

func printEmployees(cmd *cobra.Command, list []models.Employee) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tROLE\tEMAIL\tSTATUS")
	for _, e := range list {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Role, e.Email, e.Status)
	}
	_ = tw.Flush()
}

func newEmployeesListCmd(a *app) *cobra.Command {
	var search, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.dashboard(cmd)
			if err := d.Load(cmd.Context()); err != nil {
				return reported(err)
			}
			d.Search = search
			d.StatusFilter = status
			printEmployees(cmd, d.VisibleEmployees())
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive match on name, role or email")
	cmd.Flags().StringVar(&status, "status", dashboard.StatusAll, "Active, On Leave, Inactive or All")
	return cmd
}

func newEmployeesAddCmd(a *app) *cobra.Command {
	var in client.EmployeeFields

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.dashboard(cmd)
			_ = d.EmployeeForm.OpenCreate()
			created, err := d.SubmitEmployee(cmd.Context(), in)
			if err != nil {
				return reported(err)
			}
			printEmployees(cmd, []models.Employee{created})
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "Name (required)")
	cmd.Flags().StringVar(&in.Role, "role", "", "Role (required)")
	cmd.Flags().StringVar(&in.Email, "email", "", "Email")
	cmd.Flags().StringVar(&in.Status, "status", "", "Active, On Leave or Inactive (default Active)")
	return cmd
}

func newEmployeesUpdateCmd(a *app) *cobra.Command {
	var name, role, email, status string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of an employee; only flags given are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch client.EmployeePatch
			flags := cmd.Flags()
			if flags.Changed("name") {
				patch.Name = &name
			}
			if flags.Changed("role") {
				patch.Role = &role
			}
			if flags.Changed("email") {
				patch.Email = &email
			}
			if flags.Changed("status") {
				patch.Status = &status
			}
			updated, err := a.dashboard(cmd).UpdateEmployee(cmd.Context(), args[0], patch)
			if err != nil {
				return reported(err)
			}
			printEmployees(cmd, []models.Employee{updated})
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Name")
	cmd.Flags().StringVar(&role, "role", "", "Role")
	cmd.Flags().StringVar(&email, "email", "", "Email")
	cmd.Flags().StringVar(&status, "status", "", "Active, On Leave or Inactive")
	return cmd
}

func newEmployeesRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete an employee",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.dashboard(cmd).DeleteEmployee(cmd.Context(), args[0]); err != nil {
				return reported(err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted employee %s\n", args[0])
			return nil
		},
	}
}
