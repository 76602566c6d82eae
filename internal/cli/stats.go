package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show employee and task counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.dashboard(cmd)
			if err := d.Load(cmd.Context()); err != nil {
				return reported(err)
			}
			e, t := d.EmployeeStats(), d.TaskStats()
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Employees: %d total, %d active, %d on leave, %d inactive\n", e.Total, e.Active, e.OnLeave, e.Inactive)
			_, _ = fmt.Fprintf(out, "Tasks:     %d total, %d pending, %d in progress, %d completed\n", t.Total, t.Pending, t.InProgress, t.Completed)
			return nil
		},
	}
}
