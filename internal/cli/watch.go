package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hr-dashboard-api/pkg/models"

	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Stream change events until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			err := a.client.Watch(cmd.Context(), func(evt models.Event) error {
				_, err := fmt.Fprintf(out, "%s\t%s\t%s\n", time.Now().Format(time.TimeOnly), evt.Type, evt.ID)
				return err
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
