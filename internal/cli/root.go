// Package cli implements the hrctl command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"hr-dashboard-api/internal/dashboard"
	"hr-dashboard-api/internal/logging"
	"hr-dashboard-api/pkg/client"

	"github.com/spf13/cobra"
)

// ErrReported marks a failure the user has already been alerted about.
var ErrReported = errors.New("reported")

// app is shared by every subcommand; PersistentPreRunE fills it in.
type app struct {
	serverFlag string
	verbose    bool

	client *client.Client
	logger *slog.Logger
}

func (a *app) dashboard(cmd *cobra.Command) *dashboard.Dashboard {
	return dashboard.New(a.client, stderrAlerter{w: cmd.ErrOrStderr()}, a.logger)
}

type stderrAlerter struct{ w io.Writer }

func (s stderrAlerter) Alert(msg string) { _, _ = fmt.Fprintln(s.w, msg) }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrReported, err)
}

func NewRootCmd(version string) *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "hrctl",
		Short:         "hrctl manages employees and tasks on an HR dashboard server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			server, err := ResolveServer(a.serverFlag)
			if err != nil {
				return err
			}
			level := "warn"
			if a.verbose {
				level = "debug"
			}
			a.logger = logging.New(cmd.ErrOrStderr(), level, "text")
			a.client = client.New(server)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.serverFlag, "server", "", "Server base URL (env: "+ServerEnv+", default: "+DefaultServer+")")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log request failures to stderr")

	cmd.AddCommand(newEmployeesCmd(a))
	cmd.AddCommand(newTasksCmd(a))
	cmd.AddCommand(newStatsCmd(a))
	cmd.AddCommand(newWatchCmd(a))

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.SetVersionTemplate("{{.Version}}\n")
	if version != "" {
		cmd.Version = version
	} else {
		cmd.Version = "dev"
	}
	return cmd
}
