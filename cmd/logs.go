package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/trly/ping-ops/internal/repository"
)

// LogsCommand represents the logs command.
type LogsCommand struct{}

// GetCobraCommand returns the cobra command for following unit logs.
func (c *LogsCommand) GetCobraCommand() *cobra.Command {
	logsCmd := &cobra.Command{
		Use:   "logs [target]",
		Short: "Follow the journal of a managed ping unit until interrupted",
		Args:  cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return requireSystem(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFromContext(cmd)

			unit, err := argOrSelect(cmd.Context(), app, args, "follow")
			if err != nil {
				return err
			}

			return c.Run(cmd.Context(), app, unit)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	return logsCmd
}

// Run executes the logs command. journalctl blocks until the operator
// interrupts; the interrupt ends the follow, not the session.
func (c *LogsCommand) Run(ctx context.Context, app *App, unit repository.Unit) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	args := []string{"--unit", unit.Name, "--follow", "--no-pager"}
	if app.Config.UserMode {
		args[0] = "--user-unit"
	}

	fmt.Printf("Following logs for %s (Ctrl-C to stop)\n", unit.Name)
	err := app.Runner.Stream(ctx, os.Stdout, os.Stderr, "journalctl", args...)
	if err != nil && !errors.Is(ctx.Err(), context.Canceled) {
		return fmt.Errorf("error following logs: %w", err)
	}
	return nil
}
