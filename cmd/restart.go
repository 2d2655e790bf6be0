package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trly/ping-ops/internal/repository"
)

// RestartCommand represents the restart command.
type RestartCommand struct{}

// GetCobraCommand returns the cobra command for restarting a ping unit.
func (c *RestartCommand) GetCobraCommand() *cobra.Command {
	restartCmd := &cobra.Command{
		Use:   "restart [target]",
		Short: "Restart a managed ping unit",
		Args:  cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return requireSystem(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFromContext(cmd)

			unit, err := argOrSelect(cmd.Context(), app, args, "restart")
			if err != nil {
				return err
			}

			return c.Run(cmd.Context(), app, unit)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	return restartCmd
}

// Run executes the restart command.
func (c *RestartCommand) Run(ctx context.Context, app *App, unit repository.Unit) error {
	if err := app.Manager.Restart(ctx, unit.Name); err != nil {
		return fmt.Errorf("%w\n%s", err, app.Manager.FailureDetails(ctx, unit.Name))
	}

	fmt.Printf("Restarted %s\n", unit.Name)
	return nil
}
