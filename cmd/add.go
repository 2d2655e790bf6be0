package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// AddCommand represents the add command.
type AddCommand struct{}

// GetCobraCommand returns the cobra command for creating a new ping unit.
func (c *AddCommand) GetCobraCommand() *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add [target]",
		Short: "Create and start a continuous ping unit for a target address",
		Args:  cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return requireSystem(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFromContext(cmd)

			target := ""
			if len(args) == 1 {
				target = args[0]
			} else {
				var err error
				target, err = app.Prompter.Input("Target address (IPv4 or IPv6)")
				if err != nil {
					return err
				}
			}

			return c.Run(cmd.Context(), app, target)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	return addCmd
}

// Run executes the add command.
func (c *AddCommand) Run(ctx context.Context, app *App, target string) error {
	unitName, err := app.Orchestrator.Create(ctx, target)
	if err != nil {
		return err
	}

	state := app.Repo.State(ctx, unitName)
	fmt.Printf("Created %s (enabled: %s, active: %s)\n", unitName, formatBool(state.Enabled), formatBool(state.Active))
	return nil
}
