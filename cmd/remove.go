package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trly/ping-ops/internal/repository"
)

// RemoveCommand represents the remove command.
type RemoveCommand struct{}

// GetCobraCommand returns the cobra command for removing a ping unit.
func (c *RemoveCommand) GetCobraCommand() *cobra.Command {
	var skipConfirm bool

	removeCmd := &cobra.Command{
		Use:     "remove [target]",
		Aliases: []string{"delete", "rm"},
		Short:   "Stop, disable, and remove a managed ping unit",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return requireSystem(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFromContext(cmd)

			unit, err := argOrSelect(cmd.Context(), app, args, "remove")
			if err != nil {
				return err
			}

			return c.Run(cmd.Context(), app, unit, skipConfirm)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	removeCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip the confirmation prompt")
	return removeCmd
}

// Run executes the remove command. Removal is best-effort top to bottom:
// a stop or disable failure never blocks definition removal.
func (c *RemoveCommand) Run(ctx context.Context, app *App, unit repository.Unit, skipConfirm bool) error {
	if !skipConfirm {
		confirmed, err := app.Prompter.Confirm(fmt.Sprintf("Remove ping unit for %s", unit.Target))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := app.Orchestrator.Delete(ctx, unit.Name); err != nil {
		return err
	}

	fmt.Printf("Removed %s\n", unit.Name)
	return nil
}
