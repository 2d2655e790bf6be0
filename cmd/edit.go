package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trly/ping-ops/internal/repository"
)

// EditCommand represents the edit command. ping-ops does not edit unit
// files itself; it points the operator at the definition and the reload
// steps needed afterwards.
type EditCommand struct{}

// GetCobraCommand returns the cobra command for printing edit guidance.
func (c *EditCommand) GetCobraCommand() *cobra.Command {
	editCmd := &cobra.Command{
		Use:   "edit [target]",
		Short: "Show how to edit a managed ping unit's definition",
		Args:  cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return requireSystem(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFromContext(cmd)

			unit, err := argOrSelect(cmd.Context(), app, args, "edit")
			if err != nil {
				return err
			}

			return c.Run(cmd.Context(), app, unit)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	return editCmd
}

// Run executes the edit command.
func (c *EditCommand) Run(_ context.Context, app *App, unit repository.Unit) error {
	reload := "systemctl daemon-reload"
	restart := fmt.Sprintf("systemctl restart %s", unit.Name)
	if app.Config.UserMode {
		reload = "systemctl --user daemon-reload"
		restart = fmt.Sprintf("systemctl --user restart %s", unit.Name)
	}

	fmt.Printf("The definition for %s lives at:\n\n", unit.Target)
	fmt.Printf("  %s\n\n", app.Repo.UnitFilePath(unit.Name))
	fmt.Println("Edit it with your preferred editor, then apply the change with:")
	fmt.Printf("\n  %s\n  %s\n\n", reload, restart)
	return nil
}
