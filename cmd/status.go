package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trly/ping-ops/internal/repository"
	"gopkg.in/ini.v1"
)

// StatusCommand represents the status command.
type StatusCommand struct{}

// GetCobraCommand returns the cobra command for showing unit status.
func (c *StatusCommand) GetCobraCommand() *cobra.Command {
	statusCmd := &cobra.Command{
		Use:   "status [target]",
		Short: "Show the status of a managed ping unit",
		Args:  cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return requireSystem(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFromContext(cmd)

			unit, err := argOrSelect(cmd.Context(), app, args, "inspect")
			if err != nil {
				return err
			}

			return c.Run(cmd.Context(), app, unit)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	return statusCmd
}

// Run executes the status command.
func (c *StatusCommand) Run(ctx context.Context, app *App, unit repository.Unit) error {
	props, err := app.Manager.Properties(ctx, unit.Name)
	if err != nil {
		return fmt.Errorf("error getting unit properties: %w", err)
	}

	fmt.Printf("\n=== %s ===\n\n", unit.Name)

	fmt.Println("Status:")
	fmt.Printf("  %-20s: %v\n", "State", props["ActiveState"])
	fmt.Printf("  %-20s: %v\n", "Sub-State", props["SubState"])
	fmt.Printf("  %-20s: %v\n", "Load State", props["LoadState"])

	fmt.Println("\nUnit Information:")
	fmt.Printf("  %-20s: %v\n", "Description", props["Description"])
	fmt.Printf("  %-20s: %v\n", "Path", props["FragmentPath"])
	fmt.Printf("  %-20s: %s\n", "Target", unit.Target)

	// Show the exec and restart configuration from the definition file.
	if content, err := app.Repo.ReadDefinition(unit.Name); err == nil {
		if unitConfig, err := ini.Load(content); err == nil {
			if section, err := unitConfig.GetSection("Service"); err == nil {
				fmt.Printf("\n%s Configuration:\n", titleCaser.String("service"))
				for _, key := range section.Keys() {
					fmt.Printf("  %-20s: %s\n", key.Name(), key.Value())
				}
			}
		}
	}

	fmt.Println()
	return nil
}
