/*
Copyright © 2025 Travis Lyons travis.lyons@gmail.com

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

// ListCommand represents the list command.
type ListCommand struct{}

// GetCobraCommand returns the cobra command for listing managed ping units.
func (c *ListCommand) GetCobraCommand() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Lists ping units currently managed by ping-ops",
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return requireSystem(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := appFromContext(cmd)
			return c.Run(cmd.Context(), app)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	return listCmd
}

// Run executes the list command.
func (c *ListCommand) Run(ctx context.Context, app *App) error {
	units, err := listUnits(ctx, app)
	if err != nil {
		return fmt.Errorf("error listing managed units: %w", err)
	}

	if len(units) == 0 {
		fmt.Println("No ping units are currently managed.")
		return nil
	}

	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()
	tbl := table.New("#", "Target", "Unit", "Enabled", "Active", "Since")
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

	for i, u := range units {
		state := app.Repo.State(ctx, u.Name)
		tbl.AddRow(i+1, u.Target, u.Name, formatBool(state.Enabled), formatBool(state.Active), formatSince(ctx, app, u.Name, state.Active))
	}
	tbl.Print()
	return nil
}
