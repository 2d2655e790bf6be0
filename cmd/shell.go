package cmd

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// Interactive menu actions, in display order.
const (
	menuList   = "List managed pings"
	menuAdd    = "Add a ping target"
	menuRemove = "Remove a ping target"
	menuLogs   = "View logs"
	menuStatus = "View status"
	menuEdit   = "Edit guidance"
	menuExit   = "Exit"
)

var menuItems = []string{menuList, menuAdd, menuRemove, menuLogs, menuStatus, menuEdit, menuExit}

// runShell drives the interactive menu loop. A failed action reports its
// error and returns to the menu; only Exit (or an interrupted prompt)
// leaves the loop.
func runShell(cmd *cobra.Command) error {
	app := appFromContext(cmd)
	ctx := cmd.Context()

	for {
		index, err := app.Prompter.SelectIndex("ping-ops", menuItems)
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			return err
		}

		var actionErr error
		switch menuItems[index] {
		case menuList:
			actionErr = (&ListCommand{}).Run(ctx, app)
		case menuAdd:
			target, err := app.Prompter.Input("Target address (IPv4 or IPv6)")
			if err != nil {
				actionErr = err
				break
			}
			actionErr = (&AddCommand{}).Run(ctx, app, target)
		case menuRemove:
			unit, err := selectManagedUnit(ctx, app, "remove")
			if err != nil {
				actionErr = err
				break
			}
			actionErr = (&RemoveCommand{}).Run(ctx, app, unit, false)
		case menuLogs:
			unit, err := selectManagedUnit(ctx, app, "follow")
			if err != nil {
				actionErr = err
				break
			}
			actionErr = (&LogsCommand{}).Run(ctx, app, unit)
		case menuStatus:
			unit, err := selectManagedUnit(ctx, app, "inspect")
			if err != nil {
				actionErr = err
				break
			}
			actionErr = (&StatusCommand{}).Run(ctx, app, unit)
		case menuEdit:
			unit, err := selectManagedUnit(ctx, app, "edit")
			if err != nil {
				actionErr = err
				break
			}
			actionErr = (&EditCommand{}).Run(ctx, app, unit)
		case menuExit:
			return nil
		}

		if actionErr != nil {
			if errors.Is(actionErr, promptui.ErrInterrupt) || errors.Is(actionErr, promptui.ErrEOF) {
				continue
			}
			fmt.Printf("Error: %v\n", actionErr)
		}
	}
}
