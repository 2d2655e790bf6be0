package cmd

import (
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trly/ping-ops/internal/systemd"
)

func shellCommand(t *testing.T, app *App) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "ping-ops"}
	SetupCommandContext(cmd, app)
	return cmd
}

func menuIndex(t *testing.T, item string) int {
	t.Helper()
	for i, candidate := range menuItems {
		if candidate == item {
			return i
		}
	}
	t.Fatalf("menu item %q not found", item)
	return -1
}

func TestShellExit(t *testing.T) {
	prompter := &MockPrompter{
		SelectIndexFunc: func(_ string, _ []string) (int, error) {
			return menuIndex(t, menuExit), nil
		},
	}
	app := newTestApp(t, &systemd.MockManager{}, prompter)

	require.NoError(t, runShell(shellCommand(t, app)))
}

func TestShellInterruptExits(t *testing.T) {
	prompter := &MockPrompter{
		SelectIndexFunc: func(_ string, _ []string) (int, error) {
			return 0, promptui.ErrInterrupt
		},
	}
	app := newTestApp(t, &systemd.MockManager{}, prompter)

	require.NoError(t, runShell(shellCommand(t, app)))
}

func TestShellAddThenExit(t *testing.T) {
	manager := &systemd.MockManager{}
	selections := []string{menuAdd, menuExit}
	prompter := &MockPrompter{
		InputFunc: func(_ string) (string, error) { return "8.8.8.8", nil },
	}
	prompter.SelectIndexFunc = func(_ string, _ []string) (int, error) {
		item := selections[0]
		selections = selections[1:]
		return menuIndex(t, item), nil
	}
	app := newTestApp(t, manager, prompter)

	require.NoError(t, runShell(shellCommand(t, app)))
	assert.Contains(t, manager.Calls, "Start continuous-ping-8-8-8-8.service")
}

// A failing action reports its error and returns to the menu instead of
// ending the session.
func TestShellActionErrorContinues(t *testing.T) {
	manager := &systemd.MockManager{}
	selections := []string{menuAdd, menuExit}
	prompter := &MockPrompter{
		InputFunc: func(_ string) (string, error) { return "", nil },
	}
	prompter.SelectIndexFunc = func(_ string, _ []string) (int, error) {
		item := selections[0]
		selections = selections[1:]
		return menuIndex(t, item), nil
	}
	app := newTestApp(t, manager, prompter)

	require.NoError(t, runShell(shellCommand(t, app)))
	assert.Empty(t, selections)
}
