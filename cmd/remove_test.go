package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trly/ping-ops/internal/repository"
	"github.com/trly/ping-ops/internal/systemd"
)

func pingUnit() repository.Unit {
	return repository.Unit{Name: "continuous-ping-8-8-8-8.service", Target: "8.8.8.8"}
}

func TestRemoveConfirmed(t *testing.T) {
	manager := &systemd.MockManager{}
	prompter := &MockPrompter{
		ConfirmFunc: func(_ string) (bool, error) { return true, nil },
	}
	app := newTestApp(t, manager, prompter)

	err := (&RemoveCommand{}).Run(context.Background(), app, pingUnit(), false)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Stop continuous-ping-8-8-8-8.service",
		"Disable continuous-ping-8-8-8-8.service",
		"Reload",
	}, manager.Calls)
}

func TestRemoveDeclined(t *testing.T) {
	manager := &systemd.MockManager{}
	prompter := &MockPrompter{
		ConfirmFunc: func(_ string) (bool, error) { return false, nil },
	}
	app := newTestApp(t, manager, prompter)

	err := (&RemoveCommand{}).Run(context.Background(), app, pingUnit(), false)
	require.NoError(t, err)

	// Declining aborts before any systemd interaction.
	assert.Empty(t, manager.Calls)
}

func TestRemoveSkipConfirm(t *testing.T) {
	manager := &systemd.MockManager{}
	prompter := &MockPrompter{
		ConfirmFunc: func(_ string) (bool, error) {
			t.Fatal("confirmation prompt must be skipped with --yes")
			return false, nil
		},
	}
	app := newTestApp(t, manager, prompter)

	err := (&RemoveCommand{}).Run(context.Background(), app, pingUnit(), true)
	require.NoError(t, err)
	assert.NotEmpty(t, manager.Calls)
}

func TestRemoveStopFailureStillRemoves(t *testing.T) {
	manager := &systemd.MockManager{
		StopFunc: func(_ context.Context, _ string) error {
			return errors.New("unit not running")
		},
	}
	app := newTestApp(t, manager, &MockPrompter{})

	err := (&RemoveCommand{}).Run(context.Background(), app, pingUnit(), true)
	require.NoError(t, err)
	assert.Contains(t, manager.Calls, "Reload")
}
