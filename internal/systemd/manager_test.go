package systemd

import (
	"context"
	"errors"
	"testing"

	"github.com/coreos/go-systemd/v22/dbus"
	godbus "github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trly/ping-ops/internal/testutil"
	"github.com/trly/ping-ops/internal/testutil/fakerunner"
)

func newTestManager(t *testing.T, conn *MockConnection) Manager {
	t.Helper()
	factory := &MockConnectionFactory{
		NewConnectionFunc: func(_ context.Context, _ bool) (Connection, error) {
			return conn, nil
		},
	}
	return NewManager(factory, fakerunner.New(), false, testutil.NewTestLogger(t))
}

func doneChannel() chan string {
	ch := make(chan string, 1)
	ch <- "done"
	return ch
}

func TestManagerStart(t *testing.T) {
	var started string
	conn := &MockConnection{
		StartUnitFunc: func(_ context.Context, unitName, mode string) (chan string, error) {
			started = unitName
			assert.Equal(t, "replace", mode)
			return doneChannel(), nil
		},
	}

	mgr := newTestManager(t, conn)
	err := mgr.Start(context.Background(), "continuous-ping-8-8-8-8.service")
	require.NoError(t, err)
	assert.Equal(t, "continuous-ping-8-8-8-8.service", started)
}

func TestManagerStartJobFailed(t *testing.T) {
	conn := &MockConnection{
		StartUnitFunc: func(_ context.Context, _, _ string) (chan string, error) {
			ch := make(chan string, 1)
			ch <- "failed"
			return ch, nil
		},
	}

	mgr := newTestManager(t, conn)
	err := mgr.Start(context.Background(), "continuous-ping-8-8-8-8.service")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed")

	var sysErr *Error
	require.ErrorAs(t, err, &sysErr)
	assert.Equal(t, "Start", sysErr.Operation)
}

func TestManagerStopSubmitError(t *testing.T) {
	conn := &MockConnection{
		StopUnitFunc: func(_ context.Context, _, _ string) (chan string, error) {
			return nil, errors.New("no such unit")
		},
	}

	mgr := newTestManager(t, conn)
	err := mgr.Stop(context.Background(), "continuous-ping-1-1-1-1.service")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such unit")
}

func TestManagerRestart(t *testing.T) {
	conn := &MockConnection{
		RestartUnitFunc: func(_ context.Context, _, _ string) (chan string, error) {
			return doneChannel(), nil
		},
	}

	mgr := newTestManager(t, conn)
	assert.NoError(t, mgr.Restart(context.Background(), "continuous-ping-1-1-1-1.service"))
}

func TestManagerIsActive(t *testing.T) {
	conn := &MockConnection{
		GetUnitPropertyFunc: func(_ context.Context, _, propertyName string) (*dbus.Property, error) {
			assert.Equal(t, "ActiveState", propertyName)
			return &dbus.Property{Name: propertyName, Value: godbus.MakeVariant("active")}, nil
		},
	}

	mgr := newTestManager(t, conn)
	assert.True(t, mgr.IsActive(context.Background(), "continuous-ping-8-8-8-8.service"))
}

func TestManagerIsActiveUnknownUnit(t *testing.T) {
	conn := &MockConnection{
		GetUnitPropertyFunc: func(_ context.Context, _, _ string) (*dbus.Property, error) {
			return nil, errors.New("unit not loaded")
		},
	}

	mgr := newTestManager(t, conn)
	assert.False(t, mgr.IsActive(context.Background(), "continuous-ping-8-8-8-8.service"))
}

func TestManagerIsEnabled(t *testing.T) {
	states := map[string]bool{
		"enabled":  true,
		"disabled": false,
		"static":   false,
	}

	for state, want := range states {
		conn := &MockConnection{
			GetUnitPropertyFunc: func(_ context.Context, _, propertyName string) (*dbus.Property, error) {
				assert.Equal(t, "UnitFileState", propertyName)
				return &dbus.Property{Name: propertyName, Value: godbus.MakeVariant(state)}, nil
			},
		}

		mgr := newTestManager(t, conn)
		assert.Equal(t, want, mgr.IsEnabled(context.Background(), "u.service"), "state %q", state)
	}
}

func TestManagerListUnitFiles(t *testing.T) {
	conn := &MockConnection{
		ListUnitFilesByPatternsFunc: func(_ context.Context, _, patterns []string) ([]dbus.UnitFile, error) {
			assert.Equal(t, []string{"continuous-ping-*.service"}, patterns)
			return []dbus.UnitFile{
				{Path: "/etc/systemd/system/continuous-ping-8-8-8-8.service", Type: "disabled"},
				{Path: "/etc/systemd/system/continuous-ping-1-1-1-1.service", Type: "enabled"},
			}, nil
		},
	}

	mgr := newTestManager(t, conn)
	names, err := mgr.ListUnitFiles(context.Background(), "continuous-ping-*.service")
	require.NoError(t, err)
	assert.Equal(t, []string{"continuous-ping-8-8-8-8.service", "continuous-ping-1-1-1-1.service"}, names)
}

func TestManagerEnableDisable(t *testing.T) {
	var enabled, disabled []string
	conn := &MockConnection{
		EnableUnitFilesFunc: func(_ context.Context, files []string) error {
			enabled = files
			return nil
		},
		DisableUnitFilesFunc: func(_ context.Context, files []string) error {
			disabled = files
			return nil
		},
	}

	mgr := newTestManager(t, conn)
	require.NoError(t, mgr.Enable(context.Background(), "u.service"))
	require.NoError(t, mgr.Disable(context.Background(), "u.service"))
	assert.Equal(t, []string{"u.service"}, enabled)
	assert.Equal(t, []string{"u.service"}, disabled)
}

func TestManagerReloadError(t *testing.T) {
	conn := &MockConnection{
		ReloadFunc: func(_ context.Context) error {
			return errors.New("access denied")
		},
	}

	mgr := newTestManager(t, conn)
	err := mgr.Reload(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestManagerConnectionFailure(t *testing.T) {
	factory := &MockConnectionFactory{
		NewConnectionFunc: func(_ context.Context, _ bool) (Connection, error) {
			return nil, NewConnectionError(false, errors.New("bus unavailable"))
		},
	}
	mgr := NewManager(factory, fakerunner.New(), false, testutil.NewTestLogger(t))

	err := mgr.Reload(context.Background())
	require.Error(t, err)
	assert.True(t, IsConnectionError(err))
	assert.False(t, mgr.IsActive(context.Background(), "u.service"))
}

func TestManagerFailureDetails(t *testing.T) {
	runner := fakerunner.New()
	runner.Outputs["journalctl"] = []byte("ping: connect: Network is unreachable\n")

	conn := &MockConnection{
		GetUnitPropertiesFunc: func(_ context.Context, _ string) (map[string]interface{}, error) {
			return map[string]interface{}{
				"LoadState":   "loaded",
				"ActiveState": "failed",
				"SubState":    "failed",
				"Result":      "exit-code",
			}, nil
		},
	}
	factory := &MockConnectionFactory{
		NewConnectionFunc: func(_ context.Context, _ bool) (Connection, error) {
			return conn, nil
		},
	}
	mgr := NewManager(factory, runner, false, testutil.NewTestLogger(t))

	details := mgr.FailureDetails(context.Background(), "continuous-ping-8-8-8-8.service")
	assert.Contains(t, details, "Active State: failed")
	assert.Contains(t, details, "Network is unreachable")
	require.Len(t, runner.Calls, 1)
	assert.Contains(t, runner.Calls[0].Args, "--unit")
}
