package orchestrator

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trly/ping-ops/internal/fs"
	"github.com/trly/ping-ops/internal/repository"
	"github.com/trly/ping-ops/internal/systemd"
	"github.com/trly/ping-ops/internal/testutil"
	"github.com/trly/ping-ops/internal/unitname"
)

// mockStore records definition writes and removals.
type mockStore struct {
	WriteFunc  func(unitName, target string) error
	RemoveFunc func(unitName string) error
	Calls      []string
}

func (s *mockStore) Write(unitName, target string) error {
	s.Calls = append(s.Calls, "Write "+unitName)
	if s.WriteFunc != nil {
		return s.WriteFunc(unitName, target)
	}
	return nil
}

func (s *mockStore) Remove(unitName string) error {
	s.Calls = append(s.Calls, "Remove "+unitName)
	if s.RemoveFunc != nil {
		return s.RemoveFunc(unitName)
	}
	return nil
}

const unit8888 = "continuous-ping-8-8-8-8.service"

func TestCreateSuccess(t *testing.T) {
	store := &mockStore{}
	manager := &systemd.MockManager{}
	orch := New(store, manager, testutil.NewTestLogger(t))

	unitName, err := orch.Create(context.Background(), "8.8.8.8")
	require.NoError(t, err)
	assert.Equal(t, unit8888, unitName)

	assert.Equal(t, []string{"Write " + unit8888}, store.Calls)
	assert.Equal(t, []string{
		"Reload",
		"Enable " + unit8888,
		"Start " + unit8888,
	}, manager.Calls)
}

func TestCreateEmptyTarget(t *testing.T) {
	store := &mockStore{}
	manager := &systemd.MockManager{}
	orch := New(store, manager, testutil.NewTestLogger(t))

	_, err := orch.Create(context.Background(), "")
	assert.ErrorIs(t, err, unitname.ErrEmptyTarget)

	// Validation failure must short-circuit before any side effect.
	assert.Empty(t, store.Calls)
	assert.Empty(t, manager.Calls)
}

func TestCreateWriteFailureAborts(t *testing.T) {
	store := &mockStore{
		WriteFunc: func(_, _ string) error {
			return &fs.WriteError{Path: "/etc/systemd/system/" + unit8888, Cause: os.ErrPermission}
		},
	}
	manager := &systemd.MockManager{}
	orch := New(store, manager, testutil.NewTestLogger(t))

	_, err := orch.Create(context.Background(), "8.8.8.8")
	require.Error(t, err)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageWrite, stageErr.Stage)

	var writeErr *fs.WriteError
	assert.ErrorAs(t, err, &writeErr)

	// Nothing reached the manager.
	assert.Empty(t, manager.Calls)
}

func TestCreateReloadFailureLeavesFile(t *testing.T) {
	store := &mockStore{}
	manager := &systemd.MockManager{
		ReloadFunc: func(_ context.Context) error {
			return errors.New("dbus timeout")
		},
	}
	orch := New(store, manager, testutil.NewTestLogger(t))

	_, err := orch.Create(context.Background(), "8.8.8.8")
	require.Error(t, err)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageReload, stageErr.Stage)

	// The write is durable and reload failures are transient; the file
	// stays on disk.
	assert.Equal(t, []string{"Write " + unit8888}, store.Calls)
	assert.Equal(t, []string{"Reload"}, manager.Calls)
}

func TestCreateEnableFailureRollsBack(t *testing.T) {
	store := &mockStore{}
	manager := &systemd.MockManager{
		EnableFunc: func(_ context.Context, _ string) error {
			return errors.New("enable refused")
		},
	}
	orch := New(store, manager, testutil.NewTestLogger(t))

	_, err := orch.Create(context.Background(), "8.8.8.8")
	require.Error(t, err)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageEnable, stageErr.Stage)
	assert.Contains(t, err.Error(), "enable refused")

	// File removed before the rollback reload, no manager registration left.
	assert.Equal(t, []string{"Write " + unit8888, "Remove " + unit8888}, store.Calls)
	assert.Equal(t, []string{
		"Reload",
		"Enable " + unit8888,
		"Reload",
	}, manager.Calls)
}

func TestCreateStartFailureRollsBack(t *testing.T) {
	store := &mockStore{}
	manager := &systemd.MockManager{
		StartFunc: func(_ context.Context, _ string) error {
			return errors.New("start job failed")
		},
		// Rollback swallows these.
		DisableFunc: func(_ context.Context, _ string) error {
			return errors.New("not enabled")
		},
		StopFunc: func(_ context.Context, _ string) error {
			return errors.New("not running")
		},
	}
	orch := New(store, manager, testutil.NewTestLogger(t))

	_, err := orch.Create(context.Background(), "8.8.8.8")
	require.Error(t, err)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageStart, stageErr.Stage)

	assert.Equal(t, []string{"Write " + unit8888, "Remove " + unit8888}, store.Calls)
	assert.Equal(t, []string{
		"Reload",
		"Enable " + unit8888,
		"Start " + unit8888,
		"Disable " + unit8888,
		"Stop " + unit8888,
		"Reload",
	}, manager.Calls)
}

func TestDeleteBestEffort(t *testing.T) {
	store := &mockStore{}
	manager := &systemd.MockManager{
		StopFunc: func(_ context.Context, _ string) error {
			return errors.New("unit already stopped")
		},
		DisableFunc: func(_ context.Context, _ string) error {
			return errors.New("unit not enabled")
		},
	}
	orch := New(store, manager, testutil.NewTestLogger(t))

	// A stop or disable failure never blocks removal.
	err := orch.Delete(context.Background(), unit8888)
	require.NoError(t, err)

	assert.Equal(t, []string{"Remove " + unit8888}, store.Calls)
	assert.Equal(t, []string{
		"Stop " + unit8888,
		"Disable " + unit8888,
		"Reload",
	}, manager.Calls)
}

func TestDeleteNonExistentUnit(t *testing.T) {
	store := &mockStore{}
	manager := &systemd.MockManager{
		StopFunc: func(_ context.Context, _ string) error {
			return errors.New("no such unit")
		},
		DisableFunc: func(_ context.Context, _ string) error {
			return errors.New("no such unit")
		},
	}
	orch := New(store, manager, testutil.NewTestLogger(t))

	assert.NoError(t, orch.Delete(context.Background(), "continuous-ping-10-10-10-10.service"))
}

func TestDeleteRemoveFailureSurfaces(t *testing.T) {
	store := &mockStore{
		RemoveFunc: func(_ string) error {
			return errors.New("permission denied")
		},
	}
	manager := &systemd.MockManager{}
	orch := New(store, manager, testutil.NewTestLogger(t))

	err := orch.Delete(context.Background(), unit8888)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

// End-to-end against a real repository over a temp dir: after a failed
// create no definition file remains, and a successful create leaves a
// complete definition plus enabled/active state.
func TestCreateEndToEnd(t *testing.T) {
	fsService := fs.NewServiceWithLogger(testutil.NewMockConfig(t), testutil.NewTestLogger(t))
	manager := &systemd.MockManager{
		IsActiveFunc:  func(_ context.Context, _ string) bool { return true },
		IsEnabledFunc: func(_ context.Context, _ string) bool { return true },
	}
	repo := repository.NewRepository(fsService, manager, "/usr/bin/ping", 10*time.Second, testutil.NewTestLogger(t))
	orch := New(repo, manager, testutil.NewTestLogger(t))

	unitName, err := orch.Create(context.Background(), "8.8.8.8")
	require.NoError(t, err)
	assert.Equal(t, unit8888, unitName)

	content, err := repo.ReadDefinition(unitName)
	require.NoError(t, err)
	assert.Contains(t, string(content), "ExecStart=/usr/bin/ping 8.8.8.8")

	state := repo.State(context.Background(), unitName)
	assert.True(t, state.Enabled)
	assert.True(t, state.Active)
}

func TestCreateEndToEndEnableFailureLeavesNoTrace(t *testing.T) {
	fsService := fs.NewServiceWithLogger(testutil.NewMockConfig(t), testutil.NewTestLogger(t))
	manager := &systemd.MockManager{
		EnableFunc: func(_ context.Context, _ string) error {
			return errors.New("enable refused")
		},
	}
	repo := repository.NewRepository(fsService, manager, "/usr/bin/ping", 10*time.Second, testutil.NewTestLogger(t))
	orch := New(repo, manager, testutil.NewTestLogger(t))

	_, err := orch.Create(context.Background(), "8.8.8.8")
	require.Error(t, err)

	_, err = repo.ReadDefinition(unit8888)
	assert.True(t, os.IsNotExist(err))
}
