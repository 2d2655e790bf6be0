package systemd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/trly/ping-ops/internal/execx"
	"github.com/trly/ping-ops/internal/log"
)

// defaultManager implements Manager over per-call D-Bus connections.
type defaultManager struct {
	connectionFactory ConnectionFactory
	runner            execx.Runner
	userMode          bool
	logger            log.Logger
}

// NewManager creates a Manager with injected dependencies.
func NewManager(connectionFactory ConnectionFactory, runner execx.Runner, userMode bool, logger log.Logger) Manager {
	return &defaultManager{
		connectionFactory: connectionFactory,
		runner:            runner,
		userMode:          userMode,
		logger:            logger,
	}
}

// Reload asks systemd to reload its unit index.
func (m *defaultManager) Reload(ctx context.Context) error {
	conn, err := m.connectionFactory.NewConnection(ctx, m.userMode)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	m.logger.Debug("Reloading systemd")
	if err := conn.Reload(ctx); err != nil {
		return NewError("Reload", "", err)
	}
	return nil
}

// Enable registers a unit for boot autostart.
func (m *defaultManager) Enable(ctx context.Context, unitName string) error {
	conn, err := m.connectionFactory.NewConnection(ctx, m.userMode)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	m.logger.Debug("Enabling unit", "name", unitName)
	if err := conn.EnableUnitFiles(ctx, []string{unitName}); err != nil {
		return NewError("Enable", unitName, err)
	}
	return nil
}

// Disable deregisters a unit from boot autostart.
func (m *defaultManager) Disable(ctx context.Context, unitName string) error {
	conn, err := m.connectionFactory.NewConnection(ctx, m.userMode)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	m.logger.Debug("Disabling unit", "name", unitName)
	if err := conn.DisableUnitFiles(ctx, []string{unitName}); err != nil {
		return NewError("Disable", unitName, err)
	}
	return nil
}

// Start starts a unit and waits for the job to finish.
func (m *defaultManager) Start(ctx context.Context, unitName string) error {
	return m.runJob(ctx, "Start", unitName, Connection.StartUnit)
}

// Stop stops a unit and waits for the job to finish.
func (m *defaultManager) Stop(ctx context.Context, unitName string) error {
	return m.runJob(ctx, "Stop", unitName, Connection.StopUnit)
}

// Restart restarts a unit and waits for the job to finish.
func (m *defaultManager) Restart(ctx context.Context, unitName string) error {
	return m.runJob(ctx, "Restart", unitName, Connection.RestartUnit)
}

// runJob submits a start/stop/restart job and blocks until systemd reports
// its result on the job channel.
func (m *defaultManager) runJob(ctx context.Context, operation, unitName string, submit func(Connection, context.Context, string, string) (chan string, error)) error {
	conn, err := m.connectionFactory.NewConnection(ctx, m.userMode)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	m.logger.Debug("Submitting unit job", "operation", operation, "name", unitName)
	ch, err := submit(conn, ctx, unitName, "replace")
	if err != nil {
		return NewError(operation, unitName, err)
	}

	select {
	case result := <-ch:
		if result != "done" {
			return NewError(operation, unitName, fmt.Errorf("job finished with result %q", result))
		}
	case <-ctx.Done():
		return NewError(operation, unitName, ctx.Err())
	}

	m.logger.Debug("Unit job finished", "operation", operation, "name", unitName)
	return nil
}

// IsActive reports whether a unit is currently running.
func (m *defaultManager) IsActive(ctx context.Context, unitName string) bool {
	return m.propertyEquals(ctx, unitName, "ActiveState", "active")
}

// IsEnabled reports whether a unit is registered for boot autostart.
func (m *defaultManager) IsEnabled(ctx context.Context, unitName string) bool {
	return m.propertyEquals(ctx, unitName, "UnitFileState", "enabled")
}

// propertyEquals queries a single unit property and compares it to want.
// Units systemd does not recognize simply report false.
func (m *defaultManager) propertyEquals(ctx context.Context, unitName, propertyName, want string) bool {
	conn, err := m.connectionFactory.NewConnection(ctx, m.userMode)
	if err != nil {
		m.logger.Debug("Error connecting to systemd for property query", "error", err)
		return false
	}
	defer func() { _ = conn.Close() }()

	prop, err := conn.GetUnitProperty(ctx, unitName, propertyName)
	if err != nil {
		m.logger.Debug("Error querying unit property", "name", unitName, "property", propertyName, "error", err)
		return false
	}

	value, ok := prop.Value.Value().(string)
	return ok && value == want
}

// ListUnitFiles returns the names of installed unit files matching the pattern.
func (m *defaultManager) ListUnitFiles(ctx context.Context, pattern string) ([]string, error) {
	conn, err := m.connectionFactory.NewConnection(ctx, m.userMode)
	if err != nil {
		return nil, err
	}
	defer func() { _ = conn.Close() }()

	files, err := conn.ListUnitFilesByPatterns(ctx, nil, []string{pattern})
	if err != nil {
		return nil, NewError("ListUnitFiles", pattern, err)
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, filepath.Base(f.Path))
	}
	return names, nil
}

// Properties returns all D-Bus properties of a unit.
func (m *defaultManager) Properties(ctx context.Context, unitName string) (map[string]interface{}, error) {
	conn, err := m.connectionFactory.NewConnection(ctx, m.userMode)
	if err != nil {
		return nil, err
	}
	defer func() { _ = conn.Close() }()

	props, err := conn.GetUnitProperties(ctx, unitName)
	if err != nil {
		return nil, NewError("Properties", unitName, err)
	}
	return props, nil
}

// FailureDetails gathers diagnostic state and recent journal lines for a unit.
func (m *defaultManager) FailureDetails(ctx context.Context, unitName string) string {
	props, err := m.Properties(ctx, unitName)
	if err != nil {
		return fmt.Sprintf("Could not retrieve unit properties: %v", err)
	}

	statusInfo := fmt.Sprintf("Unit: %s\n", unitName)
	statusInfo += fmt.Sprintf("  Load State: %v\n", props["LoadState"])
	statusInfo += fmt.Sprintf("  Active State: %v\n", props["ActiveState"])
	statusInfo += fmt.Sprintf("  Sub State: %v\n", props["SubState"])

	if result, ok := props["Result"]; ok {
		statusInfo += fmt.Sprintf("  Result: %v\n", result)
	}

	if execMainStatus, ok := props["ExecMainStatus"]; ok {
		statusInfo += fmt.Sprintf("  Exit Status: %v\n", execMainStatus)
	}

	// systemd's D-Bus interface does not expose logs, so the journal tail
	// still goes through journalctl.
	args := []string{"--unit", unitName, "-n", "3", "--no-pager", "--output=short-precise"}
	if m.userMode {
		args[0] = "--user-unit"
	}

	output, err := m.runner.CombinedOutput(ctx, "journalctl", args...)
	logInfo := "Recent logs: (unavailable)"
	if err == nil && len(output) > 0 {
		logInfo = fmt.Sprintf("Recent logs:\n%s", string(output))
	}

	return fmt.Sprintf("%s%s", statusInfo, logInfo)
}
