package systemd

import (
	"context"
	"fmt"

	"github.com/coreos/go-systemd/v22/dbus"
)

// MockConnection implements Connection interface for testing.
type MockConnection struct {
	GetUnitPropertyFunc         func(ctx context.Context, unitName, propertyName string) (*dbus.Property, error)
	GetUnitPropertiesFunc       func(ctx context.Context, unitName string) (map[string]interface{}, error)
	ListUnitFilesByPatternsFunc func(ctx context.Context, states, patterns []string) ([]dbus.UnitFile, error)
	StartUnitFunc               func(ctx context.Context, unitName, mode string) (chan string, error)
	StopUnitFunc                func(ctx context.Context, unitName, mode string) (chan string, error)
	RestartUnitFunc             func(ctx context.Context, unitName, mode string) (chan string, error)
	EnableUnitFilesFunc         func(ctx context.Context, files []string) error
	DisableUnitFilesFunc        func(ctx context.Context, files []string) error
	ReloadFunc                  func(ctx context.Context) error
	CloseFunc                   func() error
}

// GetUnitProperty gets a property of a systemd unit.
func (m *MockConnection) GetUnitProperty(ctx context.Context, unitName, propertyName string) (*dbus.Property, error) {
	if m.GetUnitPropertyFunc != nil {
		return m.GetUnitPropertyFunc(ctx, unitName, propertyName)
	}
	return nil, fmt.Errorf("mock not implemented")
}

// GetUnitProperties gets all properties of a systemd unit.
func (m *MockConnection) GetUnitProperties(ctx context.Context, unitName string) (map[string]interface{}, error) {
	if m.GetUnitPropertiesFunc != nil {
		return m.GetUnitPropertiesFunc(ctx, unitName)
	}
	return nil, fmt.Errorf("mock not implemented")
}

// ListUnitFilesByPatterns lists installed unit files matching the given patterns.
func (m *MockConnection) ListUnitFilesByPatterns(ctx context.Context, states, patterns []string) ([]dbus.UnitFile, error) {
	if m.ListUnitFilesByPatternsFunc != nil {
		return m.ListUnitFilesByPatternsFunc(ctx, states, patterns)
	}
	return nil, fmt.Errorf("mock not implemented")
}

// StartUnit starts a systemd unit.
func (m *MockConnection) StartUnit(ctx context.Context, unitName, mode string) (chan string, error) {
	if m.StartUnitFunc != nil {
		return m.StartUnitFunc(ctx, unitName, mode)
	}
	return nil, fmt.Errorf("mock not implemented")
}

// StopUnit stops a systemd unit.
func (m *MockConnection) StopUnit(ctx context.Context, unitName, mode string) (chan string, error) {
	if m.StopUnitFunc != nil {
		return m.StopUnitFunc(ctx, unitName, mode)
	}
	return nil, fmt.Errorf("mock not implemented")
}

// RestartUnit restarts a systemd unit.
func (m *MockConnection) RestartUnit(ctx context.Context, unitName, mode string) (chan string, error) {
	if m.RestartUnitFunc != nil {
		return m.RestartUnitFunc(ctx, unitName, mode)
	}
	return nil, fmt.Errorf("mock not implemented")
}

// EnableUnitFiles enables units for boot autostart.
func (m *MockConnection) EnableUnitFiles(ctx context.Context, files []string) error {
	if m.EnableUnitFilesFunc != nil {
		return m.EnableUnitFilesFunc(ctx, files)
	}
	return fmt.Errorf("mock not implemented")
}

// DisableUnitFiles disables units from boot autostart.
func (m *MockConnection) DisableUnitFiles(ctx context.Context, files []string) error {
	if m.DisableUnitFilesFunc != nil {
		return m.DisableUnitFilesFunc(ctx, files)
	}
	return fmt.Errorf("mock not implemented")
}

// Reload reloads systemd configuration.
func (m *MockConnection) Reload(ctx context.Context) error {
	if m.ReloadFunc != nil {
		return m.ReloadFunc(ctx)
	}
	return fmt.Errorf("mock not implemented")
}

// Close closes the connection.
func (m *MockConnection) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// MockConnectionFactory implements ConnectionFactory for testing.
type MockConnectionFactory struct {
	NewConnectionFunc func(ctx context.Context, userMode bool) (Connection, error)
}

// NewConnection creates a new systemd connection based on configuration.
func (m *MockConnectionFactory) NewConnection(ctx context.Context, userMode bool) (Connection, error) {
	if m.NewConnectionFunc != nil {
		return m.NewConnectionFunc(ctx, userMode)
	}
	return nil, fmt.Errorf("mock not implemented")
}

// MockManager implements Manager for testing.
type MockManager struct {
	ReloadFunc         func(ctx context.Context) error
	EnableFunc         func(ctx context.Context, unitName string) error
	DisableFunc        func(ctx context.Context, unitName string) error
	StartFunc          func(ctx context.Context, unitName string) error
	StopFunc           func(ctx context.Context, unitName string) error
	RestartFunc        func(ctx context.Context, unitName string) error
	IsActiveFunc       func(ctx context.Context, unitName string) bool
	IsEnabledFunc      func(ctx context.Context, unitName string) bool
	ListUnitFilesFunc  func(ctx context.Context, pattern string) ([]string, error)
	PropertiesFunc     func(ctx context.Context, unitName string) (map[string]interface{}, error)
	FailureDetailsFunc func(ctx context.Context, unitName string) string

	// Calls records invocations as "Op unitName" strings for ordering
	// assertions in transaction tests.
	Calls []string
}

func (m *MockManager) record(op, unitName string) {
	if unitName == "" {
		m.Calls = append(m.Calls, op)
		return
	}
	m.Calls = append(m.Calls, op+" "+unitName)
}

// Reload asks systemd to reload its unit index.
func (m *MockManager) Reload(ctx context.Context) error {
	m.record("Reload", "")
	if m.ReloadFunc != nil {
		return m.ReloadFunc(ctx)
	}
	return nil
}

// Enable registers a unit for boot autostart.
func (m *MockManager) Enable(ctx context.Context, unitName string) error {
	m.record("Enable", unitName)
	if m.EnableFunc != nil {
		return m.EnableFunc(ctx, unitName)
	}
	return nil
}

// Disable deregisters a unit from boot autostart.
func (m *MockManager) Disable(ctx context.Context, unitName string) error {
	m.record("Disable", unitName)
	if m.DisableFunc != nil {
		return m.DisableFunc(ctx, unitName)
	}
	return nil
}

// Start starts a unit.
func (m *MockManager) Start(ctx context.Context, unitName string) error {
	m.record("Start", unitName)
	if m.StartFunc != nil {
		return m.StartFunc(ctx, unitName)
	}
	return nil
}

// Stop stops a unit.
func (m *MockManager) Stop(ctx context.Context, unitName string) error {
	m.record("Stop", unitName)
	if m.StopFunc != nil {
		return m.StopFunc(ctx, unitName)
	}
	return nil
}

// Restart restarts a unit.
func (m *MockManager) Restart(ctx context.Context, unitName string) error {
	m.record("Restart", unitName)
	if m.RestartFunc != nil {
		return m.RestartFunc(ctx, unitName)
	}
	return nil
}

// IsActive reports whether a unit is currently running.
func (m *MockManager) IsActive(ctx context.Context, unitName string) bool {
	if m.IsActiveFunc != nil {
		return m.IsActiveFunc(ctx, unitName)
	}
	return false
}

// IsEnabled reports whether a unit is registered for boot autostart.
func (m *MockManager) IsEnabled(ctx context.Context, unitName string) bool {
	if m.IsEnabledFunc != nil {
		return m.IsEnabledFunc(ctx, unitName)
	}
	return false
}

// ListUnitFiles returns the names of installed unit files matching the pattern.
func (m *MockManager) ListUnitFiles(ctx context.Context, pattern string) ([]string, error) {
	if m.ListUnitFilesFunc != nil {
		return m.ListUnitFilesFunc(ctx, pattern)
	}
	return nil, nil
}

// Properties returns all D-Bus properties of a unit.
func (m *MockManager) Properties(ctx context.Context, unitName string) (map[string]interface{}, error) {
	if m.PropertiesFunc != nil {
		return m.PropertiesFunc(ctx, unitName)
	}
	return nil, fmt.Errorf("mock not implemented")
}

// FailureDetails gathers diagnostic state for a unit.
func (m *MockManager) FailureDetails(ctx context.Context, unitName string) string {
	if m.FailureDetailsFunc != nil {
		return m.FailureDetailsFunc(ctx, unitName)
	}
	return ""
}
