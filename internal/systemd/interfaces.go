// Package systemd provides systemd unit management operations over D-Bus.
package systemd

import (
	"context"

	"github.com/coreos/go-systemd/v22/dbus"
)

// Connection wraps systemd D-Bus operations for testability.
type Connection interface {
	// GetUnitProperty gets a property of a systemd unit.
	GetUnitProperty(ctx context.Context, unitName, propertyName string) (*dbus.Property, error)

	// GetUnitProperties gets all properties of a systemd unit.
	GetUnitProperties(ctx context.Context, unitName string) (map[string]interface{}, error)

	// ListUnitFilesByPatterns lists installed unit files matching the given patterns.
	ListUnitFilesByPatterns(ctx context.Context, states, patterns []string) ([]dbus.UnitFile, error)

	// StartUnit starts a systemd unit.
	StartUnit(ctx context.Context, unitName, mode string) (chan string, error)

	// StopUnit stops a systemd unit.
	StopUnit(ctx context.Context, unitName, mode string) (chan string, error)

	// RestartUnit restarts a systemd unit.
	RestartUnit(ctx context.Context, unitName, mode string) (chan string, error)

	// EnableUnitFiles enables units for boot autostart.
	EnableUnitFiles(ctx context.Context, files []string) error

	// DisableUnitFiles disables units from boot autostart.
	DisableUnitFiles(ctx context.Context, files []string) error

	// Reload reloads systemd configuration.
	Reload(ctx context.Context) error

	// Close closes the connection.
	Close() error
}

// ConnectionFactory creates Connection instances.
type ConnectionFactory interface {
	// NewConnection creates a new systemd connection based on configuration.
	NewConnection(ctx context.Context, userMode bool) (Connection, error)
}

// Manager exposes the systemd operations the lifecycle layer needs. Every
// call opens a fresh connection so no manager state is cached between
// operations.
type Manager interface {
	// Reload asks systemd to reload its unit index (daemon-reload).
	Reload(ctx context.Context) error

	// Enable registers a unit for boot autostart.
	Enable(ctx context.Context, unitName string) error

	// Disable deregisters a unit from boot autostart.
	Disable(ctx context.Context, unitName string) error

	// Start starts a unit and waits for the job to finish.
	Start(ctx context.Context, unitName string) error

	// Stop stops a unit and waits for the job to finish.
	Stop(ctx context.Context, unitName string) error

	// Restart restarts a unit and waits for the job to finish.
	Restart(ctx context.Context, unitName string) error

	// IsActive reports whether a unit is currently running. Unknown
	// units report false rather than an error.
	IsActive(ctx context.Context, unitName string) bool

	// IsEnabled reports whether a unit is registered for boot
	// autostart. Unknown units report false rather than an error.
	IsEnabled(ctx context.Context, unitName string) bool

	// ListUnitFiles returns the names of installed unit files matching
	// the pattern, in systemd's listing order.
	ListUnitFiles(ctx context.Context, pattern string) ([]string, error)

	// Properties returns all D-Bus properties of a unit.
	Properties(ctx context.Context, unitName string) (map[string]interface{}, error)

	// FailureDetails gathers diagnostic state and recent journal lines
	// for a unit, for appending to operator-facing error reports.
	FailureDetails(ctx context.Context, unitName string) string
}
