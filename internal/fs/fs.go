// Package fs provides file system operations for ping unit management.
package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/trly/ping-ops/internal/config"
	"github.com/trly/ping-ops/internal/log"
)

// WriteError indicates a unit definition could not be persisted.
type WriteError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write unit file %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Service provides file system operations with configurable paths.
type Service struct {
	configProvider config.Provider
	logger         log.Logger
}

// NewService creates a new filesystem service with the given config provider.
func NewService(configProvider config.Provider) *Service {
	return &Service{
		configProvider: configProvider,
		logger:         log.NewLogger(configProvider.GetConfig().Verbose),
	}
}

// NewServiceWithLogger creates a new filesystem service with explicit logger injection.
func NewServiceWithLogger(configProvider config.Provider, logger log.Logger) *Service {
	return &Service{
		configProvider: configProvider,
		logger:         logger,
	}
}

// UnitFilePath returns the full path for a unit definition file.
func (s *Service) UnitFilePath(unitName string) string {
	return filepath.Join(s.configProvider.GetConfig().UnitDir, unitName)
}

// UnitFilesDirectory returns the directory where unit files are stored.
func (s *Service) UnitFilesDirectory() string {
	return s.configProvider.GetConfig().UnitDir
}

// WriteUnitFile atomically writes unit content for the named unit. A unit
// file is either fully written or not present at all, so a crashed write
// never leaves systemd a truncated definition.
func (s *Service) WriteUnitFile(unitName, content string) error {
	unitPath := s.UnitFilePath(unitName)
	s.logger.Debug("Writing unit file", "path", unitPath)

	if err := os.MkdirAll(filepath.Dir(unitPath), 0750); err != nil {
		return &WriteError{Path: unitPath, Cause: err}
	}

	if err := renameio.WriteFile(unitPath, []byte(content), 0644); err != nil {
		return &WriteError{Path: unitPath, Cause: err}
	}

	return nil
}

// ReadUnitFile reads the persisted definition for the named unit.
func (s *Service) ReadUnitFile(unitName string) ([]byte, error) {
	return os.ReadFile(s.UnitFilePath(unitName)) //nolint:gosec // Path is internally constructed from the unit directory
}

// RemoveUnitFile deletes the persisted definition for the named unit.
// Removing a unit that has no definition file is not an error.
func (s *Service) RemoveUnitFile(unitName string) error {
	unitPath := s.UnitFilePath(unitName)
	s.logger.Debug("Removing unit file", "path", unitPath)

	if err := os.Remove(unitPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove unit file %s: %w", unitPath, err)
	}

	return nil
}
