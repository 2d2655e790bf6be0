// Package repository reconstructs managed ping units from systemd metadata
// and owns all reads and writes of their definition files.
package repository

import (
	"context"
	"time"

	"github.com/trly/ping-ops/internal/fs"
	"github.com/trly/ping-ops/internal/log"
	"github.com/trly/ping-ops/internal/systemd"
	"github.com/trly/ping-ops/internal/unitfile"
	"github.com/trly/ping-ops/internal/unitname"
)

// Unit is a managed ping unit as reconstructed from systemd's unit file
// listing. Target carries the exact original address when the definition
// file's metadata is readable and a display-only decoding otherwise.
type Unit struct {
	Name   string
	Target string
}

// State is the live run/boot registration state of a unit, owned entirely
// by systemd and never cached between calls.
type State struct {
	Active  bool
	Enabled bool
}

// Repository enumerates managed units and persists their definitions.
type Repository struct {
	fsService    *fs.Service
	manager      systemd.Manager
	pingPath     string
	restartDelay time.Duration
	logger       log.Logger
}

// NewRepository creates a repository over the given filesystem service and
// systemd manager.
func NewRepository(fsService *fs.Service, manager systemd.Manager, pingPath string, restartDelay time.Duration, logger log.Logger) *Repository {
	return &Repository{
		fsService:    fsService,
		manager:      manager,
		pingPath:     pingPath,
		restartDelay: restartDelay,
		logger:       logger,
	}
}

// List enumerates all managed ping units in systemd's listing order. An
// empty result is not an error.
func (r *Repository) List(ctx context.Context) ([]Unit, error) {
	names, err := r.manager.ListUnitFiles(ctx, unitname.Prefix+"*"+unitname.Suffix)
	if err != nil {
		return nil, err
	}

	units := make([]Unit, 0, len(names))
	for _, name := range names {
		if !unitname.IsManaged(name) {
			continue
		}
		units = append(units, Unit{Name: name, Target: r.target(name)})
	}
	return units, nil
}

// target recovers the address for display. The definition file's metadata
// is exact; decoding the unit name is the lossy fallback.
func (r *Repository) target(unitName string) string {
	content, err := r.fsService.ReadUnitFile(unitName)
	if err == nil {
		if target, err := unitfile.Target(content); err == nil {
			return target
		}
	}
	return unitname.Decode(unitName)
}

// State queries the live state of a unit. The two queries are independent
// and a unit systemd does not recognize reports false for both.
func (r *Repository) State(ctx context.Context, unitName string) State {
	return State{
		Active:  r.manager.IsActive(ctx, unitName),
		Enabled: r.manager.IsEnabled(ctx, unitName),
	}
}

// Write renders and persists the definition file for a ping unit.
func (r *Repository) Write(unitName, target string) error {
	content := unitfile.Render(target, r.pingPath, r.restartDelay)
	return r.fsService.WriteUnitFile(unitName, content)
}

// Remove deletes the definition file for a unit. Removing a unit that has
// no definition file succeeds.
func (r *Repository) Remove(unitName string) error {
	return r.fsService.RemoveUnitFile(unitName)
}

// UnitFilePath returns the path of a unit's definition file, for operator
// guidance output.
func (r *Repository) UnitFilePath(unitName string) string {
	return r.fsService.UnitFilePath(unitName)
}

// ReadDefinition reads the persisted definition file for a unit.
func (r *Repository) ReadDefinition(unitName string) ([]byte, error) {
	return r.fsService.ReadUnitFile(unitName)
}
