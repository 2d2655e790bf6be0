// Package orchestrator runs the multi-step transactions that create and
// destroy managed ping units.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/trly/ping-ops/internal/log"
	"github.com/trly/ping-ops/internal/unitname"
)

// Stage identifies the step of a create transaction that failed.
type Stage string

// Create transaction stages.
const (
	StageWrite  Stage = "write"
	StageReload Stage = "reload"
	StageEnable Stage = "enable"
	StageStart  Stage = "start"
)

// StageError reports a failed create-transaction step with the manager's
// diagnostic attached.
type StageError struct {
	Stage    Stage
	UnitName string
	Cause    error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed for %s: %v", e.Stage, e.UnitName, e.Cause)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *StageError) Unwrap() error {
	return e.Cause
}

// Store persists and removes unit definitions.
type Store interface {
	Write(unitName, target string) error
	Remove(unitName string) error
}

// Manager is the subset of systemd operations the transactions drive.
type Manager interface {
	Reload(ctx context.Context) error
	Enable(ctx context.Context, unitName string) error
	Disable(ctx context.Context, unitName string) error
	Start(ctx context.Context, unitName string) error
	Stop(ctx context.Context, unitName string) error
}

// Orchestrator sequences unit creation and removal against the definition
// store and systemd.
type Orchestrator struct {
	store   Store
	manager Manager
	logger  log.Logger
}

// New creates an Orchestrator.
func New(store Store, manager Manager, logger log.Logger) *Orchestrator {
	return &Orchestrator{
		store:   store,
		manager: manager,
		logger:  logger,
	}
}

// Create brings a new ping unit to the enabled-and-running end state. Each
// step is gated on the previous one; on failure the transaction rolls back
// so a partially registered unit is never observable:
//
//	write definition -> daemon-reload -> enable -> start
//
// A reload failure leaves the definition file in place, since the write is
// durable and reload failures are transient. Enable and start failures
// remove the file before rolling back manager state, so systemd never
// holds a registration pointing at a deleted file.
func (o *Orchestrator) Create(ctx context.Context, target string) (string, error) {
	unitName, err := unitname.Encode(target)
	if err != nil {
		return "", err
	}

	o.logger.Debug("Creating ping unit", "target", target, "unit", unitName)

	if err := o.store.Write(unitName, target); err != nil {
		return "", &StageError{Stage: StageWrite, UnitName: unitName, Cause: err}
	}

	if err := o.manager.Reload(ctx); err != nil {
		return "", &StageError{Stage: StageReload, UnitName: unitName, Cause: err}
	}

	if err := o.manager.Enable(ctx, unitName); err != nil {
		o.rollback(ctx, unitName, false)
		return "", &StageError{Stage: StageEnable, UnitName: unitName, Cause: err}
	}

	if err := o.manager.Start(ctx, unitName); err != nil {
		o.rollback(ctx, unitName, true)
		return "", &StageError{Stage: StageStart, UnitName: unitName, Cause: err}
	}

	o.logger.Info("Created ping unit", "unit", unitName)
	return unitName, nil
}

// rollback undoes a partially created unit. Manager state is unwound
// best-effort before the reload, and the definition file is removed first
// so an orphaned registration never outlives it.
func (o *Orchestrator) rollback(ctx context.Context, unitName string, deregister bool) {
	o.logger.Warn("Rolling back unit creation", "unit", unitName)

	if deregister {
		if err := o.manager.Disable(ctx, unitName); err != nil {
			o.logger.Debug("Rollback disable failed", "unit", unitName, "error", err)
		}
		if err := o.manager.Stop(ctx, unitName); err != nil {
			o.logger.Debug("Rollback stop failed", "unit", unitName, "error", err)
		}
	}

	if err := o.store.Remove(unitName); err != nil {
		o.logger.Warn("Rollback could not remove unit file", "unit", unitName, "error", err)
	}
	if err := o.manager.Reload(ctx); err != nil {
		o.logger.Warn("Rollback could not reload systemd", "unit", unitName, "error", err)
	}
}

// Delete removes a unit and its definition. Unlike Create, every step is
// attempted unconditionally: a unit that is already stopped or was never
// enabled must not block removal of its definition file. Only a failure to
// remove the file or reload the index surfaces as an error.
func (o *Orchestrator) Delete(ctx context.Context, unitName string) error {
	o.logger.Debug("Deleting ping unit", "unit", unitName)

	if err := o.manager.Stop(ctx, unitName); err != nil {
		o.logger.Warn("Could not stop unit", "unit", unitName, "error", err)
	}

	if err := o.manager.Disable(ctx, unitName); err != nil {
		o.logger.Warn("Could not disable unit", "unit", unitName, "error", err)
	}

	if err := o.store.Remove(unitName); err != nil {
		return err
	}

	if err := o.manager.Reload(ctx); err != nil {
		return err
	}

	o.logger.Info("Deleted ping unit", "unit", unitName)
	return nil
}
