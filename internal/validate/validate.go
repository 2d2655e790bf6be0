// Package validate provides startup validation for ping-ops.
package validate

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/trly/ping-ops/internal/execx"
	"github.com/trly/ping-ops/internal/log"
)

// PrivilegeError indicates the process lacks the privileges needed to
// manage system services. It is fatal at startup.
type PrivilegeError struct {
	UID int
}

// Error implements the error interface.
func (e *PrivilegeError) Error() string {
	return fmt.Sprintf("managing system units requires root privileges (running as uid %d); re-run as root or use --user", e.UID)
}

// Validator provides system requirements validation with dependency injection.
type Validator struct {
	logger     log.Logger
	runner     execx.Runner
	osGetter   func() string // For testing, defaults to runtime.GOOS
	euidGetter func() int    // For testing, defaults to os.Geteuid
}

// NewValidator creates a new Validator with the provided logger and command runner.
func NewValidator(logger log.Logger, runner execx.Runner) *Validator {
	return &Validator{
		logger:     logger,
		runner:     runner,
		osGetter:   func() string { return runtime.GOOS },
		euidGetter: os.Geteuid,
	}
}

// WithOSGetter sets a custom OS getter for testing.
func (v *Validator) WithOSGetter(osGetter func() string) *Validator {
	v.osGetter = osGetter
	return v
}

// WithEUIDGetter sets a custom effective-uid getter for testing.
func (v *Validator) WithEUIDGetter(euidGetter func() int) *Validator {
	v.euidGetter = euidGetter
	return v
}

// SystemRequirements checks that the host can run ping-ops: Linux with
// systemd, and sufficient privilege for the requested bus.
func (v *Validator) SystemRequirements(userMode bool) error {
	ctx := context.Background()

	if goos := v.osGetter(); goos != "linux" {
		return fmt.Errorf("unsupported platform: %s (ping-ops requires Linux with systemd)", goos)
	}

	v.logger.Debug("Validating systemd availability")
	version, err := v.runner.CombinedOutput(ctx, "systemctl", "--version")
	if err != nil {
		return fmt.Errorf("systemd not found: %w", err)
	}
	if !strings.Contains(string(version), "systemd") {
		return fmt.Errorf("systemd not properly installed")
	}

	if !userMode {
		if uid := v.euidGetter(); uid != 0 {
			return &PrivilegeError{UID: uid}
		}
	}

	return nil
}
