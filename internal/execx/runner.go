// Package execx provides a testable abstraction for command execution.
package execx

import (
	"context"
	"io"
	"os/exec"
)

// Runner defines an interface for executing external commands.
type Runner interface {
	CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error)

	// Stream runs a command with stdout/stderr attached to the given
	// writers and blocks until it exits. Used for interactive
	// passthrough such as following journal logs.
	Stream(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error
}

// RealRunner implements Runner using os/exec.
type RealRunner struct{}

// NewRealRunner creates a new RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// CombinedOutput executes a command and returns its combined stdout and stderr output.
func (r *RealRunner) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}

// Stream executes a command attached to the given writers until it exits.
func (r *RealRunner) Stream(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}
