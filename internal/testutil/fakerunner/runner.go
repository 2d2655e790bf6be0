// Package fakerunner provides a canned execx.Runner for tests.
package fakerunner

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Call records a single command invocation.
type Call struct {
	Name string
	Args []string
}

// Runner implements execx.Runner with canned responses keyed by command
// name. Unknown commands succeed with empty output.
type Runner struct {
	Outputs map[string][]byte
	Errs    map[string]error
	Calls   []Call
}

// New creates an empty fake runner.
func New() *Runner {
	return &Runner{
		Outputs: map[string][]byte{},
		Errs:    map[string]error{},
	}
}

// CombinedOutput returns the canned output and error for the command.
func (r *Runner) CombinedOutput(_ context.Context, name string, args ...string) ([]byte, error) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
	return r.Outputs[name], r.Errs[name]
}

// Stream writes the canned output to stdout and returns the canned error.
func (r *Runner) Stream(_ context.Context, stdout, _ io.Writer, name string, args ...string) error {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
	if out, ok := r.Outputs[name]; ok {
		_, _ = stdout.Write(out)
	}
	return r.Errs[name]
}

// CommandLine renders a recorded call for assertions.
func (c Call) CommandLine() string {
	return fmt.Sprintf("%s %s", c.Name, strings.Join(c.Args, " "))
}
