package cmd

import (
	"context"
	"fmt"

	"github.com/trly/ping-ops/internal/orchestrator"
	"github.com/trly/ping-ops/internal/repository"
	"github.com/trly/ping-ops/internal/unitname"
)

// selectManagedUnit lists the managed units and prompts for a 1-based
// index. The listing and the selection are one explicit sequence; nothing
// is remembered between menu actions.
func selectManagedUnit(ctx context.Context, app *App, action string) (repository.Unit, error) {
	units, err := listUnits(ctx, app)
	if err != nil {
		return repository.Unit{}, fmt.Errorf("error listing managed units: %w", err)
	}

	if len(units) == 0 {
		return repository.Unit{}, fmt.Errorf("no ping units are currently managed")
	}

	for i, u := range units {
		fmt.Printf("%3d) %s (%s)\n", i+1, u.Target, u.Name)
	}

	raw, err := app.Prompter.Input(fmt.Sprintf("Number of the unit to %s", action))
	if err != nil {
		return repository.Unit{}, err
	}

	return orchestrator.ParseSelection(raw, units)
}

// resolveUnit turns a positional argument into a unit name. Full unit
// names pass through; anything else is treated as a target address.
func resolveUnit(arg string) (repository.Unit, error) {
	if unitname.IsManaged(arg) {
		return repository.Unit{Name: arg, Target: unitname.Decode(arg)}, nil
	}

	name, err := unitname.Encode(arg)
	if err != nil {
		return repository.Unit{}, err
	}
	return repository.Unit{Name: name, Target: arg}, nil
}

// argOrSelect resolves the unit to act on from an optional positional
// argument, falling back to interactive selection.
func argOrSelect(ctx context.Context, app *App, args []string, action string) (repository.Unit, error) {
	if len(args) == 1 {
		return resolveUnit(args[0])
	}
	return selectManagedUnit(ctx, app, action)
}
