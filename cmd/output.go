package cmd

import (
	"context"
	"time"

	"github.com/SerhiiCho/timeago/v3"
	"github.com/fatih/color"
	"github.com/trly/ping-ops/internal/repository"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// formatBool renders a boolean state as a colored yes/no.
func formatBool(v bool) string {
	if v {
		return color.GreenString("yes")
	}
	return color.RedString("no")
}

// formatSince renders how long a unit has been active. Inactive units and
// units without a usable timestamp render as a dash.
func formatSince(ctx context.Context, app *App, unitName string, active bool) string {
	if !active {
		return "-"
	}

	props, err := app.Manager.Properties(ctx, unitName)
	if err != nil {
		return "-"
	}

	usec, ok := props["ActiveEnterTimestamp"].(uint64)
	if !ok || usec == 0 {
		return "-"
	}

	since, err := timeago.Parse(time.UnixMicro(int64(usec))) //nolint:gosec // Timestamps fit in int64 well past the year 200000
	if err != nil {
		return "-"
	}
	return since
}

// listUnits fetches the managed units once so callers can print and select
// against the same listing.
func listUnits(ctx context.Context, app *App) ([]repository.Unit, error) {
	return app.Repo.List(ctx)
}
