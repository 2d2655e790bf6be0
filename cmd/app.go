// Package cmd provides the command line interface for ping-ops
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/trly/ping-ops/internal/config"
	"github.com/trly/ping-ops/internal/execx"
	"github.com/trly/ping-ops/internal/fs"
	"github.com/trly/ping-ops/internal/log"
	"github.com/trly/ping-ops/internal/orchestrator"
	"github.com/trly/ping-ops/internal/repository"
	"github.com/trly/ping-ops/internal/systemd"
	"github.com/trly/ping-ops/internal/validate"
)

// SystemValidator checks host requirements before any operation runs.
type SystemValidator interface {
	SystemRequirements(userMode bool) error
}

// App holds the application dependencies for the command line interface.
type App struct {
	Logger         log.Logger
	Config         *config.Settings
	ConfigProvider config.Provider
	FSService      *fs.Service
	Manager        systemd.Manager
	Repo           *repository.Repository
	Orchestrator   *orchestrator.Orchestrator
	Validator      SystemValidator
	Runner         execx.Runner
	Prompter       Prompter
}

// NewApp creates a new App with all dependencies initialized.
func NewApp(logger log.Logger, configProv config.Provider) *App {
	cfg := configProv.GetConfig()
	runner := execx.NewRealRunner()
	fsService := fs.NewServiceWithLogger(configProv, logger)

	connectionFactory := systemd.NewConnectionFactory(logger)
	manager := systemd.NewManager(connectionFactory, runner, cfg.UserMode, logger)
	repo := repository.NewRepository(fsService, manager, cfg.PingPath, cfg.RestartDelay, logger)

	return &App{
		Logger:         logger,
		Config:         cfg,
		ConfigProvider: configProv,
		FSService:      fsService,
		Manager:        manager,
		Repo:           repo,
		Orchestrator:   orchestrator.New(repo, manager, logger),
		Validator:      validate.NewValidator(logger, runner),
		Runner:         runner,
		Prompter:       NewPromptUIPrompter(),
	}
}

type contextKey string

const appContextKey contextKey = "ping-ops-app"

// SetupCommandContext attaches the App to a command's context.
func SetupCommandContext(cmd *cobra.Command, app *App) {
	cmd.SetContext(context.WithValue(context.Background(), appContextKey, app))
}

// appFromContext retrieves the App from the command context.
func appFromContext(cmd *cobra.Command) *App {
	return cmd.Context().Value(appContextKey).(*App)
}

// requireSystem validates host requirements before an operational command
// runs. Insufficient privilege is fatal; no operation proceeds.
func requireSystem(cmd *cobra.Command) error {
	app := appFromContext(cmd)
	return app.Validator.SystemRequirements(app.Config.UserMode)
}
