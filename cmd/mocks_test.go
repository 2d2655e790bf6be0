package cmd

import (
	"testing"

	"github.com/trly/ping-ops/internal/fs"
	"github.com/trly/ping-ops/internal/orchestrator"
	"github.com/trly/ping-ops/internal/repository"
	"github.com/trly/ping-ops/internal/systemd"
	"github.com/trly/ping-ops/internal/testutil"
	"github.com/trly/ping-ops/internal/testutil/fakerunner"
)

// MockPrompter implements Prompter with canned answers.
type MockPrompter struct {
	InputFunc       func(label string) (string, error)
	ConfirmFunc     func(label string) (bool, error)
	SelectIndexFunc func(label string, items []string) (int, error)

	Labels []string
}

// Input returns the canned input value.
func (p *MockPrompter) Input(label string) (string, error) {
	p.Labels = append(p.Labels, label)
	if p.InputFunc != nil {
		return p.InputFunc(label)
	}
	return "", nil
}

// Confirm returns the canned confirmation result.
func (p *MockPrompter) Confirm(label string) (bool, error) {
	p.Labels = append(p.Labels, label)
	if p.ConfirmFunc != nil {
		return p.ConfirmFunc(label)
	}
	return true, nil
}

// SelectIndex returns the canned menu choice.
func (p *MockPrompter) SelectIndex(label string, items []string) (int, error) {
	p.Labels = append(p.Labels, label)
	if p.SelectIndexFunc != nil {
		return p.SelectIndexFunc(label, items)
	}
	return 0, nil
}

// MockValidator implements SystemValidator.
type MockValidator struct {
	SystemRequirementsFunc func(userMode bool) error
}

// SystemRequirements returns the canned validation result.
func (v *MockValidator) SystemRequirements(userMode bool) error {
	if v.SystemRequirementsFunc != nil {
		return v.SystemRequirementsFunc(userMode)
	}
	return nil
}

// newTestApp builds an App over a temp unit directory with a mock manager
// and prompter, wiring the real repository and orchestrator in between.
func newTestApp(t *testing.T, manager *systemd.MockManager, prompter *MockPrompter) *App {
	t.Helper()

	logger := testutil.NewTestLogger(t)
	configProv := testutil.NewMockConfig(t)
	cfg := configProv.GetConfig()
	runner := fakerunner.New()

	fsService := fs.NewServiceWithLogger(configProv, logger)
	repo := repository.NewRepository(fsService, manager, cfg.PingPath, cfg.RestartDelay, logger)

	return &App{
		Logger:         logger,
		Config:         cfg,
		ConfigProvider: configProv,
		FSService:      fsService,
		Manager:        manager,
		Repo:           repo,
		Orchestrator:   orchestrator.New(repo, manager, logger),
		Validator:      &MockValidator{},
		Runner:         runner,
		Prompter:       prompter,
	}
}
