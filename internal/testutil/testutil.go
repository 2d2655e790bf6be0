// Package testutil provides common test utilities and helpers to reduce boilerplate in test files.
package testutil

import (
	"context"
	"log/slog"
	"testing"

	"github.com/trly/ping-ops/internal/config"
	"github.com/trly/ping-ops/internal/log"
)

// NewTestLogger creates a logger that writes to t.Logf for testing.
// This ensures test output is properly captured by the test framework.
func NewTestLogger(t testing.TB) log.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}

	handler := &testHandler{t: t, opts: opts}
	slogLogger := slog.New(handler)

	return log.NewSlogAdapter(slogLogger)
}

// testHandler writes slog records through t.Logf.
type testHandler struct {
	t     testing.TB
	opts  *slog.HandlerOptions
	attrs []slog.Attr
}

func (h *testHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *testHandler) Handle(_ context.Context, record slog.Record) error {
	line := record.Level.String() + " " + record.Message
	record.Attrs(func(a slog.Attr) bool {
		line += " " + a.String()
		return true
	})
	for _, a := range h.attrs {
		line += " " + a.String()
	}
	h.t.Logf("%s", line)
	return nil
}

func (h *testHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &testHandler{t: h.t, opts: h.opts, attrs: append(h.attrs, attrs...)}
}

func (h *testHandler) WithGroup(_ string) slog.Handler {
	return h
}

// ConfigOption allows customization of test config settings.
type ConfigOption func(*config.Settings)

// WithUnitDir sets a custom unit directory.
func WithUnitDir(dir string) ConfigOption {
	return func(cfg *config.Settings) {
		cfg.UnitDir = dir
	}
}

// WithPingPath sets a custom ping binary path.
func WithPingPath(path string) ConfigOption {
	return func(cfg *config.Settings) {
		cfg.PingPath = path
	}
}

// WithUserMode sets user mode.
func WithUserMode(userMode bool) ConfigOption {
	return func(cfg *config.Settings) {
		cfg.UserMode = userMode
	}
}

// NewMockConfig creates a config provider for testing with optional
// customizations. The unit directory defaults to a per-test temp dir.
func NewMockConfig(t testing.TB, opts ...ConfigOption) config.Provider {
	cfg := &config.Settings{
		UnitDir:      t.TempDir(),
		PingPath:     config.DefaultPingPath,
		RestartDelay: config.DefaultRestartDelay,
		UserMode:     false,
		Verbose:      true,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	provider := config.NewDefaultConfigProvider()
	provider.SetConfig(cfg)
	return provider
}
