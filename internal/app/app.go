// Package app wires configuration, the hex engine, the key search and the
// presentation layers into a runnable application.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/agbru/hexcalc/internal/config"
	apperrors "github.com/agbru/hexcalc/internal/errors"
	"github.com/agbru/hexcalc/internal/keygen"
	"github.com/agbru/hexcalc/internal/logging"
	"github.com/agbru/hexcalc/internal/ui"
)

// Application represents the hexcalc application instance.
type Application struct {
	Config    config.AppConfig
	Source    keygen.Source
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithSource sets a custom key source for the application. Tests use this to
// inject deterministic draws.
func WithSource(s keygen.Source) AppOption {
	return func(a *Application) { a.Source = s }
}

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Source == nil {
		app.Source = keygen.CryptoSource{}
	}

	programName := "hexcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	if app.Logger == nil {
		app.Logger = logging.NewLogger(os.Stderr, "hexcalc")
	}
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(false)

	if a.Config.IsExpression() {
		return a.runExpression(out)
	}

	if a.Config.TUI {
		return a.runTUI(ctx)
	}

	return a.runSearch(ctx, out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// IsConfigError checks if the error is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr apperrors.ConfigError
	return errors.As(err, &cfgErr)
}
