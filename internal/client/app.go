// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/afero"

	"github.com/MKhiriev/go-file-syncer/internal/adapter"
	"github.com/MKhiriev/go-file-syncer/internal/config"
	"github.com/MKhiriev/go-file-syncer/internal/logger"
	"github.com/MKhiriev/go-file-syncer/internal/service"
	"github.com/MKhiriev/go-file-syncer/internal/store"
	"github.com/MKhiriev/go-file-syncer/internal/tui"
	"github.com/MKhiriev/go-file-syncer/internal/workers"
)

// Exit codes of the process.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitCancelled = workers.ExitCodeCancelled
)

// DefaultLogFile mirrors every log entry as JSON next to the config file,
// keeping a machine-readable record across runs.
const DefaultLogFile = "sync_log.txt"

// App wires every layer together for one run.
type App struct {
	flags     *config.Flags
	log       *logger.Logger
	presenter *tui.TerminalPresenter
}

// NewApp parses the command line and builds the ambient pieces (logger,
// presenter) that every later step needs.
func NewApp() *App {
	flags := config.ParseFlags()

	return &App{
		flags: flags,
		log: logger.NewSyncLogger("syncer", logger.Options{
			Verbose:  flags.Verbose,
			NoColor:  flags.NoColor,
			FilePath: DefaultLogFile,
		}),
		presenter: tui.NewTerminalPresenter(flags.NoColor),
	}
}

// Run executes one sync run end to end and returns the process exit code.
func (a *App) Run() int {
	cfg, err := a.loadConfig()
	if err != nil {
		a.log.Error().Err(err).Msg("configuration failed")
		return ExitFailure
	}

	token := service.NewCancelToken(context.Background())
	workers.NewWorkers(token, a.log).Start()

	server, err := a.connect(token, cfg)
	if err != nil {
		a.log.Error().Err(err).Msg("server connection failed")
		return ExitFailure
	}

	localStore := store.NewLocalStore(afero.NewOsFs(), cfg.Local)
	if err := localStore.EnsureDirs(); err != nil {
		a.log.Error().Err(err).Msg("local directory setup failed")
		return ExitFailure
	}

	a.presenter.Banner(cfg.Server.URL, cfg.Local.Dir, cfg.Local.DownloadDir)

	services := service.NewSyncServices(server, localStore, a.presenter, a.presenter, cfg, a.log)

	result, err := services.Syncer.Sync(token, a.flags.Extension)
	switch {
	case errors.Is(err, service.ErrConfirmationDeclined):
		a.log.Info().Msg("download not confirmed, nothing transferred")
		return ExitFailure
	case err != nil:
		a.log.Error().Err(err).Msg("sync failed")
		return ExitFailure
	case result.Cancelled:
		return ExitCancelled
	case result.OK():
		return ExitOK
	default:
		return ExitFailure
	}
}

// loadConfig produces the effective configuration: interactive first-run
// creation when the file is missing, merged sources, command-line
// overrides persisted back, and credential prompting for empty fields.
func (a *App) loadConfig() (*config.StructuredConfig, error) {
	path := a.flags.ConfigPath

	if _, err := os.Stat(path); os.IsNotExist(err) {
		a.log.Info().Str("path", path).Msg("no config file, starting interactive setup")
		created, err := a.presenter.PromptInitialConfig(config.Defaults())
		if err != nil {
			return nil, err
		}
		if err := created.Save(path); err != nil {
			return nil, err
		}
		a.log.Info().Str("path", path).Msg("config file created")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if applied := a.flags.Apply(cfg); len(applied) > 0 {
		a.log.Debug().Strs("overrides", applied).Msg("command-line overrides applied")
		if err := cfg.Save(path); err != nil {
			a.log.Warn().Err(err).Msg("could not persist overrides to config file")
		}
	}

	if missing := cfg.MissingCredentials(); len(missing) > 0 {
		if err := a.presenter.PromptMissingCredentials(cfg, missing); err != nil {
			return nil, err
		}
		if still := cfg.MissingCredentials(); len(still) > 0 {
			return nil, errors.New("server credentials are incomplete")
		}
		if err := cfg.Save(path); err != nil {
			a.log.Warn().Err(err).Msg("could not persist credentials to config file")
		}
	}

	return cfg, nil
}

// connect builds the server adapter and validates credentials with a test
// request before any transfer is attempted. A rejected credential gets one
// interactive re-prompt.
func (a *App) connect(token *service.CancelToken, cfg *config.StructuredConfig) (adapter.ServerAdapter, error) {
	server, err := adapter.NewHTTPServerAdapter(cfg.Server, cfg.Download, a.log)
	if err != nil {
		return nil, err
	}

	err = server.TestConnection(token.Context())
	if err == nil {
		return server, nil
	}
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return nil, err
	}

	a.log.Warn().Msg("credentials rejected, prompting again")
	if perr := a.presenter.PromptMissingCredentials(cfg, []string{"username", "password"}); perr != nil {
		return nil, perr
	}

	server, err = adapter.NewHTTPServerAdapter(cfg.Server, cfg.Download, a.log)
	if err != nil {
		return nil, err
	}
	if err := server.TestConnection(token.Context()); err != nil {
		return nil, err
	}
	return server, nil
}
