// Package main provides the entry point for the career_journal CLI.
package main

import (
	"context"
	"fmt"

	"github.com/jonathan/career-journal/internal/config"
	"github.com/jonathan/career-journal/internal/kv"
	"github.com/jonathan/career-journal/internal/logging"
	"github.com/jonathan/career-journal/internal/observability"
	"github.com/jonathan/career-journal/internal/persistence"
	"github.com/jonathan/career-journal/internal/storage"
	"github.com/jonathan/career-journal/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app bundles everything a command needs once configuration is resolved
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	slots   kv.Store
	adapter *persistence.Adapter
	store   *store.Store
	printer *observability.Printer
}

// loadConfig merges the config file, environment and the global flags the user set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	overrides := map[string]any{}
	flags := cmd.Flags()
	if flags.Changed("storage") {
		overrides["storage.backend"] = storageName
	}
	if flags.Changed("path") {
		overrides["storage.path"] = storagePath
	}
	if verbose {
		overrides["log.level"] = "debug"
		overrides["log.development"] = true
	}

	cfg, err := config.LoadConfig(configPath, overrides)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openApp resolves configuration, opens storage and loads the store
func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	slots, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
	}
	logger.Debug("Opened storage", zap.String("backend", cfg.Storage.Backend))

	adapter := persistence.New(slots, logger, persistence.WithNamespace(cfg.Storage.Namespace))

	return &app{
		cfg:     cfg,
		logger:  logger,
		slots:   slots,
		adapter: adapter,
		store:   store.Open(ctx, adapter, logger),
		printer: observability.NewPrinter(cmd.OutOrStdout()),
	}, nil
}

// Close releases storage and flushes the logger
func (a *app) Close() {
	if err := a.slots.Close(); err != nil {
		a.logger.Warn("Failed to close storage", zap.Error(err))
	}
	_ = a.logger.Sync()
}
