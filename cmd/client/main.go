package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/platform"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("go-pass-vault-client", cfg.App.LogFile)
	logBuildInfo(log)

	if err = platform.DisableCoreDumps(); err != nil {
		log.Warn().Err(err).Msg("core dumps stay enabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Cache, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("failed to close local storage")
		}
	}()

	services := service.NewClientServices(storages, serverAdapter, log)

	app, err := client.NewApp(services, platform.NewPrompter(os.Stdin, os.Stderr), platform.NewClipboard(), cfg.App, os.Stdout, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		return err
	}
	return nil
}

func logBuildInfo(log *logger.Logger) {
	info := models.AppBuildInfo{
		BuildVersion: buildVersion,
		BuildDate:    buildDate,
		BuildCommit:  buildCommit,
	}.Normalize()

	log.Info().
		Str("version", info.BuildVersion).
		Str("date", info.BuildDate).
		Str("commit", info.BuildCommit).
		Msg("starting client")
}
