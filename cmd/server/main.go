package main

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/mjardin/docshare/internal/config"
	"github.com/mjardin/docshare/internal/crypto"
	httphandler "github.com/mjardin/docshare/internal/handler/http"
	"github.com/mjardin/docshare/internal/logger"
	"github.com/mjardin/docshare/internal/mailer"
	"github.com/mjardin/docshare/internal/server"
	"github.com/mjardin/docshare/internal/service"
	"github.com/mjardin/docshare/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("docshare-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	codec, err := newLinkCodec(cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating download link codec")
	}

	mail := newMailer(cfg.Mail, log)

	services := service.NewServices(*storages, codec, mail, *cfg, log)
	handlers := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newLinkCodec builds the capability link codec from the configured key.
// With no key configured a fresh one is generated, which keeps development
// setups working but invalidates every previously minted link on restart.
func newLinkCodec(cfg config.App, log *logger.Logger) (crypto.LinkCodec, error) {
	if cfg.LinkKey == "" {
		log.Warn().Msg("no link key configured, generating an ephemeral one: download links will not survive a restart")
		key, err := crypto.GenerateLinkKey()
		if err != nil {
			return nil, err
		}
		return crypto.NewLinkCodec(key)
	}

	key, err := base64.RawURLEncoding.DecodeString(cfg.LinkKey)
	if err != nil {
		return nil, fmt.Errorf("decoding configured link key: %w", err)
	}
	return crypto.NewLinkCodec(key)
}

// newMailer selects SMTP delivery when a host is configured and falls back
// to log-only delivery otherwise.
func newMailer(cfg config.Mail, log *logger.Logger) mailer.Mailer {
	if cfg.Host == "" {
		log.Warn().Msg("no SMTP host configured, mail delivery is log-only")
		return mailer.NewLogMailer(cfg.BaseURL, log)
	}

	m, err := mailer.NewSMTPMailer(cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("SMTP client creation failed, mail delivery is log-only")
		return mailer.NewLogMailer(cfg.BaseURL, log)
	}
	return m
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
