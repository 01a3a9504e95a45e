package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/churchhub/internal/client/cli"
	"github.com/dmitrijs2005/churchhub/internal/client/config"
	"github.com/dmitrijs2005/churchhub/internal/client/identity"
	"github.com/dmitrijs2005/churchhub/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/churchhub/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/churchhub/internal/client/session"
	"github.com/dmitrijs2005/churchhub/internal/client/storage"
	"github.com/dmitrijs2005/churchhub/internal/logging"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(ctx)
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(logging.Options{
		Backend: cfg.LogBackend,
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
	})

	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error(ctx, "failed to open local storage", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	provider := identity.NewMockProvider(accounts.NewSQLiteRepository(db), []byte(cfg.IdentitySecret), cfg.TokenTTL)
	store := session.NewSealedMetadataStore(metadata.NewSQLiteRepository(db), []byte(cfg.IdentitySecret))
	s := session.New(store, provider, logger)
	go s.Bootstrap(ctx)

	app := cli.NewApp(s, cli.Options{
		GivingURL:    cfg.GivingURL,
		CheckInDelay: cfg.CheckInDelay,
		Locale:       cfg.Locale,
		Logger:       logger,
	})

	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error(ctx, "client stopped", "error", err)
	}

}
