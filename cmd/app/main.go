// File: cmd/app/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"membership-credits/internal/config"
	"membership-credits/internal/domain"
	"membership-credits/internal/domain/ports/repository"
	"membership-credits/internal/infra/billing"
	pg "membership-credits/internal/infra/db/postgres"
	"membership-credits/internal/infra/logging"
	"membership-credits/internal/infra/metrics"
	red "membership-credits/internal/infra/redis"
	"membership-credits/internal/infra/web"
	"membership-credits/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	metrics.MustRegister()

	// ---- Postgres ----
	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, cfg.Database.MaxConns)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	// ---- Redis ----
	redisClient, err := red.NewClient(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()
	sessions := red.NewSessionStore(redisClient, cfg.Redis.SessionTTL)

	// ---- Repositories ----
	userRepo := pg.NewUserRepo(pool)
	productRepo := pg.NewProductRepo(pool)
	invoiceRepo := pg.NewInvoiceRepo(pool)
	settingsRepo := pg.NewSettingsRepo(pool)
	txManager := pg.NewTxManager(pool)

	// Ledger collaborator: absent unless enabled, which disables conversion
	// and product lookup without being an error.
	var ledgerRepo repository.LedgerRepository
	if cfg.Credits.LedgerEnabled {
		ledgerRepo = pg.NewLedgerRepo(pool)
	}

	// Persisted setting overrides the yaml ratio.
	ratio := cfg.Credits.CreditsPerDollar
	if v, err := settingsRepo.Get(ctx, repository.SettingKeyCreditsPerDollar); err == nil {
		if n, perr := strconv.ParseInt(v, 10, 64); perr == nil {
			ratio = n
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		log.Fatalf("settings: %v", err)
	}

	// ---- Use cases ----
	creditsUC := usecase.NewCreditsUseCase(ratio, ledgerRepo, productRepo, logger)
	invoicing := billing.NewInvoicing(invoiceRepo, txManager, logger)
	purchaseUC := usecase.NewPurchaseUseCase(creditsUC, invoicing, logger)

	if !creditsUC.IsConfigured() {
		logger.Warn().Int64("credits_per_dollar", ratio).
			Bool("ledger_enabled", cfg.Credits.LedgerEnabled).
			Msg("credits feature not configured; conversion and purchases disabled")
	}

	// ---- User menu ----
	menu := web.NewMenu()
	menu.Register(web.MenuEntry{ID: "credits", Label: "Credits (legacy)", Href: "/legacy-credits", Order: 500})
	if creditsUC.IsConfigured() {
		// Replace the stock credits link with this service's view.
		menu.Remove("credits")
		menu.Register(web.MenuEntry{ID: "ents-credits", Label: "Credits", Href: "/credits", Order: 900})
	}

	// ---- HTTP ----
	auth := web.NewAuthManager(cfg.Admin.JWTSecret, cfg.Admin.TokenTTL)
	srv := web.NewServer(creditsUC, purchaseUC, invoiceRepo, userRepo, sessions, settingsRepo, auth, menu, cfg.Runtime.Dev, logger)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: srv.Routes(),
	}
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server stopped")
		}
	}()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}
	cancel()
}
