package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "seva-donate/internal/adapter/http"
	"seva-donate/internal/adapter/jsonfile"
	"seva-donate/internal/adapter/postgres"
	"seva-donate/internal/adapter/razorpay"
	"seva-donate/internal/adapter/usecase"
	"seva-donate/internal/config"
	"seva-donate/internal/core/port"
	"seva-donate/internal/db"
)

// main is the entry point of the donation server. It loads
// configuration, optionally runs ledger migrations, initializes the
// campaign store and payment gateway, then starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// The donation ledger is optional; without it captures are not
	// recorded and the payment-info endpoint serves zero placeholders.
	var ledger port.DonationRepository
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()
		ledger = postgres.NewDonationRepository(pool)
	}

	repo := jsonfile.NewCampaignRepository(cfg.Storage.Path)
	campaigns := usecase.NewCampaignUseCase(repo)
	if err = campaigns.EnsureInitialized(ctx); err != nil {
		logger.Error("campaign store init error", slog.Any("error", err))
		os.Exit(1)
	}

	// Resolve gateway credentials once; the server still serves
	// campaigns without them, every capture just fails fast.
	var gateway port.PaymentGateway
	client, err := razorpay.New(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret,
		razorpay.WithBaseURL(cfg.Razorpay.BaseURL))
	switch {
	case errors.Is(err, razorpay.ErrCredentialsMissing):
		logger.Warn("razorpay credentials not configured, captures will fail fast")
	case err != nil:
		logger.Error("gateway client error", slog.Any("error", err))
		os.Exit(1)
	default:
		gateway = client
	}
	payments := usecase.NewPaymentUseCase(gateway, ledger, logger)

	handler := httpadapter.NewHandler(campaigns, payments, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
