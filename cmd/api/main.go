package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/stockroomhq/stockroom-backend/api/routes"
	"github.com/stockroomhq/stockroom-backend/internal/auth"
	"github.com/stockroomhq/stockroom-backend/internal/describe"
	"github.com/stockroomhq/stockroom-backend/internal/items"
	"github.com/stockroomhq/stockroom-backend/internal/products"
	"github.com/stockroomhq/stockroom-backend/internal/users"
	"github.com/stockroomhq/stockroom-backend/pkg/config"
	"github.com/stockroomhq/stockroom-backend/pkg/db"
	"github.com/stockroomhq/stockroom-backend/pkg/logger"
	"github.com/stockroomhq/stockroom-backend/pkg/metrics"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logg := logger.New(logger.Options{
		ServiceName: "stockroom-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return err
	}
	defer client.Close()

	if cfg.Features.AutoMigrate {
		if err := client.AutoMigrate(ctx); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
		logg.Info(ctx, "schema auto-migrated")
	}

	userRepo := users.NewRepository(client.DB())
	if cfg.Features.SeedDemoUsers {
		if err := userRepo.SeedDemoUsers(ctx, cfg.Password, logg); err != nil {
			return fmt.Errorf("seed demo users: %w", err)
		}
	}

	itemsSvc, err := items.NewService(items.NewRepository(client.DB()))
	if err != nil {
		return err
	}
	productsSvc, err := products.NewService(products.NewRepository(client.DB()))
	if err != nil {
		return err
	}
	authSvc, err := auth.NewService(userRepo, cfg.JWT)
	if err != nil {
		return err
	}

	router := routes.New(routes.Deps{
		Config:   cfg,
		Logger:   logg,
		Metrics:  metrics.NewHTTPMetrics(),
		Items:    itemsSvc,
		Products: productsSvc,
		Auth:     authSvc,
		Describe: describe.NewTemplateGenerator(),
	})

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info(logg.WithField(ctx, "port", cfg.App.Port), "server.listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logg.Info(context.Background(), "server.shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
