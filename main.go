package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"

	"grubdash-api/config"
	"grubdash-api/handlers"
	"grubdash-api/metrics"
	"grubdash-api/models"
	"grubdash-api/routes"
	"grubdash-api/seed"
	"grubdash-api/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}
	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to configure logging")
	}
	entry := logger.WithField("component", "app")

	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, entry); err != nil {
		entry.WithError(err).Fatal("server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.Config, logger *log.Entry) error {
	dishes, orders, err := openStores(cfg, logger)
	if err != nil {
		return err
	}

	if cfg.Seed {
		n, err := seed.Load(ctx, dishes, orders)
		if err != nil {
			return err
		}
		logger.WithField("records", n).Info("seed data loaded")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	h := handlers.New(dishes, orders, store.NewID, m, logger)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewRouter(h, logger, m, registry),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("server running on http://localhost:%s", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received, stopping HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func openStores(cfg *config.Config, logger *log.Entry) (store.Store[models.Dish], store.Store[models.Order], error) {
	if cfg.Store.Driver != config.DriverSQLite {
		logger.Info("using in-memory store")
		return store.NewMemory[models.Dish](), store.NewMemory[models.Order](), nil
	}

	db, err := config.OpenDB(cfg.Store.DSN)
	if err != nil {
		return nil, nil, err
	}
	logger.WithField("dsn", cfg.Store.DSN).Info("using sqlite store")
	return store.NewSQL[models.Dish](db), store.NewSQL[models.Order](db), nil
}
