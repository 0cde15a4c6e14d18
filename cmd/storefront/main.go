package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fjod/go_cart/storefront/internal/catalog"
	"github.com/fjod/go_cart/storefront/internal/config"
	"github.com/fjod/go_cart/storefront/internal/domain"
	h "github.com/fjod/go_cart/storefront/internal/http"
	"github.com/fjod/go_cart/storefront/internal/service"
	"github.com/fjod/go_cart/storefront/internal/store"
	"github.com/sirupsen/logrus"
)

func newLogger(level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.Level = level
	log.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
		TimestampFormat: time.RFC3339Nano,
	}
	log.Out = os.Stdout
	return log
}

func main() {
	cfg := config.Load()
	log := newLogger(cfg.LogLevel)
	ctx := context.Background()

	// Catalog
	repo, err := catalog.NewRepository(cfg.CatalogDBPath)
	if err != nil {
		log.WithError(err).Fatal("failed to open catalog database")
	}
	if err := repo.RunMigrations(); err != nil {
		log.WithError(err).Fatal("failed to migrate catalog")
	}
	products, err := catalog.LoadStatic(ctx, repo)
	if err != nil {
		log.WithError(err).Fatal("failed to load catalog")
	}
	if err := repo.Close(); err != nil {
		log.WithError(err).Warn("failed to close catalog database")
	}
	log.WithField("products", len(products.List(domain.CategoryAll))).Info("catalog loaded")

	// Cart store
	cartStore, closeStore, err := store.Open(ctx, store.Options{
		Backend:       cfg.StoreBackend,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		MongoURI:      cfg.MongoURI,
		MongoDBName:   cfg.MongoDBName,
		TTL:           cfg.CartTTL,
	}, log)
	if err != nil {
		log.WithError(err).Fatal("failed to open cart store")
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.WithError(err).Warn("failed to close cart store")
		}
	}()

	svc := service.NewCartService(cartStore, products, log)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      h.NewRouter(svc, cfg.RequestTimeout, log),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.HTTPPort).WithField("store", cfg.StoreBackend).Info("storefront listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Info("shutting down server...")
	case err := <-errCh:
		log.WithError(err).Error("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}

	log.Info("server exited")
}
