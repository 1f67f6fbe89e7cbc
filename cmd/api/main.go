package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ewilliams-labs/findbgm/internal/adapters/nlp"
	"github.com/ewilliams-labs/findbgm/internal/adapters/rest"
	"github.com/ewilliams-labs/findbgm/internal/adapters/ytmusic"
	"github.com/ewilliams-labs/findbgm/internal/config"
	"github.com/ewilliams-labs/findbgm/internal/core/ports"
	"github.com/ewilliams-labs/findbgm/internal/core/services"
)

func main() {
	// 1. Configuration: .env (if present), then defaults -> TOML -> env.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("FINDBGM_CONFIG"))
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	log := newLogger(cfg.Logging)

	// 2. Initialize "driven" adapters.
	// The catalog client is optional: without a base URL the service runs in
	// mock mode and recommendations come from the placeholder set.
	var catalog ports.CatalogClient
	if cfg.Catalog.BaseURL != "" {
		catalog = ytmusic.NewClient(cfg.Catalog, log)
		log.Info("Catalog client initialized")
	} else {
		log.Warn("No catalog base URL configured, using mock recommendations")
	}

	textEngine := nlp.NewEngine()

	// 3. Initialize core services and inject the adapters.
	analyzer := services.NewAnalyzer(textEngine, textEngine, log)
	searcher := services.NewSearcher(catalog, cfg.Audio, log)
	recommender := services.NewRecommender(searcher, cfg.Audio, log)
	svc := services.NewOrchestrator(analyzer, searcher, recommender, log)

	// 4. Initialize the "driving" adapter and start the server.
	handler := rest.NewHandler(svc, log)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: time.Duration(cfg.Server.ReadHeaderTimeoutSeconds) * time.Second,
	}

	log.WithField("addr", cfg.Server.Addr).Info("findbgm API is running")

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			log.WithError(err).Fatal("Server failed")
		}
	case <-ctx.Done():
		log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("Shutdown error")
		}
	}
}

func newLogger(cfg config.LoggingConfig) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}
