package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"nidx/internal/platform/config"
	"nidx/internal/platform/logger"
	"nidx/internal/platform/metrics"
	"nidx/internal/platform/token"
	httptransport "nidx/internal/transport/http"
	"nidx/internal/validation"
	"nidx/pkg/secrets"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps
// the server lifecycle small. Validation logic lives in internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if cfg.AdminTokenHash == "" {
		// Dev fallback so the admin endpoint works out of the box.
		h, err := secrets.Hash("demo-admin-token")
		if err != nil {
			log.Error("could not hash default admin token", "error", err)
			os.Exit(1)
		}
		cfg.AdminTokenHash = h
		log.Warn("using default admin token; set NIDX_ADMIN_TOKEN_HASH in production")
	}

	log.Info("initializing nidx",
		"addr", cfg.Addr,
		"batch_limit", cfg.BatchLimit,
		"batch_workers", cfg.BatchWorkers,
	)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	svc := validation.New(log, m, validation.WithBatchWorkers(cfg.BatchWorkers))
	tokens := token.NewService(cfg.JWTSigningKey, "nidx", cfg.TokenTTL)

	handler := httptransport.NewHandler(svc, tokens, log, cfg.BatchLimit)
	router := httptransport.NewRouter(handler, tokens, m, reg, log, httptransport.RouterConfig{
		RequestTimeout: cfg.RequestTimeout,
		AdminTokenHash: cfg.AdminTokenHash,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
