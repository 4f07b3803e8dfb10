package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/medibook/medibook-platform/internal/api/router"
	"github.com/medibook/medibook-platform/internal/appointments"
	"github.com/medibook/medibook-platform/internal/auth"
	"github.com/medibook/medibook-platform/internal/booking"
	appconfig "github.com/medibook/medibook-platform/internal/config"
	"github.com/medibook/medibook-platform/internal/doctors"
	"github.com/medibook/medibook-platform/internal/notify"
	"github.com/medibook/medibook-platform/internal/observability/metrics"
	"github.com/medibook/medibook-platform/internal/simulate"
	"github.com/medibook/medibook-platform/pkg/logging"
)

func main() {
	// Load .env if present; real env vars win
	_ = godotenv.Load()

	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting medibook-platform API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	sleeper := simulate.ForConfig(cfg.MockLatency)
	registry := prometheus.NewRegistry()
	bookingMetrics := metrics.NewBookingMetrics(registry)
	notifier := notify.NewLogNotifier(logger.Named("notify"))

	// Initialize repositories and services
	var doctorRepo doctors.Repository = doctors.NewInMemoryRepository(doctors.Seed(), sleeper)
	if cfg.RedisAddr != "" {
		opts := &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		doctorRepo = doctors.NewCachedRepository(
			doctorRepo, redis.NewClient(opts), cfg.DoctorCacheTTL, logger.Named("doctors.cache"))
		logger.Info("doctor directory cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.DoctorCacheTTL)
	}

	aptRepo := appointments.NewInMemoryRepository(sleeper)
	authService := auth.NewService(sleeper)
	bookingService := booking.NewService(
		doctorRepo, aptRepo, notifier, bookingMetrics, sleeper, cfg.BookingStageScale, logger.Named("booking"))

	// Setup router
	r := router.New(&router.Config{
		Logger:              logger,
		DoctorsHandler:      doctors.NewHandler(doctorRepo, logger.Named("doctors")),
		AppointmentsHandler: appointments.NewHandler(aptRepo, bookingMetrics, logger.Named("appointments")),
		BookingHandler:      booking.NewHandler(bookingService, logger.Named("booking")),
		AuthHandler:         auth.NewHandler(authService, logger.Named("auth")),
		MetricsHandler:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
