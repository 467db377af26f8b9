package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/agrivault-booking/internal/api"
	"github.com/DanielPopoola/agrivault-booking/internal/bootstrap"
	"github.com/DanielPopoola/agrivault-booking/internal/config"
	"github.com/DanielPopoola/agrivault-booking/internal/interfaces/rest"
	"github.com/DanielPopoola/agrivault-booking/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/agrivault-booking/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/agrivault-booking/internal/worker"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger(cfg.Primary.Env)
	slog.SetDefault(logger)

	logger.Info("starting booking gateway",
		"port", cfg.Server.Port,
		"env", cfg.Primary.Env,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()
	app, err := bootstrap.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialise services", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	doc, err := api.GetSwagger()
	if err != nil {
		logger.Error("failed to load openapi spec", "error", err)
		os.Exit(1)
	}
	validate, err := api.RequestValidator(doc, logger)
	if err != nil {
		logger.Error("failed to build request validator", "error", err)
		os.Exit(1)
	}

	h := handlers.NewHandlers(
		app.Query,
		app.Booking,
		rest.NewSessionParser(cfg.Auth.JWTSecret),
		cfg.Booking.ExplorerTxURL,
		app.HealthCheck,
		logger,
	)

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	h.Register(mux, cfg.Server.ReadTimeout, app.Metrics.Instrument)
	mux.Handle("GET /metrics", app.Metrics.Handler())

	handler := validate(mux)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)

	server := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	if app.Ledger != nil {
		reconciler := worker.NewReconciler(
			app.Ledger,
			app.Verifier,
			cfg.Worker.Interval,
			cfg.Worker.BatchSize,
			logger,
		)

		staleWorker := worker.NewStaleAttemptWorker(
			app.Ledger,
			cfg.Worker.Interval,
			cfg.Worker.StaleAfter,
			cfg.Worker.BatchSize,
			logger,
		)

		go reconciler.Start(workerCtx)
		go staleWorker.Start(workerCtx)
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	cancelWorkers()

	// in-flight bookings are allowed to reach a terminal stage
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Booking.FinalizeTimeout+30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
