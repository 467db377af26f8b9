// Package bootstrap wires the booking services from configuration. Both the HTTP
// gateway and the CLI build on it.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/agrivault-booking/internal/application"
	"github.com/DanielPopoola/agrivault-booking/internal/application/services"
	"github.com/DanielPopoola/agrivault-booking/internal/config"
	"github.com/DanielPopoola/agrivault-booking/internal/infrastructure/cache"
	"github.com/DanielPopoola/agrivault-booking/internal/infrastructure/chain"
	"github.com/DanielPopoola/agrivault-booking/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/agrivault-booking/internal/infrastructure/warehouseapi"
	"github.com/DanielPopoola/agrivault-booking/internal/metrics"
	"github.com/ethereum/go-ethereum/ethclient"
)

type App struct {
	DB       *postgres.DB
	Ledger   *postgres.AttemptRepository
	Verifier *chain.SettlementVerifier
	Metrics  *metrics.Metrics

	Query   *services.WarehouseQueryService
	Booking *services.BookingService

	rpc *ethclient.Client
}

// Build connects to the configured collaborators. The database is optional; without it
// Ledger and DB are nil and no attempt is recorded.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	app := &App{Metrics: metrics.New()}

	var recorder application.AttemptRecorder
	if cfg.Database.Enabled() {
		db, err := postgres.Connect(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		app.DB = db
		app.Ledger = postgres.NewAttemptRepository(db)
		recorder = app.Ledger
	} else {
		logger.Warn("database not configured; booking attempts will not be recorded")
	}

	rpc, err := chain.DialEVMClient(cfg.Wallet.RPCURL)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("dial rpc: %w", err)
	}
	app.rpc = rpc

	wallet, err := chain.NewWallet(rpc, cfg.Wallet)
	if err != nil {
		app.Close()
		return nil, err
	}
	if wallet.ConnectedAddress(ctx) == "" {
		logger.Warn("no wallet key configured; bookings will fail with WALLET_NOT_CONNECTED")
	}
	app.Verifier = chain.NewSettlementVerifier(rpc, cfg.Wallet)

	api := warehouseapi.NewClient(cfg.WarehouseAPI)
	reads := warehouseapi.NewRetryClient(api, cfg.Retry, logger)
	cached := cache.NewWarehouseCache(reads, cfg.Cache.Size, cfg.Cache.TTL)

	initiator := services.NewPaymentInitiator(wallet, logger)
	coordinator := services.NewFinalizationCoordinator(reads, cached, cfg.Booking.FinalizeTimeout, logger)

	app.Query = services.NewWarehouseQueryService(cached)
	// Bookings read the listing uncached so a recent booking elsewhere is seen before paying.
	app.Booking = services.NewBookingService(
		reads,
		wallet,
		initiator,
		coordinator,
		recorder,
		app.Metrics,
		logger,
	)

	return app, nil
}

// HealthCheck pings the database when one is configured.
func (a *App) HealthCheck(ctx context.Context) error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Pool.Ping(ctx)
}

func (a *App) Close() {
	if a.rpc != nil {
		a.rpc.Close()
	}
	if a.DB != nil {
		a.DB.Close()
	}
}
