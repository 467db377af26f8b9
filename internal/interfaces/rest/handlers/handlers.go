package handlers

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/agrivault-booking/internal/domain"
	"github.com/DanielPopoola/agrivault-booking/internal/interfaces/rest"
)

type WarehouseQuerier interface {
	List(ctx context.Context, onlyAvailable bool) ([]domain.Warehouse, error)
	Get(ctx context.Context, id string) (*domain.Warehouse, error)
}

type Booker interface {
	Book(ctx context.Context, session domain.Session, warehouseID string) (domain.BookingFlow, error)
}

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Handlers struct {
	warehouses    WarehouseQuerier
	bookings      Booker
	sessions      *rest.SessionParser
	explorerTxURL string
	health        HealthCheck
	logger        *slog.Logger
}

// NewHandlers wires the HTTP handlers. health may be nil.
func NewHandlers(
	warehouses WarehouseQuerier,
	bookings Booker,
	sessions *rest.SessionParser,
	explorerTxURL string,
	health HealthCheck,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		warehouses:    warehouses,
		bookings:      bookings,
		sessions:      sessions,
		explorerTxURL: explorerTxURL,
		health:        health,
		logger:        logger,
	}
}
