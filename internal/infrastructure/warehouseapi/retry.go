package warehouseapi

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/agrivault-booking/internal/application"
	"github.com/DanielPopoola/agrivault-booking/internal/config"
	"github.com/DanielPopoola/agrivault-booking/internal/domain"
	"github.com/jpillora/backoff"
)

// API is everything the booking service needs from the warehouse API.
type API interface {
	application.WarehouseReader
	application.BookingFinalizer
}

// RetryClient retries listing reads on transient failures. FinalizeBooking goes through
// exactly once.
type RetryClient struct {
	inner      API
	minDelay   time.Duration
	maxDelay   time.Duration
	maxRetries int
	logger     *slog.Logger
}

func NewRetryClient(inner API, cfg config.RetryConfig, logger *slog.Logger) *RetryClient {
	maxRetries := int(cfg.MaxRetries)
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &RetryClient{
		inner:      inner,
		minDelay:   cfg.BaseDelay,
		maxDelay:   cfg.MaxDelay,
		maxRetries: maxRetries,
		logger:     logger,
	}
}

func (r *RetryClient) ListWarehouses(ctx context.Context) ([]domain.Warehouse, error) {
	resp, err := retry(r, ctx, "list warehouses", func(ctx context.Context) (*[]domain.Warehouse, error) {
		ws, err := r.inner.ListWarehouses(ctx)
		return &ws, err
	})
	if err != nil {
		return nil, err
	}
	return *resp, nil
}

func (r *RetryClient) GetWarehouse(ctx context.Context, id string) (*domain.Warehouse, error) {
	return retry(r, ctx, "get warehouse", func(ctx context.Context) (*domain.Warehouse, error) {
		return r.inner.GetWarehouse(ctx, id)
	})
}

func (r *RetryClient) FinalizeBooking(ctx context.Context, token, warehouseID string, handle domain.TransactionHandle) error {
	return r.inner.FinalizeBooking(ctx, token, warehouseID, handle)
}

// Generic retry helper
func retry[T any](r *RetryClient, ctx context.Context, op string, operation func(ctx context.Context) (*T, error)) (*T, error) {
	b := &backoff.Backoff{
		Min:    r.minDelay,
		Max:    r.maxDelay,
		Factor: 2,
		Jitter: true,
	}

	var lastErr error
	for attempt := 0; attempt < r.maxRetries; attempt++ {
		resp, err := operation(ctx)
		if err == nil {
			return resp, nil
		}

		lastErr = err
		if !application.IsRetryable(err) || ctx.Err() != nil {
			return nil, err
		}

		if attempt < r.maxRetries-1 {
			delay := b.Duration()
			r.logger.Debug("retrying warehouse api call", "op", op, "attempt", attempt+1, "delay", delay, "error", err)

			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}
	}

	return nil, fmt.Errorf("maximum retries exceeded: %w", lastErr)
}
