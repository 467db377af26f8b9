package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/agrivault-booking/internal/application"
	"github.com/DanielPopoola/agrivault-booking/internal/domain"
)

// FinalizationCoordinator records a paid booking with the warehouse API.
type FinalizationCoordinator struct {
	finalizer application.BookingFinalizer
	cache     application.CacheInvalidator
	timeout   time.Duration
	logger    *slog.Logger
}

func NewFinalizationCoordinator(
	finalizer application.BookingFinalizer,
	cache application.CacheInvalidator,
	timeout time.Duration,
	logger *slog.Logger,
) *FinalizationCoordinator {
	return &FinalizationCoordinator{
		finalizer: finalizer,
		cache:     cache,
		timeout:   timeout,
		logger:    logger,
	}
}

// Finalize asks the backend to mark warehouseID booked against handle. It is never
// retried: a retry could double-book against a different handle. Every outcome other
// than OutcomeFinalized comes with an error describing it.
func (c *FinalizationCoordinator) Finalize(
	ctx context.Context,
	session domain.Session,
	warehouseID string,
	handle domain.TransactionHandle,
) (domain.FinalizationOutcome, error) {
	if handle == "" {
		return domain.OutcomeFinalizationError, domain.ErrMissingTransactionHandle
	}
	if !session.Authenticated() {
		return domain.OutcomeFinalizationError, domain.NewUnauthenticatedError()
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	err := c.finalizer.FinalizeBooking(ctx, session.Token, warehouseID, handle)
	if err == nil {
		if c.cache != nil {
			c.cache.InvalidateWarehouse(warehouseID)
		}
		c.logger.Info("booking finalized", "warehouse_id", warehouseID, "tx_handle", handle)
		return domain.OutcomeFinalized, nil
	}

	if upErr, ok := application.IsUpstreamError(err); ok && upErr.IsConflict() {
		c.logger.Warn("warehouse booked by another user after payment",
			"warehouse_id", warehouseID,
			"tx_handle", handle,
		)
		return domain.OutcomeAlreadyBooked, domain.NewAlreadyBookedError(warehouseID, err)
	}

	c.logger.Error("booking finalization failed after payment",
		"warehouse_id", warehouseID,
		"tx_handle", handle,
		"error", err,
	)
	return domain.OutcomeFinalizationError, domain.NewFinalizationError(warehouseID, err)
}
