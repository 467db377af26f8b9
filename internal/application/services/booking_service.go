package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/agrivault-booking/internal/application"
	"github.com/DanielPopoola/agrivault-booking/internal/domain"
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v2"
)

// BookingService drives one booking attempt from the user's request to a terminal flow.
type BookingService struct {
	warehouses  application.WarehouseReader
	wallet      application.Wallet
	initiator   *PaymentInitiator
	coordinator *FinalizationCoordinator
	recorder    application.AttemptRecorder
	observer    application.BookingObserver
	inflight    *xsync.MapOf[string, struct{}]
	logger      *slog.Logger

	newID func() string
	now   func() time.Time
}

// NewBookingService wires the booking flow. recorder and observer may be nil.
func NewBookingService(
	warehouses application.WarehouseReader,
	wallet application.Wallet,
	initiator *PaymentInitiator,
	coordinator *FinalizationCoordinator,
	recorder application.AttemptRecorder,
	observer application.BookingObserver,
	logger *slog.Logger,
) *BookingService {
	return &BookingService{
		warehouses:  warehouses,
		wallet:      wallet,
		initiator:   initiator,
		coordinator: coordinator,
		recorder:    recorder,
		observer:    observer,
		inflight:    xsync.NewMapOf[struct{}](),
		logger:      logger,
		newID:       func() string { return uuid.New().String() },
		now:         time.Now,
	}
}

// Book runs one attempt for warehouseID. It returns an error only when no attempt was
// started (another attempt in flight, warehouse missing or already booked). Every
// started attempt ends in a terminal flow, Complete or Failed, returned with a nil error.
func (s *BookingService) Book(ctx context.Context, session domain.Session, warehouseID string) (domain.BookingFlow, error) {
	if _, loaded := s.inflight.LoadOrStore(warehouseID, struct{}{}); loaded {
		return domain.BookingFlow{}, domain.NewAttemptInProgressError(warehouseID)
	}
	defer s.inflight.Delete(warehouseID)

	warehouse, err := s.warehouses.GetWarehouse(ctx, warehouseID)
	if err != nil {
		return domain.BookingFlow{}, err
	}
	if !warehouse.Available() {
		return domain.BookingFlow{}, domain.NewWarehouseUnavailableError(warehouseID)
	}

	started := s.now()
	flow, err := domain.NewBookingFlow(s.newID(), *warehouse, session.UserID, started).Begin()
	if err != nil {
		return domain.BookingFlow{}, application.NewInternalError(err)
	}

	if s.recorder != nil {
		if err := s.recorder.Start(ctx, flow); err != nil {
			if domain.IsErrorCode(err, domain.ErrCodeAttemptInProgress) {
				return domain.BookingFlow{}, err
			}
			return domain.BookingFlow{}, application.NewInternalError(fmt.Errorf("record attempt: %w", err))
		}
	}

	logger := s.logger.With("attempt_id", flow.Attempt.ID, "warehouse_id", warehouseID)

	flow, err = s.run(ctx, logger, session, flow)
	if err != nil {
		// A transition was refused; the flow never left its last valid stage.
		logger.Error("booking flow stopped on invalid transition", "stage", flow.Stage, "error", err)
		flow, _ = flow.Abandon(err)
	}

	_ = s.save(ctx, logger, flow)
	if s.observer != nil {
		s.observer.AttemptFinished(flow, s.now().Sub(started))
	}

	if flow.Failure != nil {
		logger.Warn("booking attempt failed",
			"code", flow.Failure.Code,
			"funds_transferred", flow.Failure.FundsTransferred,
			"error", flow.Failure.Err,
		)
	} else {
		logger.Info("booking attempt complete", "tx_handle", flow.Receipt.TransactionHandle)
	}

	return flow, nil
}

func (s *BookingService) run(ctx context.Context, logger *slog.Logger, session domain.Session, flow domain.BookingFlow) (domain.BookingFlow, error) {
	flow, err := flow.WalletChecked(s.wallet.ConnectedAddress(ctx))
	if err != nil || flow.IsTerminal() {
		return flow, err
	}

	if !session.Authenticated() {
		return flow.SessionMissing()
	}

	flow, err = flow.ResolveAddress()
	if err != nil || flow.IsTerminal() {
		return flow, err
	}

	// The ledger row must still be open before the wallet is asked to pay.
	if err := s.save(ctx, logger, flow); errors.Is(err, domain.ErrAttemptClosed) {
		return flow.Abandon(domain.NewAbandonedError(flow.Attempt.ID))
	}

	handle, err := s.initiator.SendPayment(ctx, flow.Attempt.Payee, flow.Attempt.Price)
	if err != nil {
		return flow.PaymentFailed(err)
	}

	flow, err = flow.PaymentSubmitted(handle)
	if err != nil {
		return flow, err
	}
	_ = s.save(ctx, logger, flow)

	// Funds have moved. A caller that goes away now must not abort the finalization.
	finalizeCtx := context.WithoutCancel(ctx)

	finalizeStart := s.now()
	outcome, cause := s.coordinator.Finalize(finalizeCtx, session, flow.Attempt.WarehouseID, handle)
	if s.observer != nil {
		s.observer.FinalizationObserved(outcome, s.now().Sub(finalizeStart))
	}

	return flow.FinalizationSettled(outcome, handle, cause, s.now())
}

// save records flow and logs a failure. Errors never stop a flow that already paid.
func (s *BookingService) save(ctx context.Context, logger *slog.Logger, flow domain.BookingFlow) error {
	if s.recorder == nil {
		return nil
	}
	err := s.recorder.Save(context.WithoutCancel(ctx), flow)
	if err == nil {
		return nil
	}

	attrs := []any{"stage", flow.Stage, "error", err}
	if flow.Attempt.Handle != nil {
		attrs = append(attrs, "tx_handle", *flow.Attempt.Handle)
	}
	switch {
	case errors.Is(err, domain.ErrAttemptClosed) && flow.Attempt.Handle == nil:
		logger.Warn("booking attempt already closed in the ledger", attrs...)
	case errors.Is(err, domain.ErrAttemptClosed):
		logger.Error("booking attempt was closed while its transfer was in flight", attrs...)
	default:
		logger.Error("failed to record booking attempt", attrs...)
	}
	return err
}
