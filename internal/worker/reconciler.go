// Package worker holds the background jobs that keep the attempt ledger honest after
// the request that created an attempt is gone.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/agrivault-booking/internal/application"
	"github.com/DanielPopoola/agrivault-booking/internal/domain"
)

// Reconciler checks recorded transfers against the chain. It never re-finalizes a
// booking; it only records what the ledger says happened to the funds.
type Reconciler struct {
	ledger    application.AttemptLedger
	verifier  application.SettlementVerifier
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
}

func NewReconciler(
	ledger application.AttemptLedger,
	verifier application.SettlementVerifier,
	interval time.Duration,
	batchSize int,
	logger *slog.Logger,
) *Reconciler {
	return &Reconciler{
		ledger:    ledger,
		verifier:  verifier,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("starting settlement reconciler", "interval", r.interval, "batch_size", r.batchSize)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("stopping settlement reconciler")
			return
		case <-ticker.C:
			r.RunOnce(ctx)
		}
	}
}

// RunOnce executes a single reconciliation cycle.
func (r *Reconciler) RunOnce(ctx context.Context) {
	flows, err := r.ledger.FindUnreconciled(ctx, r.batchSize)
	if err != nil {
		r.logger.Error("failed to fetch unreconciled attempts", "error", err)
		return
	}

	if len(flows) == 0 {
		return
	}

	r.logger.Info("reconciling settlements", "count", len(flows))

	var settled int
	for _, flow := range flows {
		status, err := r.reconcile(ctx, flow)
		if err != nil {
			r.logger.Error("settlement check failed",
				"attempt_id", flow.Attempt.ID,
				"tx_handle", handleOf(flow),
				"error", err)
			continue
		}
		if status.Settled() {
			settled++
		}
	}

	r.logger.Info("settlement cycle finished", "checked", len(flows), "settled", settled)
}

func (r *Reconciler) reconcile(ctx context.Context, flow domain.BookingFlow) (domain.SettlementStatus, error) {
	if flow.Attempt.Handle == nil {
		return domain.SettlementUnknown, nil
	}

	amount, err := domain.ToBaseUnits(flow.Attempt.Price)
	if err != nil {
		return domain.SettlementUnknown, err
	}

	status, err := r.verifier.Confirm(ctx, *flow.Attempt.Handle, flow.Attempt.Payee, amount)
	if err != nil {
		return domain.SettlementUnknown, err
	}

	if status == domain.SettlementPending || status == domain.SettlementUnknown {
		return status, nil
	}

	if err := r.ledger.MarkSettlement(ctx, flow.Attempt.ID, status); err != nil {
		return domain.SettlementUnknown, err
	}

	logger := r.logger.With("attempt_id", flow.Attempt.ID, "tx_handle", *flow.Attempt.Handle)
	switch status {
	case domain.SettlementConfirmed:
		if flow.Stage == domain.StageFailed {
			// Paid but not reserved; support needs to act on this one.
			logger.Warn("transfer settled for a failed booking",
				"warehouse_id", flow.Attempt.WarehouseID,
				"failure_code", failureCode(flow))
		} else {
			logger.Info("transfer settled")
		}
	default:
		logger.Warn("transfer did not settle as expected", "status", status)
	}

	return status, nil
}

func handleOf(flow domain.BookingFlow) string {
	if flow.Attempt.Handle == nil {
		return ""
	}
	return string(*flow.Attempt.Handle)
}

func failureCode(flow domain.BookingFlow) string {
	if flow.Failure == nil {
		return ""
	}
	return flow.Failure.Code
}
