package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/agrivault-booking/internal/application"
	"github.com/DanielPopoola/agrivault-booking/internal/domain"
)

// StaleAttemptWorker closes attempts left in flight by a process that died mid-flow.
type StaleAttemptWorker struct {
	ledger     application.AttemptLedger
	interval   time.Duration
	staleAfter time.Duration
	batchSize  int
	logger     *slog.Logger
	now        func() time.Time
}

func NewStaleAttemptWorker(
	ledger application.AttemptLedger,
	interval time.Duration,
	staleAfter time.Duration,
	batchSize int,
	logger *slog.Logger,
) *StaleAttemptWorker {
	return &StaleAttemptWorker{
		ledger:     ledger,
		interval:   interval,
		staleAfter: staleAfter,
		batchSize:  batchSize,
		logger:     logger,
		now:        time.Now,
	}
}

func (w *StaleAttemptWorker) Start(ctx context.Context) {
	w.logger.Info("stale attempt worker started", "interval", w.interval, "stale_after", w.staleAfter)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	if err := w.processStale(ctx); err != nil {
		w.logger.Error("stale attempt processing failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("stale attempt worker stopping")
			return
		case <-ticker.C:
			if err := w.processStale(ctx); err != nil {
				w.logger.Error("stale attempt processing failed", "error", err)
			}
		}
	}
}

// RunOnce executes a single pass.
func (w *StaleAttemptWorker) RunOnce(ctx context.Context) error {
	return w.processStale(ctx)
}

func (w *StaleAttemptWorker) processStale(ctx context.Context) error {
	cutoff := w.now().Add(-w.staleAfter)

	stale, err := w.ledger.FindStale(ctx, cutoff, w.batchSize)
	if err != nil {
		return err
	}

	if len(stale) == 0 {
		return nil
	}

	var processed, abandoned int

	for _, flow := range stale {
		closed, err := w.abandon(ctx, flow, cutoff)
		switch {
		case err != nil:
			w.logger.Error("failed to abandon attempt",
				"attempt_id", flow.Attempt.ID,
				"error", err)
		case closed:
			abandoned++
		default:
			w.logger.Info("stale attempt moved on before it could be abandoned",
				"attempt_id", flow.Attempt.ID)
		}
		processed++
	}

	w.logger.Info("processed stale attempts",
		"processed", processed,
		"abandoned", abandoned)

	return nil
}

// abandon closes flow unless its owner recorded progress after cutoff.
func (w *StaleAttemptWorker) abandon(ctx context.Context, flow domain.BookingFlow, cutoff time.Time) (bool, error) {
	next, err := flow.Abandon(domain.NewAbandonedError(flow.Attempt.ID))
	if err != nil {
		return false, err
	}

	if next.Failure.FundsTransferred {
		w.logger.Warn("abandoned attempt after payment",
			"attempt_id", flow.Attempt.ID,
			"warehouse_id", flow.Attempt.WarehouseID,
			"tx_handle", handleOf(flow))
	}

	return w.ledger.CloseStale(ctx, next, cutoff)
}
