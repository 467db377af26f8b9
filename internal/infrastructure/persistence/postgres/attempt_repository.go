package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/DanielPopoola/agrivault-booking/internal/domain"
	"github.com/jackc/pgx/v5"
)

const activeAttemptIndex = "booking_attempts_one_active"

const attemptColumns = `
	id, warehouse_id, warehouse_name, location, user_id, price, payment_identifier,
	wallet_address, payee_address, stage, tx_handle, outcome, failure_code, failure_reason,
	funds_transferred, settlement_status, finalized_at, started_at, updated_at`

// AttemptRepository is the booking attempt ledger.
type AttemptRepository struct {
	q Executor
}

func NewAttemptRepository(db *DB) *AttemptRepository {
	return &AttemptRepository{q: db.Pool}
}

// Start inserts a new attempt. A second non-terminal attempt for the same warehouse is
// refused by a partial unique index and reported as domain.ErrAttemptInProgress.
func (r *AttemptRepository) Start(ctx context.Context, flow domain.BookingFlow) error {
	query := `
		INSERT INTO booking_attempts (
			id, warehouse_id, warehouse_name, location, user_id, price, payment_identifier,
			wallet_address, payee_address, stage, tx_handle, outcome, failure_code, failure_reason,
			funds_transferred, finalized_at, started_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW())
	`

	m := toDBModel(flow)
	_, err := r.q.Exec(ctx, query,
		m.ID,
		m.WarehouseID,
		m.WarehouseName,
		m.Location,
		m.UserID,
		m.Price,
		m.PaymentIdentifier,
		m.WalletAddress,
		m.PayeeAddress,
		m.Stage,
		m.TxHandle,
		m.Outcome,
		m.FailureCode,
		m.FailureReason,
		m.FundsTransferred,
		m.FinalizedAt,
		m.StartedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) && constraintName(err) == activeAttemptIndex {
			return domain.NewAttemptInProgressError(m.WarehouseID)
		}
		return fmt.Errorf("failed to start attempt: %w", err)
	}

	return nil
}

const updateAttempt = `
	UPDATE booking_attempts SET
		wallet_address = $2,
		payee_address = $3,
		stage = $4,
		tx_handle = $5,
		outcome = $6,
		failure_code = $7,
		failure_reason = $8,
		funds_transferred = $9,
		finalized_at = $10,
		updated_at = NOW()
	WHERE id = $1
	  AND stage NOT IN ('COMPLETE', 'FAILED')`

// Save writes the current stage of an open attempt. An attempt that is already terminal,
// for example closed by the stale worker, is not overwritten and Save returns
// domain.ErrAttemptClosed. A transaction handle carried by the refused write is still
// attached to the closed row so the reconciler can verify the transfer.
func (r *AttemptRepository) Save(ctx context.Context, flow domain.BookingFlow) error {
	m := toDBModel(flow)
	tag, err := r.q.Exec(ctx, updateAttempt, updateArgs(m)...)
	if err != nil {
		return fmt.Errorf("failed to save attempt: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	if m.TxHandle != nil {
		if err := r.attachHandle(ctx, m.ID, *m.TxHandle); err != nil {
			return err
		}
	}
	return fmt.Errorf("attempt %s: %w", m.ID, domain.ErrAttemptClosed)
}

// CloseStale writes a terminal flow for an attempt only if nothing touched it since
// olderThan. It reports false when the attempt moved on or was already closed.
func (r *AttemptRepository) CloseStale(ctx context.Context, flow domain.BookingFlow, olderThan time.Time) (bool, error) {
	query := updateAttempt + ` AND updated_at < $11`

	m := toDBModel(flow)
	tag, err := r.q.Exec(ctx, query, append(updateArgs(m), olderThan)...)
	if err != nil {
		return false, fmt.Errorf("failed to close stale attempt: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *AttemptRepository) attachHandle(ctx context.Context, attemptID, handle string) error {
	query := `
		UPDATE booking_attempts SET
			tx_handle = $2,
			funds_transferred = TRUE,
			updated_at = NOW()
		WHERE id = $1 AND tx_handle IS NULL
	`
	if _, err := r.q.Exec(ctx, query, attemptID, handle); err != nil {
		return fmt.Errorf("failed to attach handle to closed attempt: %w", err)
	}
	return nil
}

func updateArgs(m AttemptModel) []any {
	return []any{
		m.ID,
		m.WalletAddress,
		m.PayeeAddress,
		m.Stage,
		m.TxHandle,
		m.Outcome,
		m.FailureCode,
		m.FailureReason,
		m.FundsTransferred,
		m.FinalizedAt,
	}
}

// FindByID loads one attempt. A missing attempt is reported as pgx.ErrNoRows.
func (r *AttemptRepository) FindByID(ctx context.Context, id string) (domain.BookingFlow, error) {
	query := `SELECT ` + attemptColumns + ` FROM booking_attempts WHERE id = $1`

	rows, err := r.q.Query(ctx, query, id)
	if err != nil {
		return domain.BookingFlow{}, fmt.Errorf("query attempt: %w", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, scanAttempt)
	if err != nil {
		return domain.BookingFlow{}, fmt.Errorf("attempt %s: %w", id, err)
	}
	return toDomainModel(m)
}

// FindUnreconciled returns terminal attempts with a transfer whose settlement is not
// yet final, oldest first.
func (r *AttemptRepository) FindUnreconciled(ctx context.Context, limit int) ([]domain.BookingFlow, error) {
	query := `SELECT ` + attemptColumns + `
		FROM booking_attempts
		WHERE tx_handle IS NOT NULL
		  AND stage IN ('COMPLETE', 'FAILED')
		  AND (settlement_status IS NULL OR settlement_status = 'PENDING')
		ORDER BY updated_at
		LIMIT $1
	`
	return r.collect(ctx, query, limit)
}

// FindStale returns non-terminal attempts not touched since olderThan.
func (r *AttemptRepository) FindStale(ctx context.Context, olderThan time.Time, limit int) ([]domain.BookingFlow, error) {
	query := `SELECT ` + attemptColumns + `
		FROM booking_attempts
		WHERE stage NOT IN ('COMPLETE', 'FAILED')
		  AND updated_at < $1
		ORDER BY updated_at
		LIMIT $2
	`
	return r.collect(ctx, query, olderThan, limit)
}

func (r *AttemptRepository) MarkSettlement(ctx context.Context, attemptID string, status domain.SettlementStatus) error {
	query := `UPDATE booking_attempts SET settlement_status = $2, updated_at = NOW() WHERE id = $1`

	if _, err := r.q.Exec(ctx, query, attemptID, string(status)); err != nil {
		return fmt.Errorf("failed to mark settlement: %w", err)
	}
	return nil
}

func (r *AttemptRepository) collect(ctx context.Context, query string, args ...any) ([]domain.BookingFlow, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	models, err := pgx.CollectRows(rows, scanAttempt)
	if err != nil {
		return nil, fmt.Errorf("scan attempts: %w", err)
	}

	flows := make([]domain.BookingFlow, 0, len(models))
	for _, m := range models {
		f, err := toDomainModel(m)
		if err != nil {
			return nil, err
		}
		flows = append(flows, f)
	}
	return flows, nil
}

func scanAttempt(row pgx.CollectableRow) (AttemptModel, error) {
	var m AttemptModel
	err := row.Scan(
		&m.ID, &m.WarehouseID, &m.WarehouseName, &m.Location, &m.UserID, &m.Price, &m.PaymentIdentifier,
		&m.WalletAddress, &m.PayeeAddress, &m.Stage, &m.TxHandle, &m.Outcome, &m.FailureCode, &m.FailureReason,
		&m.FundsTransferred, &m.SettlementStatus, &m.FinalizedAt, &m.StartedAt, &m.UpdatedAt,
	)
	return m, err
}
