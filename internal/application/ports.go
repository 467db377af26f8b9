package application

import (
	"context"
	"math/big"
	"time"

	"github.com/DanielPopoola/agrivault-booking/internal/domain"
)

// WarehouseReader is the port for reading listings from the warehouse API.
type WarehouseReader interface {
	ListWarehouses(ctx context.Context) ([]domain.Warehouse, error)
	GetWarehouse(ctx context.Context, id string) (*domain.Warehouse, error)
}

// BookingFinalizer asks the warehouse API to mark a warehouse booked against a
// transaction handle. A conflict is reported as an *UpstreamError with status 409.
type BookingFinalizer interface {
	FinalizeBooking(ctx context.Context, token, warehouseID string, handle domain.TransactionHandle) error
}

// Wallet is the port for the payer's signing wallet.
type Wallet interface {
	// ConnectedAddress returns the payer address, or "" when no wallet is connected.
	ConnectedAddress(ctx context.Context) string
	SendTransfer(ctx context.Context, to domain.NormalizedAddress, amount *big.Int) (domain.TransactionHandle, error)
}

type CacheInvalidator interface {
	InvalidateWarehouse(id string)
}

// AttemptRecorder persists booking attempts. Start fails with domain.ErrAttemptInProgress
// when another non-terminal attempt exists for the same warehouse. Save fails with
// domain.ErrAttemptClosed when the recorded attempt is already terminal.
type AttemptRecorder interface {
	Start(ctx context.Context, flow domain.BookingFlow) error
	Save(ctx context.Context, flow domain.BookingFlow) error
}

// AttemptLedger is the reconciler's view of recorded attempts.
type AttemptLedger interface {
	AttemptRecorder
	FindUnreconciled(ctx context.Context, limit int) ([]domain.BookingFlow, error)
	FindStale(ctx context.Context, olderThan time.Time, limit int) ([]domain.BookingFlow, error)
	CloseStale(ctx context.Context, flow domain.BookingFlow, olderThan time.Time) (bool, error)
	MarkSettlement(ctx context.Context, attemptID string, status domain.SettlementStatus) error
}

// SettlementVerifier checks a submitted transfer against the chain.
type SettlementVerifier interface {
	Confirm(ctx context.Context, handle domain.TransactionHandle, to domain.NormalizedAddress, amount *big.Int) (domain.SettlementStatus, error)
}

// BookingObserver receives flow events for metrics.
type BookingObserver interface {
	AttemptFinished(flow domain.BookingFlow, elapsed time.Duration)
	FinalizationObserved(outcome domain.FinalizationOutcome, elapsed time.Duration)
}
