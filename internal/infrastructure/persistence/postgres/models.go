package postgres

import (
	"time"
)

// AttemptModel is one row of booking_attempts.
type AttemptModel struct {
	ID                string
	WarehouseID       string
	WarehouseName     string
	Location          string
	UserID            string
	Price             string
	PaymentIdentifier string
	WalletAddress     string
	PayeeAddress      string
	Stage             string
	TxHandle          *string
	Outcome           *string
	FailureCode       *string
	FailureReason     *string
	FundsTransferred  bool
	SettlementStatus  *string
	FinalizedAt       *time.Time
	StartedAt         time.Time
	UpdatedAt         time.Time
}
