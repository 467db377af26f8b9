package domain

import (
	"errors"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Stage is the position of a booking attempt in its flow.
type Stage string

const (
	StageIdle              Stage = "IDLE"
	StageCheckingWallet    Stage = "CHECKING_WALLET"
	StageResolvingAddress  Stage = "RESOLVING_ADDRESS"
	StageAwaitingSignature Stage = "AWAITING_WALLET_SIGNATURE"
	StageFinalizing        Stage = "FINALIZING"
	StageComplete          Stage = "COMPLETE"
	StageFailed            Stage = "FAILED"
)

// FinalizationOutcome is the backend's answer to a booking transition request.
type FinalizationOutcome string

const (
	OutcomeFinalized         FinalizationOutcome = "FINALIZED"
	OutcomeAlreadyBooked     FinalizationOutcome = "ALREADY_BOOKED"
	OutcomeFinalizationError FinalizationOutcome = "FINALIZATION_ERROR"
)

var allowedStages = map[Stage][]Stage{
	StageIdle:              {StageCheckingWallet, StageFailed},
	StageCheckingWallet:    {StageResolvingAddress, StageFailed},
	StageResolvingAddress:  {StageAwaitingSignature, StageFailed},
	StageAwaitingSignature: {StageFinalizing, StageFailed},
	StageFinalizing:        {StageComplete, StageFailed},
	StageComplete:          {},
	StageFailed:            {},
}

// BookingAttempt is one user-initiated run through the booking flow.
type BookingAttempt struct {
	ID                string
	WarehouseID       string
	UserID            string
	Price             decimal.Decimal
	PaymentIdentifier PaymentIdentifier
	WalletAddress     string
	Payee             NormalizedAddress
	Handle            *TransactionHandle
	Outcome           *FinalizationOutcome
	StartedAt         time.Time
}

// Failure describes why an attempt ended in StageFailed.
type Failure struct {
	Code             string
	Reason           string
	FundsTransferred bool
	Err              error
}

// Receipt is produced only when both the transfer and the finalization succeeded.
type Receipt struct {
	AttemptID         string
	WarehouseID       string
	WarehouseName     string
	Location          string
	Amount            decimal.Decimal
	Payee             NormalizedAddress
	TransactionHandle TransactionHandle
	FinalizedAt       time.Time
}

// BookingFlow is the state of one booking attempt. Transition methods never mutate the
// receiver; they return the next value, or the unchanged value and an error when the
// event is not valid in the current stage.
type BookingFlow struct {
	Stage     Stage
	Attempt   BookingAttempt
	Warehouse Warehouse
	Failure   *Failure
	Receipt   *Receipt
}

// NewBookingFlow creates an idle flow for the given warehouse snapshot.
func NewBookingFlow(attemptID string, w Warehouse, userID string, now time.Time) BookingFlow {
	return BookingFlow{
		Stage: StageIdle,
		Attempt: BookingAttempt{
			ID:                attemptID,
			WarehouseID:       w.ID,
			UserID:            userID,
			Price:             w.Price,
			PaymentIdentifier: w.PaymentIdentifier,
			StartedAt:         now,
		},
		Warehouse: w,
	}
}

func (f BookingFlow) IsTerminal() bool {
	return f.Stage == StageComplete || f.Stage == StageFailed
}

// FundsTransferred reports whether a transaction handle is recorded for this attempt.
func (f BookingFlow) FundsTransferred() bool {
	return f.Attempt.Handle != nil
}

// Begin starts the attempt in response to the user's booking request.
func (f BookingFlow) Begin() (BookingFlow, error) {
	return f.moveTo(StageCheckingWallet, "Begin")
}

// WalletChecked records the connected wallet address. An empty address fails the attempt.
func (f BookingFlow) WalletChecked(address string) (BookingFlow, error) {
	if f.Stage != StageCheckingWallet {
		return f, NewInvalidTransitionError(f.Stage, "WalletChecked")
	}
	if address == "" {
		return f.fail(NewWalletNotConnectedError())
	}
	next, err := f.moveTo(StageResolvingAddress, "WalletChecked")
	if err != nil {
		return f, err
	}
	next.Attempt.WalletAddress = address
	return next, nil
}

// SessionMissing fails the attempt after the wallet check and before any payment when
// the caller has no session token.
func (f BookingFlow) SessionMissing() (BookingFlow, error) {
	if f.Stage != StageResolvingAddress {
		return f, NewInvalidTransitionError(f.Stage, "SessionMissing")
	}
	return f.fail(NewUnauthenticatedError())
}

// ResolveAddress normalizes the warehouse's payment identifier into the payee address.
func (f BookingFlow) ResolveAddress() (BookingFlow, error) {
	if f.Stage != StageResolvingAddress {
		return f, NewInvalidTransitionError(f.Stage, "ResolveAddress")
	}
	payee, err := NormalizePaymentIdentifier(string(f.Attempt.PaymentIdentifier))
	if err != nil {
		return f.fail(err)
	}
	next, err := f.moveTo(StageAwaitingSignature, "ResolveAddress")
	if err != nil {
		return f, err
	}
	next.Attempt.Payee = payee
	return next, nil
}

// PaymentSubmitted records the wallet's transaction handle and moves to finalization.
func (f BookingFlow) PaymentSubmitted(handle TransactionHandle) (BookingFlow, error) {
	if f.Stage != StageAwaitingSignature {
		return f, NewInvalidTransitionError(f.Stage, "PaymentSubmitted")
	}
	if handle == "" {
		return f, ErrMissingTransactionHandle
	}
	next, err := f.moveTo(StageFinalizing, "PaymentSubmitted")
	if err != nil {
		return f, err
	}
	next.Attempt.Handle = &handle
	return next, nil
}

// PaymentFailed ends the attempt after the wallet declined or errored. A transfer that
// was signed but whose broadcast is unconfirmed keeps its handle so it can be reconciled.
func (f BookingFlow) PaymentFailed(cause error) (BookingFlow, error) {
	if f.Stage != StageAwaitingSignature {
		return f, NewInvalidTransitionError(f.Stage, "PaymentFailed")
	}
	if CodeOf(cause) == "" {
		cause = NewTransactionRejectedError(cause)
	}
	var unconfirmed *UnconfirmedTransferError
	if errors.As(cause, &unconfirmed) && unconfirmed.Handle != "" {
		handle := unconfirmed.Handle
		f.Attempt.Handle = &handle
	}
	return f.fail(cause)
}

// FinalizationSettled applies the backend's answer. The handle must be the one the
// wallet returned for this attempt; only OutcomeFinalized produces a Receipt.
func (f BookingFlow) FinalizationSettled(outcome FinalizationOutcome, handle TransactionHandle, cause error, at time.Time) (BookingFlow, error) {
	if f.Stage != StageFinalizing {
		return f, NewInvalidTransitionError(f.Stage, "FinalizationSettled")
	}
	if f.Attempt.Handle == nil || *f.Attempt.Handle != handle {
		return f, ErrHandleMismatch
	}

	f.Attempt.Outcome = &outcome

	switch {
	case outcome == OutcomeFinalized && cause == nil:
		next, err := f.moveTo(StageComplete, "FinalizationSettled")
		if err != nil {
			return f, err
		}
		next.Receipt = &Receipt{
			AttemptID:         f.Attempt.ID,
			WarehouseID:       f.Warehouse.ID,
			WarehouseName:     f.Warehouse.Name,
			Location:          f.Warehouse.Location,
			Amount:            f.Attempt.Price,
			Payee:             f.Attempt.Payee,
			TransactionHandle: handle,
			FinalizedAt:       at,
		}
		return next, nil
	case outcome == OutcomeAlreadyBooked:
		if cause == nil || CodeOf(cause) != ErrCodeAlreadyBooked {
			cause = NewAlreadyBookedError(f.Attempt.WarehouseID, cause)
		}
	default:
		if CodeOf(cause) == "" {
			cause = NewFinalizationError(f.Attempt.WarehouseID, cause)
		}
	}
	return f.fail(cause)
}

// Abandon fails a non-terminal attempt for a reason outside the normal events, such as
// a process restart found by the reconciler.
func (f BookingFlow) Abandon(cause error) (BookingFlow, error) {
	if f.IsTerminal() {
		return f, NewInvalidTransitionError(f.Stage, "Abandon")
	}
	return f.fail(cause)
}

func (f BookingFlow) moveTo(target Stage, event string) (BookingFlow, error) {
	if !slices.Contains(allowedStages[f.Stage], target) {
		return f, NewInvalidTransitionError(f.Stage, event)
	}
	f.Stage = target
	return f, nil
}

func (f BookingFlow) fail(cause error) (BookingFlow, error) {
	funds := f.Stage == StageFinalizing
	next, err := f.moveTo(StageFailed, "Fail")
	if err != nil {
		return f, err
	}

	code := CodeOf(cause)
	if code == "" {
		code = ErrCodeAbandoned
	}
	next.Failure = &Failure{
		Code:             code,
		Reason:           describeFailure(code, funds, next.Attempt.Handle, cause),
		FundsTransferred: funds,
		Err:              cause,
	}
	return next, nil
}
