package domain

import (
	"errors"
	"fmt"
)

// Booking failure kinds. Every DomainError unwraps to exactly one of these.
var (
	ErrWalletNotConnected       = errors.New("wallet not connected")
	ErrInvalidPaymentIdentifier = errors.New("invalid payment identifier")
	ErrInvalidPrice             = errors.New("invalid price")
	ErrTransactionRejected      = errors.New("transaction rejected")
	ErrUnauthenticated          = errors.New("unauthenticated")
	ErrAlreadyBooked            = errors.New("warehouse already booked")
	ErrFinalization             = errors.New("booking finalization failed")
	ErrMissingTransactionHandle = errors.New("transaction handle is required")
	ErrAttemptInProgress        = errors.New("booking attempt already in progress")
	ErrWarehouseUnavailable     = errors.New("warehouse is not available for booking")
	ErrWarehouseNotFound        = errors.New("warehouse not found")
	ErrInvalidTransition        = errors.New("invalid booking flow transition")
	ErrHandleMismatch           = errors.New("transaction handle does not match attempt")
	ErrAbandoned                = errors.New("booking attempt abandoned")
	ErrAttemptClosed            = errors.New("booking attempt already closed")
)

const (
	ErrCodeWalletNotConnected       = "WALLET_NOT_CONNECTED"
	ErrCodeInvalidPaymentIdentifier = "INVALID_PAYMENT_IDENTIFIER"
	ErrCodeInvalidPrice             = "INVALID_PRICE"
	ErrCodeTransactionRejected      = "TRANSACTION_REJECTED"
	ErrCodeUnauthenticated          = "UNAUTHENTICATED"
	ErrCodeAlreadyBooked            = "ALREADY_BOOKED"
	ErrCodeFinalizationError        = "FINALIZATION_ERROR"
	ErrCodeAttemptInProgress        = "ATTEMPT_IN_PROGRESS"
	ErrCodeWarehouseUnavailable     = "WAREHOUSE_UNAVAILABLE"
	ErrCodeWarehouseNotFound        = "WAREHOUSE_NOT_FOUND"
	ErrCodeInvalidTransition        = "INVALID_TRANSITION"
	ErrCodeAbandoned                = "ABANDONED"
)

// DomainError represents a booking failure. Kind is one of the sentinel errors above,
// Err is the underlying cause (provider message, transport error) when there is one.
type DomainError struct {
	Code    string
	Message string
	Kind    error
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is/As
func (e *DomainError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// InvalidPaymentIdentifierError carries the offending raw identifier.
type InvalidPaymentIdentifierError struct {
	Raw    string
	Reason string
}

func (e *InvalidPaymentIdentifierError) Error() string {
	return fmt.Sprintf("invalid payment identifier %q: %s", e.Raw, e.Reason)
}

func (e *InvalidPaymentIdentifierError) Unwrap() error {
	return ErrInvalidPaymentIdentifier
}

// UnconfirmedTransferError reports a signed transfer whose broadcast outcome is unknown,
// for example because the caller went away while the node was answering.
type UnconfirmedTransferError struct {
	Handle TransactionHandle
	Err    error
}

func (e *UnconfirmedTransferError) Error() string {
	return fmt.Sprintf("transfer %s may have been broadcast: %v", e.Handle, e.Err)
}

func (e *UnconfirmedTransferError) Unwrap() error {
	return e.Err
}

func NewWalletNotConnectedError() *DomainError {
	return &DomainError{
		Code:    ErrCodeWalletNotConnected,
		Message: "no wallet is connected",
		Kind:    ErrWalletNotConnected,
	}
}

func NewInvalidPriceError(reason string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidPrice,
		Message: fmt.Sprintf("invalid price: %s", reason),
		Kind:    ErrInvalidPrice,
	}
}

func NewTransactionRejectedError(cause error) *DomainError {
	return &DomainError{
		Code:    ErrCodeTransactionRejected,
		Message: "wallet did not submit the transfer",
		Kind:    ErrTransactionRejected,
		Err:     cause,
	}
}

func NewUnauthenticatedError() *DomainError {
	return &DomainError{
		Code:    ErrCodeUnauthenticated,
		Message: "a session token is required to book a warehouse",
		Kind:    ErrUnauthenticated,
	}
}

func NewAlreadyBookedError(warehouseID string, cause error) *DomainError {
	return &DomainError{
		Code:    ErrCodeAlreadyBooked,
		Message: fmt.Sprintf("warehouse %s was booked by another user", warehouseID),
		Kind:    ErrAlreadyBooked,
		Err:     cause,
	}
}

func NewFinalizationError(warehouseID string, cause error) *DomainError {
	return &DomainError{
		Code:    ErrCodeFinalizationError,
		Message: fmt.Sprintf("could not confirm booking of warehouse %s", warehouseID),
		Kind:    ErrFinalization,
		Err:     cause,
	}
}

func NewAttemptInProgressError(warehouseID string) *DomainError {
	return &DomainError{
		Code:    ErrCodeAttemptInProgress,
		Message: fmt.Sprintf("a booking attempt for warehouse %s is already in progress", warehouseID),
		Kind:    ErrAttemptInProgress,
	}
}

func NewWarehouseUnavailableError(warehouseID string) *DomainError {
	return &DomainError{
		Code:    ErrCodeWarehouseUnavailable,
		Message: fmt.Sprintf("warehouse %s is already booked", warehouseID),
		Kind:    ErrWarehouseUnavailable,
	}
}

func NewWarehouseNotFoundError(warehouseID string) *DomainError {
	return &DomainError{
		Code:    ErrCodeWarehouseNotFound,
		Message: fmt.Sprintf("warehouse with ID %s not found", warehouseID),
		Kind:    ErrWarehouseNotFound,
	}
}

func NewInvalidTransitionError(from Stage, event string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidTransition,
		Message: fmt.Sprintf("cannot apply %s in stage %s", event, from),
		Kind:    ErrInvalidTransition,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// CodeOf returns the DomainError code of err, or an empty string.
func CodeOf(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	if errors.Is(err, ErrInvalidPaymentIdentifier) {
		return ErrCodeInvalidPaymentIdentifier
	}
	return ""
}
