package domain

import (
	"errors"
	"fmt"
)

// NewAbandonedError marks an attempt that stopped making progress without a terminal event.
func NewAbandonedError(attemptID string) *DomainError {
	return &DomainError{
		Code:    ErrCodeAbandoned,
		Message: fmt.Sprintf("booking attempt %s was abandoned", attemptID),
		Kind:    ErrAbandoned,
	}
}

// describeFailure builds the message shown to the user. When funds already moved the
// message says so and carries the handle, because the user needs it to reach support.
func describeFailure(code string, fundsTransferred bool, handle *TransactionHandle, cause error) string {
	if fundsTransferred {
		ref := ""
		if handle != nil {
			ref = fmt.Sprintf(" Quote transaction %s when contacting support.", *handle)
		}
		switch code {
		case ErrCodeAlreadyBooked:
			return "Your payment was sent, but this warehouse was booked by someone else in the meantime." + ref
		case ErrCodeUnauthenticated:
			return "Your payment was sent, but your session expired before the booking could be recorded." + ref
		default:
			return "Your payment was sent, but the booking could not be confirmed." + ref
		}
	}

	switch code {
	case ErrCodeWalletNotConnected:
		return "Please connect your wallet to book this warehouse."
	case ErrCodeUnauthenticated:
		return "Please log in to book this warehouse."
	case ErrCodeInvalidPaymentIdentifier:
		return "The owner's payment account for this warehouse is invalid. No payment was made."
	case ErrCodeInvalidPrice:
		return "The listed price for this warehouse cannot be paid. No payment was made."
	case ErrCodeTransactionRejected:
		if handle != nil {
			return fmt.Sprintf("The wallet did not confirm the payment, but it may still have been sent. Quote transaction %s when contacting support.", *handle)
		}
		var dErr *DomainError
		if errors.As(cause, &dErr) && dErr.Err != nil {
			return fmt.Sprintf("The wallet did not send the payment: %v. No funds were transferred.", dErr.Err)
		}
		return "The wallet did not send the payment. No funds were transferred."
	default:
		return "The booking was not completed. No payment was made."
	}
}
