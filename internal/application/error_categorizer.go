package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/agrivault-booking/internal/domain"
)

// ErrorCategory represents the nature of an error for retry logic
type ErrorCategory string

const (
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryPermanent      ErrorCategory = "PERMANENT"
	CategoryBusinessRule   ErrorCategory = "BUSINESS_RULE"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines error category for retry and logging purposes
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.Canceled) {
		return CategoryPermanent
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryTransient
	}

	if domain.CodeOf(err) != "" {
		switch domain.CodeOf(err) {
		case domain.ErrCodeWarehouseNotFound, domain.ErrCodeInvalidPaymentIdentifier, domain.ErrCodeInvalidPrice:
			return CategoryClientError
		default:
			return CategoryBusinessRule
		}
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeInvalidInput:
			return CategoryClientError
		case ErrCodeInternal:
			return CategoryInfrastructure
		case ErrCodeTimeout, ErrCodeUpstream, ErrCodeUnavailable:
			return CategoryTransient
		}
	}

	if upErr, ok := IsUpstreamError(err); ok {
		if upErr.IsRetryable() {
			return CategoryTransient
		}
		if upErr.StatusCode == http.StatusNotFound {
			return CategoryClientError
		}
		return CategoryPermanent
	}

	// network errors and anything unrecognised
	return CategoryTransient
}

// IsRetryable returns true if the error category suggests retry
func IsRetryable(err error) bool {
	category := CategorizeError(err)
	return category == CategoryTransient || category == CategoryInfrastructure
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	if status := StatusForCode(domain.CodeOf(err)); status != 0 {
		return status
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}

	if upErr, ok := IsUpstreamError(err); ok {
		if upErr.StatusCode == http.StatusNotFound {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	}

	// Default to 500
	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	if code := domain.CodeOf(err); code != "" {
		return code
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrCodeTimeout
	}

	if _, ok := IsUpstreamError(err); ok {
		return ErrCodeUpstream
	}

	return ErrCodeInternal
}

// StatusForCode maps a domain error code to its HTTP status, or 0 for an unknown code.
// Failed booking flows are answered with the status of their failure code.
func StatusForCode(code string) int {
	switch code {
	case domain.ErrCodeWalletNotConnected:
		return http.StatusServiceUnavailable
	case domain.ErrCodeInvalidPaymentIdentifier, domain.ErrCodeInvalidPrice:
		return http.StatusUnprocessableEntity
	case domain.ErrCodeTransactionRejected:
		return http.StatusPaymentRequired
	case domain.ErrCodeUnauthenticated:
		return http.StatusUnauthorized
	case domain.ErrCodeAlreadyBooked,
		domain.ErrCodeAttemptInProgress,
		domain.ErrCodeWarehouseUnavailable,
		domain.ErrCodeInvalidTransition:
		return http.StatusConflict
	case domain.ErrCodeWarehouseNotFound:
		return http.StatusNotFound
	case domain.ErrCodeFinalizationError:
		return http.StatusBadGateway
	case domain.ErrCodeAbandoned:
		return http.StatusInternalServerError
	}
	return 0
}
