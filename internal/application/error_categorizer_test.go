package application_test

import (
	"net/http"
	"testing"

	"github.com/DanielPopoola/agrivault-booking/internal/application"
	"github.com/DanielPopoola/agrivault-booking/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus_DomainCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"wallet not connected", domain.NewWalletNotConnectedError(), http.StatusServiceUnavailable},
		{"unauthenticated", domain.NewUnauthenticatedError(), http.StatusUnauthorized},
		{"attempt in progress", domain.NewAttemptInProgressError("wh-1"), http.StatusConflict},
		{"finalization error", domain.NewFinalizationError("wh-1", nil), http.StatusBadGateway},
		{"abandoned", domain.NewAbandonedError("att-1"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, application.ToHTTPStatus(tt.err))
			assert.Equal(t, domain.CodeOf(tt.err), application.ToErrorCode(tt.err))
		})
	}
}
