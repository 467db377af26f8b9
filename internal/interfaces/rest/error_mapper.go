package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/agrivault-booking/internal/api"
	"github.com/DanielPopoola/agrivault-booking/internal/application"
)

// WriteError maps application errors to HTTP responses
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode := application.ToHTTPStatus(err)
	errorCode := application.ToErrorCode(err)

	if statusCode >= http.StatusInternalServerError {
		logger.Error("request failed", "code", errorCode, "status", statusCode, "error", err)
	}

	WriteJSON(w, statusCode, api.ErrorResponse{
		Success: false,
		Error: api.ErrorDetail{
			Code:    errorCode,
			Message: err.Error(),
		},
	})
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
