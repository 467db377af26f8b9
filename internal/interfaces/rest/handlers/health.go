package handlers

import (
	"net/http"

	"github.com/DanielPopoola/agrivault-booking/internal/api"
	"github.com/DanielPopoola/agrivault-booking/internal/application"
	"github.com/DanielPopoola/agrivault-booking/internal/interfaces/rest"
)

type healthStatus struct {
	Status string `json:"status"`
}

func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		if err := h.health(r.Context()); err != nil {
			rest.WriteError(w, application.NewUnavailableError(err), h.logger)
			return
		}
	}
	rest.WriteJSON(w, http.StatusOK, api.Response[healthStatus]{
		Success: true,
		Data:    healthStatus{Status: "ok"},
	})
}
