package handlers

import (
	"net/http"

	"github.com/DanielPopoola/agrivault-booking/internal/api"
	"github.com/DanielPopoola/agrivault-booking/internal/application"
	"github.com/DanielPopoola/agrivault-booking/internal/interfaces/rest"
)

// BookWarehouse runs one booking attempt. Requests refused before an attempt starts get
// the error envelope; a started attempt always answers with its terminal flow, and a
// failed one with the status of its failure code.
func (h *Handlers) BookWarehouse(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.FromRequest(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	flow, err := h.bookings.Book(r.Context(), session, r.PathValue("id"))
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	status := http.StatusCreated
	if flow.Failure != nil {
		status = application.StatusForCode(flow.Failure.Code)
		if status == 0 {
			status = http.StatusInternalServerError
		}
	}

	rest.WriteJSON(w, status, api.Response[api.Booking]{
		Success: flow.Failure == nil,
		Data:    rest.ToAPIBooking(flow, h.explorerTxURL),
	})
}
