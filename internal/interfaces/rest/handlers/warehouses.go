package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/DanielPopoola/agrivault-booking/internal/api"
	"github.com/DanielPopoola/agrivault-booking/internal/application"
	"github.com/DanielPopoola/agrivault-booking/internal/interfaces/rest"
)

func (h *Handlers) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	onlyAvailable := false
	if raw := r.URL.Query().Get("available"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			rest.WriteError(w, application.NewInvalidInputError(fmt.Errorf("available: %w", err)), h.logger)
			return
		}
		onlyAvailable = v
	}

	warehouses, err := h.warehouses.List(r.Context(), onlyAvailable)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, api.Response[[]api.Warehouse]{
		Success: true,
		Data:    rest.ToAPIWarehouses(warehouses),
	})
}

func (h *Handlers) GetWarehouse(w http.ResponseWriter, r *http.Request) {
	warehouse, err := h.warehouses.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, api.Response[api.Warehouse]{
		Success: true,
		Data:    rest.ToAPIWarehouse(*warehouse),
	})
}
