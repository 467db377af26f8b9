package handlers

import (
	"net/http"
	"time"

	"github.com/DanielPopoola/agrivault-booking/internal/interfaces/rest/middleware"
)

// Instrumenter wraps a route handler, typically to record metrics under the pattern.
type Instrumenter func(route string, next http.Handler) http.Handler

// Register mounts the routes on mux. Read routes are bounded by readTimeout; the booking
// route is not.
func (h *Handlers) Register(mux *http.ServeMux, readTimeout time.Duration, instrument Instrumenter) {
	if instrument == nil {
		instrument = func(_ string, next http.Handler) http.Handler { return next }
	}
	bounded := middleware.Timeout(readTimeout)

	routes := []struct {
		pattern string
		handler http.Handler
	}{
		{"GET /warehouses", bounded(http.HandlerFunc(h.ListWarehouses))},
		{"GET /warehouses/{id}", bounded(http.HandlerFunc(h.GetWarehouse))},
		{"POST /warehouses/{id}/bookings", http.HandlerFunc(h.BookWarehouse)},
		{"GET /healthz", bounded(http.HandlerFunc(h.Healthz))},
	}

	for _, rt := range routes {
		mux.Handle(rt.pattern, instrument(rt.pattern, rt.handler))
	}
}
