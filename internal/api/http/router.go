package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"rently-backend/internal/logger"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Tenant    *TenantHandler
	Inventory *InventoryHandler
	Customer  *CustomerHandler
	Booking   *BookingHandler
	Rental    *RentalHandler
	Payment   *PaymentHandler
	Analytics *AnalyticsHandler
	Alert     *AlertHandler
	Stream    *StreamHandler
}

// NewRouter builds the REST router with request logging and a health probe.
func NewRouter(h *Handlers) *mux.Router {
	router := mux.NewRouter()
	router.Use(requestLogging)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	h.Tenant.Register(router)
	h.Inventory.Register(router)
	h.Customer.Register(router)
	h.Booking.Register(router)
	h.Rental.Register(router)
	h.Payment.Register(router)
	h.Analytics.Register(router)
	h.Alert.Register(router)
	h.Stream.Register(router)

	return router
}

func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("Request handled", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
