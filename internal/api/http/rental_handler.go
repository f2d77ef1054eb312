package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rently-backend/internal/service"
)

type RentalHandler struct {
	rentals service.RentalService
}

func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

func (h *RentalHandler) Register(router *mux.Router) {
	router.HandleFunc("/api/tenants/{tenantId}/rentals", h.List).Methods("GET")
	router.HandleFunc("/api/rentals/{id}", h.Get).Methods("GET")
	router.HandleFunc("/api/rentals/{id}/complete", h.Complete).Methods("POST")
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := pathUUID(w, r, "tenantId")
	if !ok {
		return
	}
	rentals, err := h.rentals.List(r.Context(), tenantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := rentalID(w, r)
	if !ok {
		return
	}
	rental, err := h.rentals.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := rentalID(w, r)
	if !ok {
		return
	}
	rental, err := h.rentals.Complete(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func rentalID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid rental id"})
		return 0, false
	}
	return int32(id), true
}
