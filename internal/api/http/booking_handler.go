package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"rently-backend/internal/domain"
	"rently-backend/internal/service"
)

// BookingHandler exposes the booking lifecycle over REST
type BookingHandler struct {
	bookings service.BookingService
}

func NewBookingHandler(bookings service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

func (h *BookingHandler) Register(router *mux.Router) {
	router.HandleFunc("/api/tenants/{tenantId}/bookings", h.Create).Methods("POST")
	router.HandleFunc("/api/tenants/{tenantId}/bookings", h.List).Methods("GET")
	router.HandleFunc("/api/bookings/{id}", h.Get).Methods("GET")
	router.HandleFunc("/api/bookings/{id}", h.Update).Methods("PUT")
	router.HandleFunc("/api/bookings/{id}", h.Delete).Methods("DELETE")
}

type createBookingRequest struct {
	ItemID        uuid.UUID `json:"item_id"`
	CustomerEmail string    `json:"customer_email"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
}

type createBookingResponse struct {
	Booking *domain.Booking `json:"booking"`
	Rental  *domain.Rental  `json:"rental"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := pathUUID(w, r, "tenantId")
	if !ok {
		return
	}
	var req createBookingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	booking, rental, err := h.bookings.Create(r.Context(), tenantID, req.ItemID, req.CustomerEmail, req.StartDate, req.EndDate)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, createBookingResponse{Booking: booking, Rental: rental})
}

type updateBookingRequest struct {
	CustomerName  *string    `json:"customer_name"`
	CustomerEmail *string    `json:"customer_email"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Status        *string    `json:"status"`
}

func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateBookingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	upd := service.BookingUpdate{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	}
	if req.Status != nil {
		status := domain.BookingStatus(*req.Status)
		switch status {
		case domain.BookingStatusPending, domain.BookingStatusReserved, domain.BookingStatusActive,
			domain.BookingStatusCompleted, domain.BookingStatusCancelled:
			upd.Status = &status
		default:
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid booking status " + strconv.Quote(*req.Status)})
			return
		}
	}

	booking, err := h.bookings.Update(r.Context(), id, upd)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if _, err := h.bookings.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	booking, err := h.bookings.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := pathUUID(w, r, "tenantId")
	if !ok {
		return
	}
	bookings, err := h.bookings.List(r.Context(), tenantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}
