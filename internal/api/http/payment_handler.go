package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rently-backend/internal/domain"
	"rently-backend/internal/service"
)

type PaymentHandler struct {
	payments service.PaymentService
}

func NewPaymentHandler(payments service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

func (h *PaymentHandler) Register(router *mux.Router) {
	router.HandleFunc("/api/tenants/{tenantId}/payments", h.Create).Methods("POST")
	router.HandleFunc("/api/tenants/{tenantId}/payments", h.List).Methods("GET")
	router.HandleFunc("/api/payments/{id}", h.Update).Methods("PUT")
	router.HandleFunc("/api/payments/{id}", h.Delete).Methods("DELETE")
}

type createPaymentRequest struct {
	RentalID    int32  `json:"rental_id"`
	AmountCents int64  `json:"amount_cents"`
	Method      string `json:"method"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
	InvoiceURL  string `json:"invoice_url"`
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := pathUUID(w, r, "tenantId")
	if !ok {
		return
	}
	var req createPaymentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	payment := &domain.Payment{
		TenantID:    tenantID,
		RentalID:    req.RentalID,
		AmountCents: req.AmountCents,
		Method:      req.Method,
		Status:      domain.PaymentStatus(req.Status),
		Notes:       req.Notes,
		InvoiceURL:  req.InvoiceURL,
	}
	created, err := h.payments.Create(r.Context(), payment)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type updatePaymentRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updatePaymentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	payment, err := h.payments.Update(r.Context(), id, req.AmountCents, domain.PaymentStatus(req.Status), req.Notes)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.payments.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := pathUUID(w, r, "tenantId")
	if !ok {
		return
	}
	payments, err := h.payments.List(r.Context(), tenantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}
