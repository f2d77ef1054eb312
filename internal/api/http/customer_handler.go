package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rently-backend/internal/domain"
	"rently-backend/internal/service"
)

type CustomerHandler struct {
	customers service.CustomerService
}

func NewCustomerHandler(customers service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

func (h *CustomerHandler) Register(router *mux.Router) {
	router.HandleFunc("/api/tenants/{tenantId}/customers", h.Create).Methods("POST")
	router.HandleFunc("/api/tenants/{tenantId}/customers", h.List).Methods("GET")
	router.HandleFunc("/api/customers/{id}", h.Get).Methods("GET")
	router.HandleFunc("/api/customers/{id}", h.Update).Methods("PUT")
	router.HandleFunc("/api/customers/{id}", h.Delete).Methods("DELETE")
}

type customerRequest struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	IDDocumentURL string `json:"id_document_url"`
	HasUnpaidDues bool   `json:"has_unpaid_dues"`
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := pathUUID(w, r, "tenantId")
	if !ok {
		return
	}
	var req customerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	customer := &domain.Customer{
		TenantID:      tenantID,
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		IDDocumentURL: req.IDDocumentURL,
		HasUnpaidDues: req.HasUnpaidDues,
	}
	if err := h.customers.Create(r.Context(), customer); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	customer, err := h.customers.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req customerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	existing, err := h.customers.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	existing.FullName = req.FullName
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Address = req.Address
	existing.IDDocumentURL = req.IDDocumentURL
	existing.HasUnpaidDues = req.HasUnpaidDues
	if err := h.customers.Update(r.Context(), existing); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, existing)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.customers.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := pathUUID(w, r, "tenantId")
	if !ok {
		return
	}
	customers, err := h.customers.List(r.Context(), tenantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}
