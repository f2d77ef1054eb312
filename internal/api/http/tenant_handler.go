package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rently-backend/internal/domain"
	"rently-backend/internal/service"
)

type TenantHandler struct {
	tenants service.TenantService
}

func NewTenantHandler(tenants service.TenantService) *TenantHandler {
	return &TenantHandler{tenants: tenants}
}

func (h *TenantHandler) Register(router *mux.Router) {
	router.HandleFunc("/api/tenants", h.Create).Methods("POST")
	router.HandleFunc("/api/tenants/{id}", h.Get).Methods("GET")
	router.HandleFunc("/api/tenants/{id}", h.Update).Methods("PUT")
}

type tenantRequest struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	LogoURL      string `json:"logo_url"`
	ThemeColor   string `json:"theme_color"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
}

func (h *TenantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req tenantRequest
	if !decodeBody(w, r, &req) {
		return
	}

	tenant := &domain.Tenant{
		Name:         req.Name,
		Category:     req.Category,
		LogoURL:      req.LogoURL,
		ThemeColor:   req.ThemeColor,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	}
	if err := h.tenants.Register(r.Context(), tenant); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tenant)
}

func (h *TenantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	tenant, err := h.tenants.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tenant)
}

func (h *TenantHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req tenantRequest
	if !decodeBody(w, r, &req) {
		return
	}

	existing, err := h.tenants.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	existing.Name = req.Name
	existing.Category = req.Category
	existing.LogoURL = req.LogoURL
	existing.ThemeColor = req.ThemeColor
	existing.ContactEmail = req.ContactEmail
	existing.ContactPhone = req.ContactPhone
	if err := h.tenants.Update(r.Context(), existing); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, existing)
}
