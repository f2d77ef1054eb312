package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rently-backend/internal/domain"
	"rently-backend/internal/service"
)

type InventoryHandler struct {
	items service.InventoryService
}

func NewInventoryHandler(items service.InventoryService) *InventoryHandler {
	return &InventoryHandler{items: items}
}

func (h *InventoryHandler) Register(router *mux.Router) {
	router.HandleFunc("/api/tenants/{tenantId}/items", h.Create).Methods("POST")
	router.HandleFunc("/api/tenants/{tenantId}/items", h.List).Methods("GET")
	router.HandleFunc("/api/items/{id}", h.Get).Methods("GET")
	router.HandleFunc("/api/items/{id}", h.Update).Methods("PUT")
	router.HandleFunc("/api/items/{id}", h.Delete).Methods("DELETE")
}

type itemRequest struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Condition  string `json:"condition"`
	Status     string `json:"status"`
	PriceCents int64  `json:"price_cents"`
	ImageURL   string `json:"image_url"`
}

func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := pathUUID(w, r, "tenantId")
	if !ok {
		return
	}
	var req itemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item := &domain.InventoryItem{
		TenantID:   tenantID,
		Name:       req.Name,
		Category:   req.Category,
		Condition:  req.Condition,
		Status:     domain.ItemStatus(req.Status),
		PriceCents: req.PriceCents,
		ImageURL:   req.ImageURL,
	}
	if err := h.items.Create(r.Context(), item); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	item, err := h.items.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req itemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	existing, err := h.items.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	existing.Name = req.Name
	existing.Category = req.Category
	existing.Condition = req.Condition
	existing.PriceCents = req.PriceCents
	existing.ImageURL = req.ImageURL
	if req.Status != "" {
		existing.Status = domain.ItemStatus(req.Status)
	}
	if err := h.items.Update(r.Context(), existing); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, existing)
}

func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.items.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := pathUUID(w, r, "tenantId")
	if !ok {
		return
	}
	items, err := h.items.List(r.Context(), tenantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
