package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rently-backend/internal/service"
)

type AlertHandler struct {
	alerts service.AlertService
}

func NewAlertHandler(alerts service.AlertService) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

func (h *AlertHandler) Register(router *mux.Router) {
	router.HandleFunc("/api/tenants/{tenantId}/alerts", h.Send).Methods("POST")
	router.HandleFunc("/api/tenants/{tenantId}/alerts", h.List).Methods("GET")
	router.HandleFunc("/api/tenants/{tenantId}/alerts", h.Clear).Methods("DELETE")
	router.HandleFunc("/api/alerts/{id}/read", h.MarkAsRead).Methods("PUT")
}

type sendAlertRequest struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Send raises a manual alert for the tenant, persisted and pushed like any
// engine-raised one.
func (h *AlertHandler) Send(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := pathUUID(w, r, "tenantId")
	if !ok {
		return
	}
	var req sendAlertRequest
	if !decodeBody(w, r, &req) {
		return
	}

	alert, err := h.alerts.Raise(r.Context(), tenantID, req.Type, req.Message)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, alert)
}

func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := pathUUID(w, r, "tenantId")
	if !ok {
		return
	}
	alerts, err := h.alerts.List(r.Context(), tenantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

func (h *AlertHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.alerts.MarkAsRead(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type clearAlertsResponse struct {
	Deleted int64 `json:"deleted"`
}

func (h *AlertHandler) Clear(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := pathUUID(w, r, "tenantId")
	if !ok {
		return
	}
	deleted, err := h.alerts.Clear(r.Context(), tenantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clearAlertsResponse{Deleted: deleted})
}
