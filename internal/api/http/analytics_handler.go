package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rently-backend/internal/service"
)

type AnalyticsHandler struct {
	analytics service.AnalyticsService
}

func NewAnalyticsHandler(analytics service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

func (h *AnalyticsHandler) Register(router *mux.Router) {
	router.HandleFunc("/api/tenants/{tenantId}/analytics/summary", h.Summary).Methods("GET")
	router.HandleFunc("/api/tenants/{tenantId}/analytics/trend", h.Trend).Methods("GET")
	router.HandleFunc("/api/tenants/{tenantId}/analytics/recent", h.Recent).Methods("GET")
}

func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := pathUUID(w, r, "tenantId")
	if !ok {
		return
	}
	summary, err := h.analytics.Summary(r.Context(), tenantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *AnalyticsHandler) Trend(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := pathUUID(w, r, "tenantId")
	if !ok {
		return
	}
	metric := r.URL.Query().Get("metric")
	if metric == "" {
		metric = "revenue"
	}
	points, err := h.analytics.Trend(r.Context(), tenantID, metric)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

func (h *AnalyticsHandler) Recent(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := pathUUID(w, r, "tenantId")
	if !ok {
		return
	}
	logs, err := h.analytics.Recent(r.Context(), tenantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}
