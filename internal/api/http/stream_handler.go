package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"rently-backend/internal/fanout"
	"rently-backend/internal/logger"
)

// StreamHandler bridges the in-process fanout hub to server-sent events.
// Each connection joins its tenant's group for the lifetime of the request.
type StreamHandler struct {
	hub *fanout.Hub
}

func NewStreamHandler(hub *fanout.Hub) *StreamHandler {
	return &StreamHandler{hub: hub}
}

func (h *StreamHandler) Register(router *mux.Router) {
	router.HandleFunc("/api/stream/{tenantId}", h.Stream).Methods("GET")
}

func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := pathUUID(w, r, "tenantId")
	if !ok {
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "streaming unsupported"})
		return
	}

	connID := uuid.New().String()
	events := h.hub.Subscribe(tenantID.String(), connID)
	defer h.hub.Unsubscribe(tenantID.String(), connID)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	logger.Debug("Stream opened", "tenant_id", tenantID, "conn_id", connID)

	keepalive := time.NewTicker(25 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case <-r.Context().Done():
			logger.Debug("Stream closed", "tenant_id", tenantID, "conn_id", connID)
			return
		case <-keepalive.C:
			fmt.Fprint(w, ": keepalive\n\n")
			flusher.Flush()
		case event, open := <-events:
			if !open {
				return
			}
			data, err := json.Marshal(event.Payload)
			if err != nil {
				logger.Warn("Failed to marshal stream event", "event", event.Name, "error", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, data)
			flusher.Flush()
		}
	}
}
