package httpx

import (
	"database/sql"
	"net/http"
)

// HealthHandlers provides liveness and readiness endpoints.
type HealthHandlers struct {
	DB *sql.DB
}

// Healthz reports process liveness and database reachability.
func (h *HealthHandlers) Healthz(w http.ResponseWriter, r *http.Request) {
	if h.DB != nil {
		if err := h.DB.PingContext(r.Context()); err != nil {
			WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
