package handler

import (
	"context"
	"net/http"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports process and database liveness
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Root handles GET / - the liveness string the frontend pings
func Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Next Hire Server is Running!!"))
}

// Health handles GET /health - JSON health check for probes. The process
// answers 200 even when the store is down, since the server deliberately
// keeps serving in that state; the body says which.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok", "database": "up"}
	if err := h.db.Ping(r.Context()); err != nil {
		status["database"] = "down"
	}
	WriteJSON(w, http.StatusOK, status)
}
