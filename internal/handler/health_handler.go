package handler

import (
	"context"
	"net/http"

	"go-notes-api/pkg/apierror"
)

// HealthChecker is the slice of database.DB the health endpoint needs.
type HealthChecker interface {
	Health(ctx context.Context) error
}

type HealthHandler struct {
	db HealthChecker
}

func NewHealthHandler(db HealthChecker) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check reports 200 ok while the database answers pings.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Health(r.Context()); err != nil {
		writeError(w, r, apierror.New("SERVICE_UNAVAILABLE", "Database unavailable", http.StatusServiceUnavailable))
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
