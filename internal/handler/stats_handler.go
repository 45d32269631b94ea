package handler

import (
	"net/http"

	"go-notes-api/internal/middleware"
	"go-notes-api/internal/service"
	"go-notes-api/pkg/apierror"
)

type StatsHandler struct {
	service *service.StatsService
}

func NewStatsHandler(service *service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, apierror.Unauthorized("Authentication required"))
		return
	}

	stats, err := h.service.ForUser(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
