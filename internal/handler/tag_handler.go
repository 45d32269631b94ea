package handler

import (
	"net/http"

	"go-notes-api/internal/middleware"
	"go-notes-api/internal/service"
	"go-notes-api/pkg/apierror"
)

type TagHandler struct {
	service *service.TagService
}

func NewTagHandler(service *service.TagService) *TagHandler {
	return &TagHandler{service: service}
}

func (h *TagHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, apierror.Unauthorized("Authentication required"))
		return
	}

	tags, err := h.service.FindAllByUser(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tags)
}
