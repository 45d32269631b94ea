package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"go-notes-api/internal/middleware"
	"go-notes-api/internal/model"
	"go-notes-api/internal/service"
	"go-notes-api/internal/validate"
	"go-notes-api/pkg/apierror"
)

type NoteHandler struct {
	service   *service.NoteService
	validator *validate.Validator
}

func NewNoteHandler(service *service.NoteService, validator *validate.Validator) *NoteHandler {
	return &NoteHandler{service: service, validator: validator}
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, apierror.Unauthorized("Authentication required"))
		return
	}

	var payload model.CreateNoteRequest
	if !decodeJSON(w, r, &payload) {
		return
	}
	if err := h.validator.Struct(payload); err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.service.Create(r.Context(), user.ID, payload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

func (h *NoteHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, apierror.Unauthorized("Authentication required"))
		return
	}

	filter := model.NoteFilter{
		Title:   r.URL.Query().Get("title"),
		Content: r.URL.Query().Get("content"),
		Tags:    r.URL.Query().Get("tags"),
	}

	notes, err := h.service.FindAll(r.Context(), user.ID, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, notes)
}

// noteID rejects ids that cannot be note rows before they reach the
// database; id is a UUID column and anything else would surface as a
// driver error instead of a 404.
func noteID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if uuid.Validate(id) != nil {
		writeError(w, r, apierror.NotFound("Note with id "+id+" not found"))
		return "", false
	}
	return id, true
}

func (h *NoteHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, apierror.Unauthorized("Authentication required"))
		return
	}

	id, ok := noteID(w, r)
	if !ok {
		return
	}

	note, err := h.service.FindOne(r.Context(), id, user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, apierror.Unauthorized("Authentication required"))
		return
	}

	id, ok := noteID(w, r)
	if !ok {
		return
	}

	var payload model.UpdateNoteRequest
	if !decodeJSON(w, r, &payload) {
		return
	}
	if err := h.validator.Struct(payload); err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.service.Update(r.Context(), id, user.ID, payload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, apierror.Unauthorized("Authentication required"))
		return
	}

	id, ok := noteID(w, r)
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), id, user.ID); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, true)
}
