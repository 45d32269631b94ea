package handler

import (
	"net/http"
	"strings"

	"go-notes-api/internal/middleware"
	"go-notes-api/internal/model"
	"go-notes-api/internal/service"
	"go-notes-api/internal/validate"
	"go-notes-api/pkg/apierror"
)

type AuthHandler struct {
	service   *service.AuthService
	validator *validate.Validator
}

func NewAuthHandler(service *service.AuthService, validator *validate.Validator) *AuthHandler {
	return &AuthHandler{service: service, validator: validator}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload model.RegisterRequest
	if !decodeJSON(w, r, &payload) {
		return
	}
	if err := h.validator.Struct(payload); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.service.Register(r.Context(), payload.Name, payload.Email, payload.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload model.LoginRequest
	if !decodeJSON(w, r, &payload) {
		return
	}
	if err := h.validator.Struct(payload); err != nil {
		writeError(w, r, err)
		return
	}

	session, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeSession(w, session)
}

// Refresh runs behind the refresh guard, which verified the refresh JWT and
// put the grant on the context. The service still checks the presented token
// against the stored hash before rotating.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	grant, ok := middleware.RefreshGrantFromContext(r.Context())
	if !ok {
		writeError(w, r, apierror.Unauthorized("Missing refresh token"))
		return
	}

	session, err := h.service.Refresh(r.Context(), grant.UserID, grant.Token)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeSession(w, session)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, apierror.Unauthorized("Authentication required"))
		return
	}

	if err := h.service.Logout(r.Context(), user.ID); err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, h.service.ClearedRefreshCookie())
	writeJSON(w, http.StatusOK, true)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, apierror.Unauthorized("Authentication required"))
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// VerifyEmail consumes the single-use token from the query string and logs
// the user in.
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.URL.Query().Get("token"))
	if token == "" {
		writeError(w, r, apierror.BadRequest("token query parameter is required"))
		return
	}

	session, err := h.service.VerifyEmail(r.Context(), token)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeSession(w, session)
}

// writeSession sets the rotated refresh cookie and returns the access token
// in the body. The access token never goes into a cookie.
func (h *AuthHandler) writeSession(w http.ResponseWriter, session service.Session) {
	http.SetCookie(w, h.service.RefreshCookie(session.RefreshToken))
	writeJSON(w, http.StatusOK, model.TokenResponse{AccessToken: session.AccessToken})
}
