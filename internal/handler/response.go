package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"go-notes-api/internal/model"
	"go-notes-api/internal/validate"
	"go-notes-api/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError is the single choke point that maps errors onto the uniform
// error body. Unclassified errors are logged in full and surface as a bare
// 500 so no internals leak to clients.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	var message any = "Internal Server Error"

	var apiErr *apierror.APIError
	var validationErr *validate.ValidationError

	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		message = apiErr.Message
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		message = validationErr.Messages
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		message = "User not found"
	case errors.Is(err, model.ErrNoteNotFound):
		status = http.StatusNotFound
		message = "Note not found"
	case errors.Is(err, model.ErrEmailTaken):
		status = http.StatusConflict
		message = "User already exists"
	case errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		message = "Invalid credentials"
	case errors.Is(err, model.ErrInvalidToken), errors.Is(err, model.ErrTokenExpired), errors.Is(err, model.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = "Invalid or expired token"
	case errors.Is(err, model.ErrForbidden):
		status = http.StatusForbidden
		message = "Access denied"
	default:
		slog.Error("unhandled error in writeError",
			"error", err.Error(), "path", r.URL.Path, "method", r.Method)
	}

	writeJSON(w, status, model.ErrorResponse{
		StatusCode: status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       r.URL.Path,
		Method:     r.Method,
		Message:    message,
	})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, r, apierror.BadRequest("Invalid JSON body"))
		return false
	}
	return true
}
