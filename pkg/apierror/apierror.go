package apierror

import (
	"fmt"
	"net/http"
)

// APIError is an error that already knows which HTTP status it maps to.
// Handlers pass these through writeError unchanged; anything else becomes a
// generic 500.
type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code string, message string, status int) *APIError {
	return &APIError{Code: code, Message: message, HTTPStatus: status}
}

func Conflict(message string) *APIError {
	return New("CONFLICT", message, http.StatusConflict)
}

func NotFound(message string) *APIError {
	return New("NOT_FOUND", message, http.StatusNotFound)
}

func Unauthorized(message string) *APIError {
	return New("UNAUTHORIZED", message, http.StatusUnauthorized)
}

func Forbidden(message string) *APIError {
	return New("FORBIDDEN", message, http.StatusForbidden)
}

func BadRequest(message string) *APIError {
	return New("BAD_REQUEST", message, http.StatusBadRequest)
}
