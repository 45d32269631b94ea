package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go-notes-api/internal/model"
	"go-notes-api/pkg/apierror"
)

func jsonEncode(w http.ResponseWriter, value any) error {
	return json.NewEncoder(w).Encode(value)
}

// writeGuardError emits the uniform error body for failures inside
// middleware, where the handler-level error writer is out of reach.
func writeGuardError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusUnauthorized
	message := "Unauthorized"

	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.HTTPStatus
		message = apiErr.Message
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = jsonEncode(w, model.ErrorResponse{
		StatusCode: status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       r.URL.Path,
		Method:     r.Method,
		Message:    message,
	})
}
