package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"go-notes-api/internal/model"
)

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				slog.Error("panic recovered",
					"error", fmt.Sprintf("%v", recovered),
					"stack", string(debug.Stack()))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = jsonEncode(w, model.ErrorResponse{
					StatusCode: http.StatusInternalServerError,
					Timestamp:  time.Now().UTC().Format(time.RFC3339),
					Path:       r.URL.Path,
					Method:     r.Method,
					Message:    "Internal Server Error",
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
