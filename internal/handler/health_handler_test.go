package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"go-notes-api/internal/handler"
)

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	t.Run("healthy database answers ok", func(t *testing.T) {
		h := newTestRouter(t)
		rec := doJSON(t, h, "GET", "/health", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "ok", rec.Body.String())
	})

	t.Run("failing ping surfaces as unavailable", func(t *testing.T) {
		check := handler.NewHealthHandler(stubHealth{err: errors.New("pool closed")})
		rec := httptest.NewRecorder()
		check.Check(rec, httptest.NewRequest("GET", "/health", nil))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.Contains(t, rec.Body.String(), "Database unavailable")
	})
}
