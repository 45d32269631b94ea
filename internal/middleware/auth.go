package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go-notes-api/internal/model"
	"go-notes-api/internal/service"
	"go-notes-api/pkg/apierror"
)

// identityResolver is the slice of AuthService the guards need.
type identityResolver interface {
	VerifyAccessToken(token string) (string, error)
	VerifyRefreshToken(token string) (string, error)
	GetUserByID(ctx context.Context, userID string) (model.PublicUser, error)
}

type contextKey string

const (
	userContextKey    contextKey = "auth_user"
	refreshContextKey contextKey = "auth_refresh"
)

// RefreshGrant is what the refresh guard hands to the refresh handler: the
// user id from the verified refresh JWT plus the raw presented token, which
// still has to clear the stored-hash check.
type RefreshGrant struct {
	UserID string
	Token  string
}

type AuthMiddleware struct {
	auth identityResolver
}

func NewAuthMiddleware(auth identityResolver) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireAuth authenticates the request once from the Authorization header
// and attaches the resolved identity to the request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			writeGuardError(w, r, apierror.Unauthorized("Missing or invalid authorization header"))
			return
		}

		userID, err := m.auth.VerifyAccessToken(strings.TrimSpace(header[7:]))
		if err != nil {
			if errors.Is(err, model.ErrTokenExpired) {
				writeGuardError(w, r, apierror.Unauthorized("Token expired"))
			} else {
				writeGuardError(w, r, apierror.Unauthorized("Invalid token"))
			}
			return
		}

		// A valid token for a deleted user is a 404, not a 401.
		user, err := m.auth.GetUserByID(r.Context(), userID)
		if err != nil {
			writeGuardError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRefresh verifies the refresh JWT carried by the refreshToken
// cookie and exposes the grant to the handler. The rotation check against
// the stored hash is AuthService.Refresh's job.
func (m *AuthMiddleware) RequireRefresh(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(service.RefreshCookieName())
		if err != nil || strings.TrimSpace(cookie.Value) == "" {
			writeGuardError(w, r, apierror.Unauthorized("Missing refresh token"))
			return
		}

		userID, err := m.auth.VerifyRefreshToken(cookie.Value)
		if err != nil {
			writeGuardError(w, r, apierror.Unauthorized("Invalid or expired refresh token"))
			return
		}

		grant := RefreshGrant{UserID: userID, Token: cookie.Value}
		ctx := context.WithValue(r.Context(), refreshContextKey, grant)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func UserFromContext(ctx context.Context) (model.PublicUser, bool) {
	user, ok := ctx.Value(userContextKey).(model.PublicUser)
	return user, ok
}

func RefreshGrantFromContext(ctx context.Context) (RefreshGrant, bool) {
	grant, ok := ctx.Value(refreshContextKey).(RefreshGrant)
	return grant, ok
}
