package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-notes-api/internal/model"
	"go-notes-api/internal/password"
	"go-notes-api/pkg/apierror"
)

// UserStore is the credential store contract consumed by AuthService.
// Lookups return model.ErrUserNotFound when no row matches; the service
// decides whether absence is fatal.
type UserStore interface {
	FindByID(ctx context.Context, id string) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByVerificationToken(ctx context.Context, token string) (model.User, error)
	Create(ctx context.Context, user model.User) error
	SetRefreshTokenHash(ctx context.Context, userID string, hash string) error
	ClearVerificationToken(ctx context.Context, userID string) error
	ClearSession(ctx context.Context, userID string) error
}

// Session is the outcome of a successful login, refresh or email
// verification. The access token goes to the response body; the refresh
// token only ever travels in the cookie.
type Session struct {
	AccessToken  string
	RefreshToken string
}

const refreshCookieName = "refreshToken"

// AuthService orchestrates the authentication lifecycle: registration,
// login, refresh-token rotation, logout and email verification.
type AuthService struct {
	users        UserStore
	tokens       *TokenService
	cookieDomain string
	dev          bool
}

func NewAuthService(users UserStore, tokens *TokenService, cookieDomain string, dev bool) *AuthService {
	return &AuthService{
		users:        users,
		tokens:       tokens,
		cookieDomain: cookieDomain,
		dev:          dev,
	}
}

func (s *AuthService) Register(ctx context.Context, name string, email string, plainPassword string) (model.PublicUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return model.PublicUser{}, apierror.Conflict("User already exists")
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return model.PublicUser{}, err
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return model.PublicUser{}, err
	}

	now := time.Now().UTC()
	verificationToken := uuid.NewString()
	user := model.User{
		ID:                uuid.NewString(),
		Email:             email,
		Name:              strings.TrimSpace(name),
		PasswordHash:      hash,
		VerificationToken: &verificationToken,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			return model.PublicUser{}, apierror.Conflict("User already exists")
		}
		return model.PublicUser{}, err
	}

	return user.Public(), nil
}

func (s *AuthService) Login(ctx context.Context, email string, plainPassword string) (Session, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return Session{}, apierror.NotFound("User not found")
		}
		return Session{}, err
	}

	ok, err := password.Verify(plainPassword, user.PasswordHash)
	if err != nil || !ok {
		return Session{}, apierror.Unauthorized("Invalid credentials")
	}

	return s.issue(ctx, user.ID)
}

// Refresh rotates the session. The user id comes from a refresh JWT already
// verified at the HTTP boundary; the presented plaintext token must
// additionally match the stored hash, so a token that was rotated away is
// dead even before its expiry.
func (s *AuthService) Refresh(ctx context.Context, userID string, refreshToken string) (Session, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return Session{}, apierror.Unauthorized("Access denied")
		}
		return Session{}, err
	}

	if user.HashedRefreshToken == nil {
		return Session{}, apierror.Unauthorized("Access denied")
	}

	ok, err := password.Verify(refreshToken, *user.HashedRefreshToken)
	if err != nil || !ok {
		return Session{}, apierror.Unauthorized("Access denied")
	}

	return s.issue(ctx, user.ID)
}

// Logout drops the stored refresh-token hash and any pending verification
// token. Safe to call repeatedly.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.users.ClearSession(ctx, userID)
}

// VerifyEmail consumes a single-use verification token and opens a session,
// so verification doubles as a login.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) (Session, error) {
	user, err := s.users.FindByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return Session{}, apierror.Unauthorized("Invalid token")
		}
		return Session{}, err
	}

	if err := s.users.ClearVerificationToken(ctx, user.ID); err != nil {
		return Session{}, err
	}

	return s.issue(ctx, user.ID)
}

// GetUserByID resolves the request identity for an already-verified access
// token. It never touches the refresh-token hash.
func (s *AuthService) GetUserByID(ctx context.Context, userID string) (model.PublicUser, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return model.PublicUser{}, apierror.NotFound("User not found")
		}
		return model.PublicUser{}, err
	}

	return user.Public(), nil
}

func (s *AuthService) VerifyAccessToken(token string) (string, error) {
	return s.tokens.VerifyAccess(token)
}

func (s *AuthService) VerifyRefreshToken(token string) (string, error) {
	return s.tokens.VerifyRefresh(token)
}

// issue mints a fresh token pair and persists the hash of the new refresh
// token, overwriting the previous one. This is the rotation point: after the
// write returns, the prior refresh token can no longer pass Refresh.
func (s *AuthService) issue(ctx context.Context, userID string) (Session, error) {
	accessToken, err := s.tokens.SignAccess(userID)
	if err != nil {
		return Session{}, err
	}

	refreshToken, err := s.tokens.SignRefresh(userID)
	if err != nil {
		return Session{}, err
	}

	hash, err := password.Hash(refreshToken)
	if err != nil {
		return Session{}, err
	}

	if err := s.users.SetRefreshTokenHash(ctx, userID, hash); err != nil {
		return Session{}, err
	}

	return Session{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// RefreshCookie scopes the refresh token to an HTTP-only cookie. Outside
// development the cookie is Secure with SameSite=Lax.
func (s *AuthService) RefreshCookie(refreshToken string) *http.Cookie {
	cookie := s.baseRefreshCookie()
	cookie.Value = refreshToken
	cookie.Expires = time.Now().Add(s.tokens.RefreshTTL())
	return cookie
}

// ClearedRefreshCookie carries the same scope attributes with an epoch
// expiry so browsers drop the cookie.
func (s *AuthService) ClearedRefreshCookie() *http.Cookie {
	cookie := s.baseRefreshCookie()
	cookie.Value = ""
	cookie.Expires = time.Unix(0, 0)
	return cookie
}

func (s *AuthService) baseRefreshCookie() *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if s.dev {
		sameSite = http.SameSiteNoneMode
	}

	return &http.Cookie{
		Name:     refreshCookieName,
		Path:     "/",
		Domain:   s.cookieDomain,
		HttpOnly: true,
		Secure:   !s.dev,
		SameSite: sameSite,
	}
}

// RefreshCookieName is exported for the refresh guard and tests.
func RefreshCookieName() string {
	return refreshCookieName
}
