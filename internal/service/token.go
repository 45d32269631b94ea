package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"go-notes-api/internal/model"
)

// tokenConfig pairs a signing secret with a lifetime. Access and refresh
// tokens use independent secrets so leaking one does not compromise the
// other.
type tokenConfig struct {
	secret []byte
	ttl    time.Duration
}

// TokenService signs and verifies the two token kinds. Tokens are stateless:
// validity is signature plus expiry, identity is the sub claim.
type TokenService struct {
	access  tokenConfig
	refresh tokenConfig
}

func NewTokenService(accessSecret string, refreshSecret string, accessTTL time.Duration, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		access:  tokenConfig{secret: []byte(accessSecret), ttl: accessTTL},
		refresh: tokenConfig{secret: []byte(refreshSecret), ttl: refreshTTL},
	}
}

func (s *TokenService) SignAccess(userID string) (string, error) {
	return sign(s.access, userID)
}

func (s *TokenService) SignRefresh(userID string) (string, error) {
	return sign(s.refresh, userID)
}

// VerifyAccess returns the user id carried by a valid access token.
func (s *TokenService) VerifyAccess(token string) (string, error) {
	return verify(s.access, token)
}

// VerifyRefresh returns the user id carried by a valid refresh token. This
// checks only the signature and expiry; the rotation check against the
// stored hash happens in AuthService.Refresh.
func (s *TokenService) VerifyRefresh(token string) (string, error) {
	return verify(s.refresh, token)
}

func (s *TokenService) RefreshTTL() time.Duration {
	return s.refresh.ttl
}

func sign(cfg tokenConfig, userID string) (string, error) {
	now := time.Now().UTC()
	// jti keeps two tokens minted in the same second distinct, otherwise
	// rotation could reissue a byte-identical refresh token.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(cfg.ttl).Unix(),
	})

	return token.SignedString(cfg.secret)
}

func verify(cfg tokenConfig, tokenString string) (string, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, model.ErrInvalidToken
		}
		return cfg.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", model.ErrTokenExpired
		}
		return "", model.ErrInvalidToken
	}
	if !parsed.Valid {
		return "", model.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", model.ErrInvalidToken
	}

	// Missing exp must not pass: a token without expiry is never valid.
	if exp, err := claims.GetExpirationTime(); err != nil || exp == nil {
		return "", model.ErrInvalidToken
	}

	userID, _ := claims["sub"].(string)
	if userID == "" {
		return "", model.ErrInvalidToken
	}

	return userID, nil
}
