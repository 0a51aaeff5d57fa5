// Package auth implements authentication for the proxy's own API: JWT access
// tokens for callers and static API key verification. Authentication against
// the upstream Copilot service is handled by pkg/copilot.
package auth

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	// TokenLifetime defines how long issued access tokens are valid.
	TokenLifetime = time.Hour
)

var (
	// ErrTokenExpired is returned when the token has expired
	ErrTokenExpired = errors.New("token expired")

	// ErrInvalidToken is returned when the token is invalid for any reason
	ErrInvalidToken = errors.New("invalid token")
)

// Identity describes the authenticated caller of the proxy API.
type Identity struct {
	Login     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenClaims carries the JWT claims for proxy access tokens.
type TokenClaims struct {
	jwt.RegisteredClaims
	Login string `json:"login"`
}

// CreateAccessToken generates a signed JWT granting access to the proxy API.
func CreateAccessToken(login, secret string) (string, error) {
	now := time.Now()

	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        now.Format(time.RFC3339Nano),
		},
		Login: login,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

// ValidateAccessToken validates and parses a proxy access token.
func ValidateAccessToken(tokenString, secret string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &Identity{
		Login:     claims.Login,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// VerifyAppAPIKey checks the provided key against the VALID_API_KEYS
// environment variable, a comma-separated list of accepted keys. When
// DISABLE_AUTH is set to "true" or "1" every key is accepted.
func VerifyAppAPIKey(apiKey string) bool {
	if disableAuth := os.Getenv("DISABLE_AUTH"); disableAuth == "true" || disableAuth == "1" {
		return true
	}

	validKeys := os.Getenv("VALID_API_KEYS")
	if validKeys == "" {
		return false
	}

	for _, key := range strings.Split(validKeys, ",") {
		if apiKey == strings.TrimSpace(key) {
			return true
		}
	}

	return false
}
