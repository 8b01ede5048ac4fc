package helpers

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
)

// TokenVerifier checks bearer tokens either against a remote JWKS or a
// shared HMAC secret.
type TokenVerifier struct {
	jwks    *keyfunc.JWKS
	keyFunc jwt.Keyfunc
	methods []string
}

func NewTokenVerifier(secret, jwksURL string, logger *slog.Logger) (*TokenVerifier, error) {
	if jwksURL != "" {
		jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
			RefreshInterval:   time.Hour,
			RefreshRateLimit:  5 * time.Minute,
			RefreshTimeout:    10 * time.Second,
			RefreshUnknownKID: true,
			RefreshErrorHandler: func(err error) {
				logger.Error("jwks refresh failed", "error", err)
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load jwks: %w", err)
		}
		return &TokenVerifier{
			jwks:    jwks,
			keyFunc: jwks.Keyfunc,
			methods: []string{"RS256", "ES256"},
		}, nil
	}
	if secret == "" {
		return nil, errors.New("jwt secret or jwks url required")
	}
	key := []byte(secret)
	return &TokenVerifier{
		keyFunc: func(*jwt.Token) (interface{}, error) { return key, nil },
		methods: []string{"HS256"},
	}, nil
}

func (tv *TokenVerifier) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, tv.keyFunc, jwt.WithValidMethods(tv.methods))
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	if _, err := claims.UserID(); err != nil {
		return nil, err
	}
	return claims, nil
}

func (tv *TokenVerifier) Close() {
	if tv.jwks != nil {
		tv.jwks.EndBackground()
	}
}
