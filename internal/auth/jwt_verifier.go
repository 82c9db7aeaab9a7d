package auth

import (
	"errors"
	"log/slog"

	"github.com/golang-jwt/jwt/v5"
	"linkloud/internal/domain"
)

// HSVerifier implements TokenVerifier for tokens the API issues
// itself, signed with a shared HMAC secret.
type HSVerifier struct {
	secret []byte
	logger *slog.Logger
}

// NewHSVerifier creates a verifier for HS256-signed tokens.
func NewHSVerifier(secret string, logger *slog.Logger) (*HSVerifier, error) {
	if secret == "" {
		return nil, errors.New("JWT secret cannot be empty")
	}

	return &HSVerifier{
		secret: []byte(secret),
		logger: logger,
	}, nil
}

// Verify validates a token and returns the owner ID from its subject
// claim. Any parse, signature or claim failure maps to
// domain.ErrUnauthorized; callers get no detail about why a token was
// rejected.
func (v *HSVerifier) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return v.secret, nil
		},
		// Pinning the algorithm prevents confusion attacks ("none",
		// RS256-with-public-key-as-secret)
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		v.logger.Debug("token rejected", "error", err)
		return "", domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", domain.ErrUnauthorized
	}

	if claims.Subject == "" {
		v.logger.Debug("token missing subject claim")
		return "", domain.ErrUnauthorized
	}

	return claims.Subject, nil
}
