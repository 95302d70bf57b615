// Package token issues and verifies the signed session tokens that carry a
// principal's identity between requests. Tokens are stateless: validity is a
// function of signature and expiry only, so there is no server-side session
// store and no revocation list.
package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/LiamSteyn/international-payments-portal/internal/apperrors"
)

// SessionClaims is the JWT payload: the principal's email (subject) and role
// plus the registered issued-at/expiry claims.
type SessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session tokens with a process-wide HS256 secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret []byte, ttl time.Duration) *Manager {
	return &Manager{secret: secret, ttl: ttl}
}

// Issue signs a session token for the principal. The token expires after the
// configured TTL (24 hours by default).
func (m *Manager) Issue(email, role string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's signature and expiry and reconstructs the
// caller's claims. Expiry is reported distinctly so clients can prompt a
// re-login instead of treating the failure as tampering.
func (m *Manager) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}
	if !tok.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// VerifyHeader extracts the bearer token from an Authorization header value
// and verifies it. An absent header or a malformed carrier is MissingToken,
// not InvalidToken.
func (m *Manager) VerifyHeader(header string) (*SessionClaims, error) {
	if header == "" {
		return nil, apperrors.ErrMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, apperrors.ErrMissingToken
	}
	return m.Verify(parts[1])
}

// Authorize checks the claims' role against the set of roles the caller
// allows. Pure check, no side effects; the roles set is never hard-coded here.
func Authorize(claims *SessionClaims, allowedRoles ...string) error {
	if claims == nil {
		return apperrors.ErrUnauthenticated
	}
	for _, role := range allowedRoles {
		if claims.Role == role {
			return nil
		}
	}
	return apperrors.ErrForbidden
}
