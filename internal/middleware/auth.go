package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LiamSteyn/international-payments-portal/internal/apperrors"
	"github.com/LiamSteyn/international-payments-portal/internal/token"
)

const claimsKey = "sessionClaims"

// AuthMiddleware verifies the bearer token on every protected route and
// stashes the caller's claims in the request context.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := tokens.VerifyHeader(c.GetHeader("Authorization"))
		if err != nil {
			message := "Invalid or malformed token"
			switch {
			case errors.Is(err, apperrors.ErrMissingToken):
				message = "Authorization header with bearer token required"
			case errors.Is(err, apperrors.ErrTokenExpired):
				message = "Session expired, please log in again"
			}
			RespondWithError(c, http.StatusUnauthorized, message)
			c.Abort()
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRoles gates a route to the given roles. Must run after
// AuthMiddleware; the allowed set lives at the route definition, not here.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := GetClaims(c)
		if err := token.Authorize(claims, roles...); err != nil {
			if errors.Is(err, apperrors.ErrUnauthenticated) {
				RespondWithError(c, http.StatusUnauthorized, "Authentication required")
			} else {
				RespondWithError(c, http.StatusForbidden, "Insufficient permissions")
			}
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetClaims returns the verified session claims set by AuthMiddleware.
func GetClaims(c *gin.Context) (*token.SessionClaims, bool) {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*token.SessionClaims)
	return claims, ok
}
