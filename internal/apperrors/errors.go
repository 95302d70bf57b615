// Package apperrors defines the sentinel errors shared by services, stores
// and handlers. Callers match them with errors.Is; the HTTP layer maps each
// kind to a status code without parsing message text.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// Input shape errors.
	ErrValidation   = errors.New("invalid input")
	ErrWeakPassword = errors.New("password does not meet the policy")

	// Credential store errors.
	ErrDuplicateEmail    = errors.New("email is already registered")
	ErrPrincipalNotFound = errors.New("principal not found")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two causes must stay indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Token errors. Expiry is distinct from tampering so clients can prompt
	// a re-login instead of treating the failure as an attack.
	ErrMissingToken    = errors.New("authorization token required")
	ErrTokenExpired    = errors.New("token has expired")
	ErrInvalidToken    = errors.New("invalid token")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("unauthenticated")

	// Ledger validation errors, one per field rule.
	ErrInvalidAmount        = errors.New("amount must be a positive number")
	ErrInvalidRecipientName = errors.New("recipient name must be at least 2 characters")
	ErrInvalidAccount       = errors.New("recipient account must be at least 5 characters")
	ErrInvalidSwiftCode     = errors.New("swift code must be 8 or 11 characters, e.g. ABCDUS33 or ABCDUS33XXX")

	ErrDuplicateTransactionID = errors.New("transaction id already exists")
	ErrTransactionNotFound    = errors.New("transaction not found")

	// ErrHashingFailure signals an entropy or resource failure in the
	// password hasher. Fatal; surfaced to users as a generic internal error.
	ErrHashingFailure = errors.New("password hashing failed")
)

// RoleMismatchError is returned when credentials verify but the principal
// tried the wrong portal. It names the actual role so the client can redirect.
type RoleMismatchError struct {
	ActualRole string
}

func (e *RoleMismatchError) Error() string {
	return fmt.Sprintf("this account is registered as %s; please log in through the %s portal", e.ActualRole, e.ActualRole)
}
