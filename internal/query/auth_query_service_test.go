package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/LiamSteyn/international-payments-portal/internal/apperrors"
	"github.com/LiamSteyn/international-payments-portal/internal/cqrs"
	"github.com/LiamSteyn/international-payments-portal/internal/models"
	"github.com/LiamSteyn/international-payments-portal/internal/repository"
	"github.com/LiamSteyn/international-payments-portal/internal/token"
	"github.com/LiamSteyn/international-payments-portal/internal/utils"
)

func newAuthService(t *testing.T) (*AuthQueryService, *token.Manager) {
	t.Helper()
	repo := repository.NewMemoryPrincipalRepository()

	hash, err := utils.HashPassword("Secret123!", bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(&models.Principal{
		Email: "alice@example.com", PasswordHash: hash,
		Role: models.RoleCustomer, CreatedAt: time.Now(),
	}))

	tokens := token.NewManager([]byte("test-secret"), time.Hour)
	return NewAuthQueryService(repo, tokens), tokens
}

func TestLoginSuccess(t *testing.T) {
	svc, tokens := newAuthService(t)

	signed, principal, err := svc.Login(cqrs.LoginCommand{
		Email: "alice@example.com", Password: "Secret123!", UserType: models.RoleCustomer,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", principal.Email)
	assert.Equal(t, models.RoleCustomer, principal.Role)

	claims, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.Equal(t, models.RoleCustomer, claims.Role)
}

func TestLoginTrimsEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, principal, err := svc.Login(cqrs.LoginCommand{
		Email: "  alice@example.com  ", Password: "Secret123!", UserType: models.RoleCustomer,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", principal.Email)
}

func TestLoginUnifiedInvalidCredentials(t *testing.T) {
	svc, _ := newAuthService(t)

	// Wrong password for a real principal and a login for a nonexistent
	// principal must be indistinguishable: same error, same message.
	_, _, wrongPassword := svc.Login(cqrs.LoginCommand{
		Email: "alice@example.com", Password: "WrongPass1!", UserType: models.RoleCustomer,
	})
	_, _, unknownEmail := svc.Login(cqrs.LoginCommand{
		Email: "mallory@example.com", Password: "Secret123!", UserType: models.RoleCustomer,
	})

	assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, apperrors.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLoginRoleMismatchNamesActualRole(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Login(cqrs.LoginCommand{
		Email: "alice@example.com", Password: "Secret123!", UserType: models.RoleEmployee,
	})
	require.Error(t, err)

	var mismatch *apperrors.RoleMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, models.RoleCustomer, mismatch.ActualRole)
	assert.Contains(t, err.Error(), "customer")
}

func TestLoginValidation(t *testing.T) {
	svc, _ := newAuthService(t)

	tests := []struct {
		name string
		cmd  cqrs.LoginCommand
	}{
		{name: "missing at sign", cmd: cqrs.LoginCommand{Email: "alice.example.com", Password: "x", UserType: models.RoleCustomer}},
		{name: "missing domain", cmd: cqrs.LoginCommand{Email: "alice@", Password: "x", UserType: models.RoleCustomer}},
		{name: "control characters", cmd: cqrs.LoginCommand{Email: "alice\x01@example.com", Password: "x", UserType: models.RoleCustomer}},
		{name: "bad user type", cmd: cqrs.LoginCommand{Email: "alice@example.com", Password: "x", UserType: "admin"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(tt.cmd)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}
