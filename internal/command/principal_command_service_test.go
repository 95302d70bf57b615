package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/LiamSteyn/international-payments-portal/internal/apperrors"
	"github.com/LiamSteyn/international-payments-portal/internal/cqrs"
	"github.com/LiamSteyn/international-payments-portal/internal/models"
	"github.com/LiamSteyn/international-payments-portal/internal/repository"
	"github.com/LiamSteyn/international-payments-portal/internal/utils"
)

func newPrincipalService() (*PrincipalCommandService, *repository.MemoryPrincipalRepository) {
	repo := repository.NewMemoryPrincipalRepository()
	return NewPrincipalCommandService(repo, nil, bcrypt.MinCost), repo
}

func TestCreatePrincipal(t *testing.T) {
	svc, repo := newPrincipalService()

	principal, err := svc.CreatePrincipal(cqrs.CreatePrincipalCommand{
		Email: " alice@example.com ", Password: "Secret123!", Role: models.RoleCustomer,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", principal.Email, "email is trimmed before storage")
	assert.Equal(t, models.RoleCustomer, principal.Role)
	assert.NotEqual(t, "Secret123!", principal.PasswordHash)
	assert.True(t, utils.CheckPassword("Secret123!", principal.PasswordHash))

	stored, err := repo.GetByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, principal.PasswordHash, stored.PasswordHash)
}

func TestCreatePrincipalValidation(t *testing.T) {
	tests := []struct {
		name    string
		cmd     cqrs.CreatePrincipalCommand
		wantErr error
	}{
		{
			name:    "missing at sign",
			cmd:     cqrs.CreatePrincipalCommand{Email: "alice.example.com", Password: "Secret123!", Role: models.RoleCustomer},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "missing domain",
			cmd:     cqrs.CreatePrincipalCommand{Email: "alice@", Password: "Secret123!", Role: models.RoleCustomer},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "unknown role",
			cmd:     cqrs.CreatePrincipalCommand{Email: "alice@example.com", Password: "Secret123!", Role: "admin"},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "weak password",
			cmd:     cqrs.CreatePrincipalCommand{Email: "alice@example.com", Password: "secret", Role: models.RoleCustomer},
			wantErr: apperrors.ErrWeakPassword,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newPrincipalService()
			_, err := svc.CreatePrincipal(tt.cmd)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreatePrincipalDuplicate(t *testing.T) {
	svc, _ := newPrincipalService()

	cmd := cqrs.CreatePrincipalCommand{Email: "alice@example.com", Password: "Secret123!", Role: models.RoleCustomer}
	_, err := svc.CreatePrincipal(cmd)
	require.NoError(t, err)

	_, err = svc.CreatePrincipal(cmd)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
}

func TestSeedIsIdempotent(t *testing.T) {
	svc, repo := newPrincipalService()

	fixtures := []cqrs.CreatePrincipalCommand{
		{Email: "customer@example.com", Password: "Customer1!", Role: models.RoleCustomer},
		{Email: "employee@example.com", Password: "Employee1!", Role: models.RoleEmployee},
	}
	svc.Seed(fixtures)
	svc.Seed(fixtures) // second call is a no-op

	customer, err := repo.GetByEmail("customer@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, customer.Role)

	employee, err := repo.GetByEmail("employee@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleEmployee, employee.Role)
}
