package query

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/LiamSteyn/international-payments-portal/internal/apperrors"
	"github.com/LiamSteyn/international-payments-portal/internal/cqrs"
	"github.com/LiamSteyn/international-payments-portal/internal/models"
	"github.com/LiamSteyn/international-payments-portal/internal/repository"
	"github.com/LiamSteyn/international-payments-portal/internal/token"
	"github.com/LiamSteyn/international-payments-portal/internal/utils"
)

var validate = validator.New()

// AuthQueryService handles login. There is no command side for auth because
// logging in doesn't mutate application state: tokens are stateless and
// nothing is stored per session.
type AuthQueryService struct {
	repo   repository.PrincipalRepository
	tokens *token.Manager
}

func NewAuthQueryService(repo repository.PrincipalRepository, tokens *token.Manager) *AuthQueryService {
	return &AuthQueryService{repo: repo, tokens: tokens}
}

// Login verifies the credentials and the claimed portal role, then issues a
// signed session token. Unknown email and wrong password both return
// ErrInvalidCredentials so callers cannot probe which emails exist. A role
// mismatch names the actual role: the caller already knows the email they
// typed, so redirecting them to the right portal leaks nothing new.
func (s *AuthQueryService) Login(cmd cqrs.LoginCommand) (string, *models.Principal, error) {
	email := utils.Sanitize(cmd.Email)
	if err := validate.Var(email, "required,email"); err != nil {
		return "", nil, fmt.Errorf("%w: email format is invalid", apperrors.ErrValidation)
	}
	if cmd.UserType != models.RoleCustomer && cmd.UserType != models.RoleEmployee {
		return "", nil, fmt.Errorf("%w: userType must be customer or employee", apperrors.ErrValidation)
	}

	principal, err := s.repo.GetByEmail(email)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}
	if !utils.CheckPassword(cmd.Password, principal.PasswordHash) {
		return "", nil, apperrors.ErrInvalidCredentials
	}
	if cmd.UserType != principal.Role {
		return "", nil, &apperrors.RoleMismatchError{ActualRole: principal.Role}
	}

	signed, err := s.tokens.Issue(principal.Email, principal.Role)
	if err != nil {
		return "", nil, err
	}
	return signed, principal, nil
}
