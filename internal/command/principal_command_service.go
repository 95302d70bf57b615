package command

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/LiamSteyn/international-payments-portal/internal/apperrors"
	"github.com/LiamSteyn/international-payments-portal/internal/cqrs"
	"github.com/LiamSteyn/international-payments-portal/internal/events"
	"github.com/LiamSteyn/international-payments-portal/internal/models"
	"github.com/LiamSteyn/international-payments-portal/internal/repository"
	"github.com/LiamSteyn/international-payments-portal/internal/utils"
)

var validate = validator.New()

// PrincipalCommandService provisions logins. Self-service registration is
// disabled at the HTTP layer; this service backs fixture seeding and
// operator-driven provisioning. Principals are immutable once created, so
// there is no update or delete side.
type PrincipalCommandService struct {
	repo       repository.PrincipalRepository
	publisher  *events.Publisher
	bcryptCost int
	seedOnce   sync.Once
}

func NewPrincipalCommandService(repo repository.PrincipalRepository, publisher *events.Publisher, bcryptCost int) *PrincipalCommandService {
	return &PrincipalCommandService{repo: repo, publisher: publisher, bcryptCost: bcryptCost}
}

// CreatePrincipal validates, hashes and stores a new login. The password
// policy runs before any hashing is attempted.
func (s *PrincipalCommandService) CreatePrincipal(cmd cqrs.CreatePrincipalCommand) (*models.Principal, error) {
	email := utils.Sanitize(cmd.Email)
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: email format is invalid", apperrors.ErrValidation)
	}
	if cmd.Role != models.RoleCustomer && cmd.Role != models.RoleEmployee {
		return nil, fmt.Errorf("%w: role must be customer or employee", apperrors.ErrValidation)
	}
	if err := utils.ValidatePassword(cmd.Password); err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(cmd.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	principal := &models.Principal{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         cmd.Role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(principal); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(context.Background(), events.PrincipalEventsStream, events.PrincipalCreated, events.PrincipalCreatedEvent{
			Email: principal.Email,
			Role:  principal.Role,
		}); err != nil {
			log.Printf("Failed to publish principal.created event: %v", err)
		}
	}
	return principal, nil
}

// Seed provisions the fixture principals exactly once per service instance.
// Duplicate-email failures are tolerated so a restart against a durable
// store stays idempotent.
func (s *PrincipalCommandService) Seed(fixtures []cqrs.CreatePrincipalCommand) {
	s.seedOnce.Do(func() {
		for _, f := range fixtures {
			if _, err := s.CreatePrincipal(f); err != nil && !errors.Is(err, apperrors.ErrDuplicateEmail) {
				log.Printf("Failed to seed principal %s: %v", f.Email, err)
			}
		}
	})
}
