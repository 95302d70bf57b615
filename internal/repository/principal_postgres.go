package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/LiamSteyn/international-payments-portal/internal/apperrors"
	"github.com/LiamSteyn/international-payments-portal/internal/models"
)

// uniqueViolation is the Postgres error code for a unique-constraint breach.
const uniqueViolation = "23505"

// PostgresPrincipalRepository is the durable swap-in for the credential
// store. The unique index on email gives the atomic insert-if-absent.
type PostgresPrincipalRepository struct {
	db *sql.DB
}

func NewPostgresPrincipalRepository(db *sql.DB) *PostgresPrincipalRepository {
	return &PostgresPrincipalRepository{db: db}
}

func (r *PostgresPrincipalRepository) Create(p *models.Principal) error {
	query := `
		INSERT INTO principals (email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(query, p.Email, p.PasswordHash, p.Role, p.CreatedAt)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return apperrors.ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("failed to create principal: %w", err)
	}
	return nil
}

func (r *PostgresPrincipalRepository) GetByEmail(email string) (*models.Principal, error) {
	query := `
		SELECT email, password_hash, role, created_at
		FROM principals
		WHERE email = $1
	`
	var p models.Principal
	err := r.db.QueryRow(query, email).Scan(&p.Email, &p.PasswordHash, &p.Role, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrPrincipalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get principal: %w", err)
	}
	return &p, nil
}
