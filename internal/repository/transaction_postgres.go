package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/LiamSteyn/international-payments-portal/internal/apperrors"
	"github.com/LiamSteyn/international-payments-portal/internal/models"
)

// PostgresTransactionRepository is the durable swap-in for the ledger. A
// bigserial seq column preserves insertion order for timestamp tiebreaks.
type PostgresTransactionRepository struct {
	db *sql.DB
}

func NewPostgresTransactionRepository(db *sql.DB) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{db: db}
}

func (r *PostgresTransactionRepository) Create(t *models.TransactionRecord) error {
	query := `
		INSERT INTO transactions (id, amount, recipient_name, recipient_account, swift_code,
			initiated_by, initiator_role, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(query, t.ID, t.Amount, t.RecipientName, t.RecipientAccount, t.SwiftCode,
		t.InitiatedBy, t.InitiatorRole, t.Status, t.CreatedAt)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return apperrors.ErrDuplicateTransactionID
	}
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *PostgresTransactionRepository) GetByID(id string) (*models.TransactionRecord, error) {
	query := `
		SELECT id, amount, recipient_name, recipient_account, swift_code,
			   initiated_by, initiator_role, status, created_at
		FROM transactions
		WHERE id = $1
	`
	var t models.TransactionRecord
	err := r.db.QueryRow(query, id).Scan(&t.ID, &t.Amount, &t.RecipientName, &t.RecipientAccount,
		&t.SwiftCode, &t.InitiatedBy, &t.InitiatorRole, &t.Status, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &t, nil
}

func (r *PostgresTransactionRepository) ListByOwner(email string) ([]models.TransactionRecord, error) {
	query := `
		SELECT id, amount, recipient_name, recipient_account, swift_code,
			   initiated_by, initiator_role, status, created_at
		FROM transactions
		WHERE initiated_by = $1
		ORDER BY created_at DESC, seq ASC
	`
	rows, err := r.db.Query(query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	out := make([]models.TransactionRecord, 0)
	for rows.Next() {
		var t models.TransactionRecord
		if err := rows.Scan(&t.ID, &t.Amount, &t.RecipientName, &t.RecipientAccount,
			&t.SwiftCode, &t.InitiatedBy, &t.InitiatorRole, &t.Status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
