package models

import "time"

// UserView is the principal shape returned alongside a fresh token.
type UserView struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TransactionView is the summary shape returned from the record and history
// endpoints. The full record is only returned from single-record lookups.
type TransactionView struct {
	ID            string    `json:"transactionId"`
	Amount        float64   `json:"amount"`
	RecipientName string    `json:"recipientName"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"timestamp"`
}

// ToTransactionView converts the stored record to its summary view.
func ToTransactionView(t *TransactionRecord) TransactionView {
	return TransactionView{
		ID:            t.ID,
		Amount:        t.Amount,
		RecipientName: t.RecipientName,
		Status:        t.Status,
		CreatedAt:     t.CreatedAt,
	}
}
