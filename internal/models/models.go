package models

import "time"

// Roles a principal can hold. The role decides which portal the principal may
// log in to and never changes after provisioning.
const (
	RoleCustomer = "customer"
	RoleEmployee = "employee"
)

// StatusCompleted is the only transaction status: payments commit
// synchronously, there are no pending or failed states.
const StatusCompleted = "completed"

// Principal is a login. The email is the unique key, matched exactly as
// stored (case-sensitive).
type Principal struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdTimestamp"`
}

// TransactionRecord is one recorded payment request. Immutable once stored;
// visible only to the principal named in InitiatedBy.
type TransactionRecord struct {
	ID               string    `json:"transactionId"`
	Amount           float64   `json:"amount"`
	RecipientName    string    `json:"recipientName"`
	RecipientAccount string    `json:"recipientAccount"`
	SwiftCode        string    `json:"swiftCode"`
	InitiatedBy      string    `json:"initiatedBy"`
	InitiatorRole    string    `json:"-"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"timestamp"`
}
