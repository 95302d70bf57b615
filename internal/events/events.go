package events

import "time"

// Stream names.
const (
	PaymentEventsStream   = "payment-events"
	PrincipalEventsStream = "principal-events"
)

// Event types.
const (
	PaymentRecorded  = "payment.recorded"
	PrincipalCreated = "principal.created"
)

// Event is the envelope written to a stream.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type PaymentRecordedEvent struct {
	TransactionID string  `json:"transactionId"`
	InitiatedBy   string  `json:"initiatedBy"`
	Amount        float64 `json:"amount"`
	SwiftCode     string  `json:"swiftCode"`
}

type PrincipalCreatedEvent struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
