package cqrs

type CreatePrincipalCommand struct {
	Email    string
	Password string
	Role     string
}

type LoginCommand struct {
	Email    string
	Password string
	UserType string
}

// RecordPaymentCommand carries a payment request into the ledger. Amount is
// kept as the raw string from the wire so the ledger owns the parse and can
// report InvalidAmount for garbage instead of a bind error.
type RecordPaymentCommand struct {
	Amount           string
	RecipientName    string
	RecipientAccount string
	SwiftCode        string
	InitiatedBy      string
	InitiatorRole    string
}
