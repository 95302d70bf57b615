package cqrs

// ListPaymentsQuery fetches every payment initiated by the requester.
type ListPaymentsQuery struct {
	Requester string
}

// GetPaymentQuery fetches a single payment, subject to ownership check.
type GetPaymentQuery struct {
	TransactionID string
	Requester     string
}
