package query

import (
	"github.com/LiamSteyn/international-payments-portal/internal/apperrors"
	"github.com/LiamSteyn/international-payments-portal/internal/cqrs"
	"github.com/LiamSteyn/international-payments-portal/internal/models"
	"github.com/LiamSteyn/international-payments-portal/internal/repository"
)

// PaymentQueryService serves owner-scoped ledger reads.
type PaymentQueryService struct {
	repo repository.TransactionRepository
}

func NewPaymentQueryService(repo repository.TransactionRepository) *PaymentQueryService {
	return &PaymentQueryService{repo: repo}
}

// History returns the requester's own records, newest first. The snapshot is
// recomputed on every call.
func (s *PaymentQueryService) History(q cqrs.ListPaymentsQuery) ([]models.TransactionRecord, error) {
	return s.repo.ListByOwner(q.Requester)
}

// GetPayment checks existence before ownership: a non-owner probing a real
// ID gets Forbidden rather than NotFound. That reveals the ID exists; it is
// the reference behavior and is applied consistently wherever single records
// are fetched.
func (s *PaymentQueryService) GetPayment(q cqrs.GetPaymentQuery) (*models.TransactionRecord, error) {
	record, err := s.repo.GetByID(q.TransactionID)
	if err != nil {
		return nil, err
	}
	if record.InitiatedBy != q.Requester {
		return nil, apperrors.ErrForbidden
	}
	return record, nil
}
