package command

import (
	"context"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/LiamSteyn/international-payments-portal/internal/apperrors"
	"github.com/LiamSteyn/international-payments-portal/internal/cqrs"
	"github.com/LiamSteyn/international-payments-portal/internal/events"
	"github.com/LiamSteyn/international-payments-portal/internal/models"
	"github.com/LiamSteyn/international-payments-portal/internal/repository"
	"github.com/LiamSteyn/international-payments-portal/internal/utils"
)

// PaymentCommandService validates and records payment requests. Recording is
// a synchronous single-step commit: a stored record is always "completed".
type PaymentCommandService struct {
	repo      repository.TransactionRepository
	publisher *events.Publisher
}

func NewPaymentCommandService(repo repository.TransactionRepository, publisher *events.Publisher) *PaymentCommandService {
	return &PaymentCommandService{repo: repo, publisher: publisher}
}

// RecordPayment sanitizes the request fields, validates them in a fixed
// order (amount, recipient name, account, SWIFT code; first failure wins so
// the caller learns exactly which field was wrong), then stores the record
// under a freshly generated ID owned by the caller.
func (s *PaymentCommandService) RecordPayment(cmd cqrs.RecordPaymentCommand) (*models.TransactionRecord, error) {
	recipientName := utils.Sanitize(cmd.RecipientName)
	recipientAccount := utils.Sanitize(cmd.RecipientAccount)
	swiftCode := strings.ToUpper(utils.Sanitize(cmd.SwiftCode))

	amount, err := strconv.ParseFloat(strings.TrimSpace(cmd.Amount), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	if len(recipientName) < 2 {
		return nil, apperrors.ErrInvalidRecipientName
	}
	if len(recipientAccount) < 5 {
		return nil, apperrors.ErrInvalidAccount
	}
	if !utils.ValidSwiftCode(swiftCode) {
		return nil, apperrors.ErrInvalidSwiftCode
	}

	record := &models.TransactionRecord{
		ID:               utils.GenerateTransactionID(),
		Amount:           amount,
		RecipientName:    recipientName,
		RecipientAccount: recipientAccount,
		SwiftCode:        swiftCode,
		InitiatedBy:      cmd.InitiatedBy,
		InitiatorRole:    cmd.InitiatorRole,
		Status:           models.StatusCompleted,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.repo.Create(record); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(context.Background(), events.PaymentEventsStream, events.PaymentRecorded, events.PaymentRecordedEvent{
			TransactionID: record.ID,
			InitiatedBy:   record.InitiatedBy,
			Amount:        record.Amount,
			SwiftCode:     record.SwiftCode,
		}); err != nil {
			log.Printf("Failed to publish payment.recorded event: %v", err)
		}
	}
	return record, nil
}
