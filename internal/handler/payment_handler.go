package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LiamSteyn/international-payments-portal/internal/apperrors"
	"github.com/LiamSteyn/international-payments-portal/internal/cqrs"
	"github.com/LiamSteyn/international-payments-portal/internal/middleware"
	"github.com/LiamSteyn/international-payments-portal/internal/models"
)

// PaymentCommander defines the write-side operations used by PaymentHandler.
type PaymentCommander interface {
	RecordPayment(cqrs.RecordPaymentCommand) (*models.TransactionRecord, error)
}

// PaymentQuerier defines the read-side operations used by PaymentHandler.
type PaymentQuerier interface {
	History(cqrs.ListPaymentsQuery) ([]models.TransactionRecord, error)
	GetPayment(cqrs.GetPaymentQuery) (*models.TransactionRecord, error)
}

type PaymentHandler struct {
	commands PaymentCommander
	queries  PaymentQuerier
}

// RecordPaymentRequest carries amount as a string: the ledger owns the
// numeric parse so "-5" and "abc" both map to InvalidAmount, not a bind error.
type RecordPaymentRequest struct {
	Amount           string `json:"amount" validate:"required"`
	RecipientName    string `json:"recipientName" validate:"required"`
	RecipientAccount string `json:"recipientAccount" validate:"required"`
	SwiftCode        string `json:"swiftCode" validate:"required"`
}

type ListPaymentsResponse struct {
	Transactions []models.TransactionView `json:"transactions"`
}

func NewPaymentHandler(commands PaymentCommander, queries PaymentQuerier) *PaymentHandler {
	return &PaymentHandler{commands: commands, queries: queries}
}

func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		middleware.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	record, err := h.commands.RecordPayment(cqrs.RecordPaymentCommand{
		Amount:           req.Amount,
		RecipientName:    req.RecipientName,
		RecipientAccount: req.RecipientAccount,
		SwiftCode:        req.SwiftCode,
		InitiatedBy:      claims.Subject,
		InitiatorRole:    claims.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidAmount),
			errors.Is(err, apperrors.ErrInvalidRecipientName),
			errors.Is(err, apperrors.ErrInvalidAccount),
			errors.Is(err, apperrors.ErrInvalidSwiftCode):
			middleware.RespondWithError(c, http.StatusBadRequest, err.Error())
		default:
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to record payment")
		}
		return
	}

	c.JSON(http.StatusCreated, models.ToTransactionView(record))
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		middleware.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	records, err := h.queries.History(cqrs.ListPaymentsQuery{Requester: claims.Subject})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list payments")
		return
	}

	views := make([]models.TransactionView, len(records))
	for i := range records {
		views[i] = models.ToTransactionView(&records[i])
	}
	c.JSON(http.StatusOK, ListPaymentsResponse{Transactions: views})
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		middleware.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	record, err := h.queries.GetPayment(cqrs.GetPaymentQuery{
		TransactionID: c.Param("transactionId"),
		Requester:     claims.Subject,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTransactionNotFound):
			middleware.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		case errors.Is(err, apperrors.ErrForbidden):
			middleware.RespondWithError(c, http.StatusForbidden, "You can only view your own payments")
		default:
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to get payment")
		}
		return
	}

	c.JSON(http.StatusOK, record)
}
