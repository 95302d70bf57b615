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

// AuthQuerier defines the operations used by AuthHandler.
type AuthQuerier interface {
	Login(cqrs.LoginCommand) (string, *models.Principal, error)
}

// AuthHandler handles login. Registration is disabled: principals are
// pre-seeded at startup or provisioned out of band.
type AuthHandler struct {
	queries AuthQuerier
}

// LoginRequest validates shape only; email syntax is checked by the
// authenticator after sanitation so a padded-but-valid address still logs in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	UserType string `json:"userType" validate:"required,oneof=customer employee"`
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  models.UserView `json:"user"`
}

func NewAuthHandler(queries AuthQuerier) *AuthHandler {
	return &AuthHandler{queries: queries}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	signed, principal, err := h.queries.Login(cqrs.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
		UserType: req.UserType,
	})
	if err != nil {
		var mismatch *apperrors.RoleMismatchError
		switch {
		case errors.As(err, &mismatch):
			middleware.RespondWithError(c, http.StatusForbidden, mismatch.Error())
		case errors.Is(err, apperrors.ErrValidation):
			middleware.RespondWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			middleware.RespondWithError(c, http.StatusUnauthorized, err.Error())
		default:
			middleware.RespondWithError(c, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: signed,
		User:  models.UserView{Email: principal.Email, Role: principal.Role},
	})
}
