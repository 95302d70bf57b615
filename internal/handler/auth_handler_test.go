package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/LiamSteyn/international-payments-portal/internal/apperrors"
	"github.com/LiamSteyn/international-payments-portal/internal/cqrs"
	"github.com/LiamSteyn/international-payments-portal/internal/models"
)

// ---- mock implementation ----

type mockAuthQuerier struct {
	loginFn func(cqrs.LoginCommand) (string, *models.Principal, error)
}

func (m *mockAuthQuerier) Login(cmd cqrs.LoginCommand) (string, *models.Principal, error) {
	if m.loginFn != nil {
		return m.loginFn(cmd)
	}
	return "", nil, fmt.Errorf("not configured")
}

// ---- helpers ----

func newAuthTestRouter(qrys AuthQuerier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(qrys)
	r.POST("/v1/auth/login", h.Login)
	return r
}

func doRequest(router *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, nil)
	if body != nil {
		b, _ := json.Marshal(body)
		req, _ = http.NewRequest(method, url, strings.NewReader(string(b)))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func loginBody() map[string]interface{} {
	return map[string]interface{}{
		"email": "alice@example.com", "password": "Secret123!", "userType": "customer",
	}
}

// ---- tests ----

func TestLoginHandler(t *testing.T) {
	testPrincipal := &models.Principal{Email: "alice@example.com", Role: models.RoleCustomer}

	tests := []struct {
		name           string
		body           interface{}
		loginFn        func(cqrs.LoginCommand) (string, *models.Principal, error)
		expectedStatus int
	}{
		{
			name: "success",
			body: loginBody(),
			loginFn: func(cmd cqrs.LoginCommand) (string, *models.Principal, error) {
				return "signed-token", testPrincipal, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "invalid credentials",
			body: loginBody(),
			loginFn: func(cmd cqrs.LoginCommand) (string, *models.Principal, error) {
				return "", nil, apperrors.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "role mismatch",
			body: loginBody(),
			loginFn: func(cmd cqrs.LoginCommand) (string, *models.Principal, error) {
				return "", nil, &apperrors.RoleMismatchError{ActualRole: models.RoleCustomer}
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "invalid email",
			body: loginBody(),
			loginFn: func(cmd cqrs.LoginCommand) (string, *models.Principal, error) {
				return "", nil, fmt.Errorf("%w: email format is invalid", apperrors.ErrValidation)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing fields",
			body:           map[string]interface{}{"email": "alice@example.com"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown user type",
			body:           map[string]interface{}{"email": "alice@example.com", "password": "x", "userType": "admin"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           "not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthTestRouter(&mockAuthQuerier{loginFn: tt.loginFn})
			w := doRequest(router, http.MethodPost, "/v1/auth/login", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d (body %s)", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestLoginHandlerResponseShape(t *testing.T) {
	router := newAuthTestRouter(&mockAuthQuerier{
		loginFn: func(cmd cqrs.LoginCommand) (string, *models.Principal, error) {
			return "signed-token", &models.Principal{Email: "alice@example.com", Role: models.RoleCustomer}, nil
		},
	})
	w := doRequest(router, http.MethodPost, "/v1/auth/login", loginBody())

	var resp LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Errorf("expected token in response, got %q", resp.Token)
	}
	if resp.User.Email != "alice@example.com" || resp.User.Role != models.RoleCustomer {
		t.Errorf("unexpected user view: %+v", resp.User)
	}
}

func TestLoginHandlerFailureEnvelope(t *testing.T) {
	router := newAuthTestRouter(&mockAuthQuerier{
		loginFn: func(cmd cqrs.LoginCommand) (string, *models.Principal, error) {
			return "", nil, apperrors.ErrInvalidCredentials
		},
	})
	w := doRequest(router, http.MethodPost, "/v1/auth/login", loginBody())

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Success {
		t.Error("expected success=false in failure envelope")
	}
	if resp.Message == "" {
		t.Error("expected a message in failure envelope")
	}
}
