package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pashagolub/pgxmock/v3"
)

func newAuthApp(mock pgxmock.PgxPoolIface) (*fiber.App, *Service) {
	svc := NewService("test-secret", "thapar.edu", mock)
	app := fiber.New()
	RegisterRoutes(app.Group("/auth"), svc)
	return app, svc
}

func TestAuthHandlersRegister(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "arjun.patel@thapar.edu", "arjun", pgxmock.AnyArg(), "Arjun Patel", "", "").
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(time.Now(), time.Now()))
	mock.ExpectExec(`INSERT INTO refresh_tokens`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	app, _ := newAuthApp(mock)

	body, _ := json.Marshal(RegisterRequest{
		Email:    "arjun.patel@thapar.edu",
		Username: "arjun",
		Password: "password123",
		FullName: "Arjun Patel",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status: %v", err)
	}
}

func TestAuthHandlersRegisterForeignDomain(t *testing.T) {
	app, _ := newAuthApp(nil)

	body, _ := json.Marshal(RegisterRequest{
		Email:    "outsider@gmail.com",
		Username: "outsider",
		Password: "password123",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected forbidden for foreign domain")
	}
}

func TestAuthHandlersLoginBadRequest(t *testing.T) {
	app, _ := newAuthApp(nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request")
	}
}

func TestAuthHandlersLoginUnknownUser(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, email, username, password_hash, full_name, phone, study_year, created_at, updated_at`).
		WithArgs("missing@thapar.edu").
		WillReturnError(errMissing)

	app, _ := newAuthApp(mock)

	body, _ := json.Marshal(LoginRequest{Email: "missing@thapar.edu", Password: "password123"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized")
	}
}

func TestAuthHandlersRefresh(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO refresh_tokens`).
		WithArgs(pgxmock.AnyArg(), "user-1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	app, svc := newAuthApp(mock)
	tokens, err := svc.GenerateTokens(context.Background(), "user-1", "arjun.patel@thapar.edu")
	if err != nil {
		t.Fatalf("generate tokens: %v", err)
	}

	mock.ExpectQuery(`SELECT user_id, expires_at`).
		WithArgs(tokens.RefreshToken).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "expires_at"}).AddRow("user-1", time.Now().Add(time.Hour)))
	mock.ExpectExec(`INSERT INTO refresh_tokens`).
		WithArgs(pgxmock.AnyArg(), "user-1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	body, _ := json.Marshal(RefreshRequest{RefreshToken: tokens.RefreshToken})
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("refresh status: %v", err)
	}
}

func TestAuthHandlersRefreshInvalid(t *testing.T) {
	app, _ := newAuthApp(nil)

	body, _ := json.Marshal(RefreshRequest{RefreshToken: "garbage"})
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized")
	}
}

func TestAuthHandlersLogout(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`UPDATE refresh_tokens SET revoked_at`).
		WithArgs("token-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	app, _ := newAuthApp(mock)

	body, _ := json.Marshal(RefreshRequest{RefreshToken: "token-1"})
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusNoContent {
		t.Fatalf("logout status: %v", err)
	}
}

func TestAuthHandlersVerify(t *testing.T) {
	app, svc := newAuthApp(nil)

	token, err := svc.signToken("user-1", "arjun.patel@thapar.edu", accessTokenTTL)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/jwt/verify", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("verify status: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/auth/jwt/verify", nil)
	resp, err = app.Test(req)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized without token")
	}
}

var errMissing = errors.New("no rows")
