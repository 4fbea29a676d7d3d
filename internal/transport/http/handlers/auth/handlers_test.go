package authhandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hrpulse/internal/domain/auth"
	"hrpulse/internal/domain/employee"
)

const testSecret = "login-test-secret"

type fakeCredentialSource struct {
	byEmail map[string]employee.Credentials
}

func (f *fakeCredentialSource) CredentialsByEmail(_ context.Context, email string) (employee.Credentials, error) {
	creds, ok := f.byEmail[email]
	if !ok {
		return employee.Credentials{}, employee.ErrNotFound
	}
	return creds, nil
}

func newLoginHandler(t *testing.T, password string) *Handler {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	source := &fakeCredentialSource{byEmail: map[string]employee.Credentials{
		"known@example.com": {ID: "emp-1", Role: auth.RoleOperator, PasswordHash: hash},
	}}
	return NewHandler(source, testSecret, nil)
}

func postLogin(handler *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.HandleLogin(rec, req)
	return rec
}

func TestLoginIssuesParseableToken(t *testing.T) {
	handler := newLoginHandler(t, "correct horse")

	rec := postLogin(handler, `{"email":"known@example.com","password":"correct horse"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !envelope.Success || envelope.Data.Token == "" {
		t.Fatalf("unexpected envelope: %s", rec.Body.String())
	}

	employeeID, err := auth.ParseToken(testSecret, envelope.Data.Token)
	if err != nil {
		t.Fatalf("issued token did not parse: %v", err)
	}
	if employeeID != "emp-1" {
		t.Fatalf("expected token subject emp-1, got %q", employeeID)
	}
}

func TestLoginUnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	handler := newLoginHandler(t, "correct horse")

	unknown := postLogin(handler, `{"email":"nobody@example.com","password":"whatever"}`)
	wrongPassword := postLogin(handler, `{"email":"known@example.com","password":"bad guess"}`)

	if unknown.Code != http.StatusBadRequest || wrongPassword.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for both, got %d and %d", unknown.Code, wrongPassword.Code)
	}
	if unknown.Body.String() != wrongPassword.Body.String() {
		t.Fatalf("responses must be identical:\nunknown email: %s\nwrong password: %s",
			unknown.Body.String(), wrongPassword.Body.String())
	}
	if !strings.Contains(unknown.Body.String(), "invalid_credentials") {
		t.Fatalf("expected invalid_credentials code, got %s", unknown.Body.String())
	}
}

func TestLoginRejectsMalformedJSON(t *testing.T) {
	handler := newLoginHandler(t, "correct horse")

	rec := postLogin(handler, `{"email": `)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid_payload") {
		t.Fatalf("expected invalid_payload code, got %s", rec.Body.String())
	}
}

func TestLoginRejectsEmptyFields(t *testing.T) {
	handler := newLoginHandler(t, "correct horse")

	for _, body := range []string{
		`{}`,
		`{"email":"known@example.com"}`,
		`{"password":"correct horse"}`,
	} {
		rec := postLogin(handler, body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "invalid_credentials") {
			t.Fatalf("body %s: expected invalid_credentials, got %s", body, rec.Body.String())
		}
	}
}
