package authhandler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"hrpulse/internal/domain/audit"
	"hrpulse/internal/domain/auth"
	"hrpulse/internal/domain/employee"
	"hrpulse/internal/transport/http/api"
	"hrpulse/internal/transport/http/middleware"
)

type CredentialSource interface {
	CredentialsByEmail(ctx context.Context, email string) (employee.Credentials, error)
}

type Handler struct {
	Employees CredentialSource
	Secret    string
	Audit     *audit.Service
}

func NewHandler(employees CredentialSource, secret string, auditSvc *audit.Service) *Handler {
	return &Handler{Employees: employees, Secret: secret, Audit: auditSvc}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// HandleLogin exchanges email and password for a bearer token. Unknown email
// and wrong password produce byte-identical responses so the endpoint cannot
// be used to probe which accounts exist.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	email := strings.TrimSpace(payload.Email)
	if email == "" || payload.Password == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_credentials", "invalid credentials", reqID)
		return
	}

	creds, err := h.Employees.CredentialsByEmail(r.Context(), email)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_credentials", "invalid credentials", reqID)
		return
	}

	if err := auth.CheckPassword(creds.PasswordHash, payload.Password); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_credentials", "invalid credentials", reqID)
		return
	}

	token, err := auth.GenerateToken(h.Secret, creds.ID, auth.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue token", reqID)
		return
	}

	if h.Audit != nil {
		h.Audit.Record(r.Context(), audit.Event{
			ActorID:    creds.ID,
			Action:     audit.ActionLogin,
			EntityType: "employee",
			EntityID:   creds.ID,
			RequestID:  reqID,
			IP:         r.RemoteAddr,
		})
	}

	api.Success(w, loginResponse{Token: token}, reqID)
}
