package middleware

import (
	"context"
	"net/http"
	"strings"

	"hrpulse/internal/domain/auth"
	"hrpulse/internal/transport/http/api"
)

type ctxKey string

const ctxKeyEmployee ctxKey = "employee"

// EmployeeSource resolves the caller's current role and manager from the
// store. Tokens carry only the employee id, so every request re-reads the
// employee record; a role or manager change takes effect immediately.
type EmployeeSource interface {
	EmployeeContext(ctx context.Context, employeeID string) (auth.EmployeeContext, error)
}

// Auth verifies the bearer token and hydrates the caller. Any failure along
// the chain ends the request with 401; protected handlers can rely on
// GetEmployee succeeding.
func Auth(secret string, source EmployeeSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := GetRequestID(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
				return
			}

			employeeID, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
				return
			}

			employee, err := source.EmployeeContext(r.Context(), employeeID)
			if err != nil {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithEmployee(r.Context(), employee)))
		})
	}
}

func WithEmployee(ctx context.Context, employee auth.EmployeeContext) context.Context {
	return context.WithValue(ctx, ctxKeyEmployee, employee)
}

func GetEmployee(ctx context.Context) (auth.EmployeeContext, bool) {
	employee, ok := ctx.Value(ctxKeyEmployee).(auth.EmployeeContext)
	return employee, ok
}
