package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const ScopeAdmin = "admin"

type AuthMiddleware struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		logs:      logger,
		validator: validator,
	}
}

// Authenticate requires a valid bearer token and stores its subject in the
// request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return m.guard("", next)
}

// RequireScope additionally requires the token's scope claim to equal scope.
func (m *AuthMiddleware) RequireScope(scope string, next http.Handler) http.Handler {
	return m.guard(scope, next)
}

func (m *AuthMiddleware) guard(scope string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := RequestIDFrom(r.Context())

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			m.deny(w, http.StatusUnauthorized, "missing bearer token")
			m.logs.Warnw("request without bearer token", "path", r.URL.Path, "request_id", requestID)
			return
		}

		claims, err := m.validator.Validate(token)
		if err != nil {
			m.deny(w, http.StatusUnauthorized, "invalid token")
			m.logs.Warnw("token rejected", "error", err, "path", r.URL.Path, "request_id", requestID)
			return
		}

		if scope != "" {
			if granted, _ := claims["scope"].(string); granted != scope {
				m.deny(w, http.StatusForbidden, "insufficient scope")
				m.logs.Warnw("token scope rejected",
					"required", scope,
					"granted", granted,
					"path", r.URL.Path,
					"request_id", requestID)
				return
			}
		}

		subject, _ := claims["sub"].(string)
		ctx := context.WithValue(r.Context(), SubjectKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) deny(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Authentication failed",
		"error":   message,
	})
}
