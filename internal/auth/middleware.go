package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey int

const claimsKey contextKey = 0

// ClaimsFrom returns the decoded claims attached by RequireAuth.
func ClaimsFrom(ctx context.Context) (jwt.MapClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(jwt.MapClaims)
	return claims, ok
}

// EmailFrom returns the email embedded in the request's claims, or "".
func EmailFrom(ctx context.Context) string {
	claims, ok := ClaimsFrom(ctx)
	if !ok {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}

// RoleLookup resolves the stored role for an email. The gates call it on
// every request so a revoked role takes effect immediately.
type RoleLookup interface {
	RoleForEmail(ctx context.Context, email string) (string, error)
}

// RequireAuth verifies the bearer token and attaches its claims to the
// request context.
func (s *TokenService) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		claims, err := s.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a route on the caller's stored role. RequireAuth must
// run first.
func RequireRole(users RoleLookup, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := EmailFrom(r.Context())
			if email == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			stored, err := users.RoleForEmail(r.Context(), email)
			if err != nil || stored != role {
				writeError(w, http.StatusForbidden, "forbidden message")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   true,
		"message": message,
	})
}
