package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubRoleLookup struct {
	role string
	err  error
}

func (s stubRoleLookup) RoleForEmail(ctx context.Context, email string) (string, error) {
	return s.role, s.err
}

func signedToken(t *testing.T, tokens *TokenService, email string) string {
	t.Helper()
	signed, err := tokens.Sign(map[string]interface{}{"email": email})
	assert.NoError(t, err)
	return signed
}

func TestRequireAuth(t *testing.T) {
	tokens := NewTokenService("test-secret")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "student@example.com", EmailFrom(r.Context()))
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"tampered token", "Bearer " + signedToken(t, NewTokenService("other"), "student@example.com"), http.StatusUnauthorized},
		{"valid token", "Bearer " + signedToken(t, tokens, "student@example.com"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/users", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			tokens.RequireAuth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				var body map[string]interface{}
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, true, body["error"])
				assert.Equal(t, "unauthorized access", body["message"])
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tokens := NewTokenService("test-secret")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		lookup     stubRoleLookup
		required   string
		wantStatus int
	}{
		{"admin allowed", stubRoleLookup{role: "Admin"}, "Admin", http.StatusOK},
		{"student forbidden", stubRoleLookup{role: "Student"}, "Admin", http.StatusForbidden},
		{"instructor not admin", stubRoleLookup{role: "Instructor"}, "Admin", http.StatusForbidden},
		{"lookup failure", stubRoleLookup{err: errors.New("db down")}, "Admin", http.StatusForbidden},
		{"instructor allowed", stubRoleLookup{role: "Instructor"}, "Instructor", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/users", nil)
			req.Header.Set("Authorization", "Bearer "+signedToken(t, tokens, "someone@example.com"))
			rec := httptest.NewRecorder()

			gate := RequireRole(tt.lookup, tt.required)
			tokens.RequireAuth(gate(next)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusForbidden {
				var body map[string]interface{}
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "forbidden message", body["message"])
			}
		})
	}
}

func TestRequireRoleWithoutAuth(t *testing.T) {
	gate := RequireRole(stubRoleLookup{role: "Admin"}, "Admin")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})

	req := httptest.NewRequest("GET", "/users", nil)
	rec := httptest.NewRecorder()
	gate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
