package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/asif-fahad/b7a12-summer-camp-server-side-asif-fahad/internal/auth"
	"github.com/gorilla/mux"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
	})
}

// ownEmail returns the path email after checking it matches the
// authenticated caller. On mismatch it writes a 403 and reports false.
func ownEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	email := mux.Vars(r)["email"]
	if email == "" || email != auth.EmailFrom(r.Context()) {
		respondError(w, http.StatusForbidden, "forbidden message")
		return "", false
	}
	return email, true
}
