package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/asif-fahad/b7a12-summer-camp-server-side-asif-fahad/internal/auth"
)

type AuthHandler struct {
	tokens *auth.TokenService
}

func NewAuthHandler(tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// IssueToken signs the caller-supplied identity payload. The frontend calls
// this right after its own sign-in flow completes.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.tokens.Sign(payload)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to sign token")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}
