package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/asif-fahad/b7a12-summer-camp-server-side-asif-fahad/internal/models"
	"github.com/asif-fahad/b7a12-summer-camp-server-side-asif-fahad/internal/services"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore is the slice of the user service the handler needs.
type UserStore interface {
	CreateIfAbsent(ctx context.Context, user *models.User) (string, error)
	UserList(ctx context.Context) ([]models.User, error)
	InstructorList(ctx context.Context) ([]models.User, error)
	RoleForEmail(ctx context.Context, email string) (string, error)
	SetRole(ctx context.Context, id, role string) (*models.UpdateAck, error)
}

type UserHandler struct {
	store UserStore
}

func NewUserHandler(store UserStore) *UserHandler {
	return &UserHandler{store: store}
}

// CreateUser inserts a user on first sign-in. A repeat call with the same
// email acknowledges without modifying anything.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if user.Email == "" {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}

	id, err := h.store.CreateIfAbsent(r.Context(), &user)
	if errors.Is(err, services.ErrUserExists) {
		respondJSON(w, http.StatusOK, map[string]string{"message": "user already exists"})
		return
	}
	if err != nil {
		log.Printf("Failed to create user: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	respondJSON(w, http.StatusOK, models.InsertAck{InsertedID: id})
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.UserList(r.Context())
	if err != nil {
		log.Printf("Failed to fetch users: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to fetch users")
		return
	}

	respondJSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetInstructors(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.InstructorList(r.Context())
	if err != nil {
		log.Printf("Failed to fetch instructors: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to fetch instructors")
		return
	}

	respondJSON(w, http.StatusOK, users)
}

// GetRole answers with the caller's stored role. Callers may only ask about
// themselves.
func (h *UserHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	email, ok := ownEmail(w, r)
	if !ok {
		return
	}

	role, err := h.store.RoleForEmail(r.Context(), email)
	if err != nil {
		log.Printf("Failed to fetch role for %s: %v", email, err)
		respondError(w, http.StatusInternalServerError, "failed to fetch role")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": role})
}

// CheckInstructor reports whether the caller is an instructor. The response
// key is "admin" because that is what the frontend reads.
func (h *UserHandler) CheckInstructor(w http.ResponseWriter, r *http.Request) {
	email, ok := ownEmail(w, r)
	if !ok {
		return
	}

	role, err := h.store.RoleForEmail(r.Context(), email)
	if err != nil {
		log.Printf("Failed to fetch role for %s: %v", email, err)
		respondError(w, http.StatusInternalServerError, "failed to fetch role")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"admin": role == models.RoleInstructor})
}

func (h *UserHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	h.promote(w, r, models.RoleAdmin)
}

func (h *UserHandler) MakeInstructor(w http.ResponseWriter, r *http.Request) {
	h.promote(w, r, models.RoleInstructor)
}

func (h *UserHandler) promote(w http.ResponseWriter, r *http.Request, role string) {
	id := mux.Vars(r)["id"]
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	ack, err := h.store.SetRole(r.Context(), id, role)
	if err != nil {
		log.Printf("Failed to promote user %s to %s: %v", id, role, err)
		respondError(w, http.StatusInternalServerError, "failed to update user")
		return
	}

	respondJSON(w, http.StatusOK, ack)
}
