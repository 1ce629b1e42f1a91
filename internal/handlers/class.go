package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/asif-fahad/b7a12-summer-camp-server-side-asif-fahad/internal/models"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClassStore is the slice of the class service the handler needs.
type ClassStore interface {
	ClassList(ctx context.Context) ([]models.Class, error)
	ApprovedList(ctx context.Context) ([]models.Class, error)
	PopularList(ctx context.Context) ([]models.Class, error)
	ListByInstructor(ctx context.Context, email string) ([]models.Class, error)
	Create(ctx context.Context, class *models.Class) (*models.InsertAck, error)
	SetStatus(ctx context.Context, id, status string) (*models.UpdateAck, error)
	SetFeedback(ctx context.Context, id, feedback string) (*models.UpdateAck, error)
	UpdateDetails(ctx context.Context, id string, update models.ClassUpdate) (*models.UpdateAck, error)
}

type ClassHandler struct {
	store ClassStore
}

func NewClassHandler(store ClassStore) *ClassHandler {
	return &ClassHandler{store: store}
}

func (h *ClassHandler) GetClasses(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.store.ClassList)
}

func (h *ClassHandler) GetApproved(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.store.ApprovedList)
}

func (h *ClassHandler) GetPopular(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.store.PopularList)
}

func (h *ClassHandler) list(w http.ResponseWriter, r *http.Request, fetch func(context.Context) ([]models.Class, error)) {
	classes, err := fetch(r.Context())
	if err != nil {
		log.Printf("Failed to fetch classes: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to fetch classes")
		return
	}

	respondJSON(w, http.StatusOK, classes)
}

// GetMyClasses lists the classes owned by the instructor email in the path.
// The instructor gate has already run.
func (h *ClassHandler) GetMyClasses(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	classes, err := h.store.ListByInstructor(r.Context(), email)
	if err != nil {
		log.Printf("Failed to fetch classes for %s: %v", email, err)
		respondError(w, http.StatusInternalServerError, "failed to fetch classes")
		return
	}

	respondJSON(w, http.StatusOK, classes)
}

func (h *ClassHandler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var class models.Class
	if err := json.NewDecoder(r.Body).Decode(&class); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if class.Name == "" || class.Email == "" {
		respondError(w, http.StatusBadRequest, "name and email are required")
		return
	}

	ack, err := h.store.Create(r.Context(), &class)
	if err != nil {
		log.Printf("Failed to create class: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to create class")
		return
	}

	respondJSON(w, http.StatusOK, ack)
}

// UpdateStatus approves or denies a class.
func (h *ClassHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := classID(w, r)
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Status == "" {
		respondError(w, http.StatusBadRequest, "status is required")
		return
	}

	ack, err := h.store.SetStatus(r.Context(), id, body.Status)
	if err != nil {
		log.Printf("Failed to update status for class %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "failed to update class")
		return
	}

	respondJSON(w, http.StatusOK, ack)
}

// UpdateClass overwrites the instructor-editable fields that are present in
// the payload and leaves the rest of the document alone.
func (h *ClassHandler) UpdateClass(w http.ResponseWriter, r *http.Request) {
	id, ok := classID(w, r)
	if !ok {
		return
	}

	var update models.ClassUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if update.Price == nil && update.Name == nil && update.Seats == nil && update.Photo == nil {
		respondError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	ack, err := h.store.UpdateDetails(r.Context(), id, update)
	if err != nil {
		log.Printf("Failed to update class %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "failed to update class")
		return
	}

	respondJSON(w, http.StatusOK, ack)
}

func (h *ClassHandler) UpdateFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := classID(w, r)
	if !ok {
		return
	}

	var body struct {
		Feedback string `json:"feedback"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Feedback == "" {
		respondError(w, http.StatusBadRequest, "feedback is required")
		return
	}

	ack, err := h.store.SetFeedback(r.Context(), id, body.Feedback)
	if err != nil {
		log.Printf("Failed to add feedback to class %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "failed to update class")
		return
	}

	respondJSON(w, http.StatusOK, ack)
}

func classID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := mux.Vars(r)["id"]
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		respondError(w, http.StatusBadRequest, "invalid class id")
		return "", false
	}
	return id, true
}
