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

// CartStore is the slice of the cart service the handler needs.
type CartStore interface {
	CartList(ctx context.Context) ([]models.CartItem, error)
	ListForUser(ctx context.Context, email string) ([]models.CartItem, error)
	Add(ctx context.Context, item *models.CartItem) (*models.InsertAck, error)
	Remove(ctx context.Context, id string) (*models.DeleteAck, error)
}

type CartHandler struct {
	store CartStore
}

func NewCartHandler(store CartStore) *CartHandler {
	return &CartHandler{store: store}
}

func (h *CartHandler) GetCarts(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.CartList(r.Context())
	if err != nil {
		log.Printf("Failed to fetch carts: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to fetch carts")
		return
	}

	respondJSON(w, http.StatusOK, items)
}

// AddToCart stores a selected class. Selecting the same class twice is
// acknowledged with a rejection message instead of a second insert.
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if item.ID.IsZero() || item.UserEmail == "" {
		respondError(w, http.StatusBadRequest, "_id and userEmail are required")
		return
	}

	ack, err := h.store.Add(r.Context(), &item)
	if errors.Is(err, services.ErrClassSelected) {
		respondJSON(w, http.StatusOK, map[string]string{"message": "Class already Selected"})
		return
	}
	if err != nil {
		log.Printf("Failed to add to cart: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to add to cart")
		return
	}

	respondJSON(w, http.StatusOK, ack)
}

func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		respondError(w, http.StatusBadRequest, "invalid cart id")
		return
	}

	ack, err := h.store.Remove(r.Context(), id)
	if err != nil {
		log.Printf("Failed to remove cart item %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "failed to remove cart item")
		return
	}

	respondJSON(w, http.StatusOK, ack)
}

// GetSelected lists the caller's own cart.
func (h *CartHandler) GetSelected(w http.ResponseWriter, r *http.Request) {
	email, ok := ownEmail(w, r)
	if !ok {
		return
	}

	items, err := h.store.ListForUser(r.Context(), email)
	if err != nil {
		log.Printf("Failed to fetch cart for %s: %v", email, err)
		respondError(w, http.StatusInternalServerError, "failed to fetch cart")
		return
	}

	respondJSON(w, http.StatusOK, items)
}
