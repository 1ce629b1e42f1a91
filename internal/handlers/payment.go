package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/asif-fahad/b7a12-summer-camp-server-side-asif-fahad/internal/models"
	"github.com/asif-fahad/b7a12-summer-camp-server-side-asif-fahad/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStore is the slice of the payment service the handler needs.
type PaymentStore interface {
	PaymentsByEmail(ctx context.Context, email string) ([]models.Payment, error)
	Record(ctx context.Context, payment *models.Payment) (*models.PaymentAck, error)
	EnrolledClasses(ctx context.Context, email string) ([]models.Class, error)
}

// PaymentGateway creates a payment intent for an amount in cents.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64) (string, error)
}

type PaymentHandler struct {
	store   PaymentStore
	gateway PaymentGateway
}

func NewPaymentHandler(store PaymentStore, gateway PaymentGateway) *PaymentHandler {
	return &PaymentHandler{store: store, gateway: gateway}
}

// CreatePaymentIntent converts the decimal price to cents and asks the
// gateway for a client secret.
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Price <= 0 {
		respondError(w, http.StatusBadRequest, "price must be positive")
		return
	}

	amount := int64(body.Price * 100)
	clientSecret, err := h.gateway.CreatePaymentIntent(r.Context(), amount)
	if err != nil {
		log.Printf("Failed to create payment intent: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to create payment intent")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

// GetPayments lists the caller's own payment history, newest first.
func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	email, ok := ownEmail(w, r)
	if !ok {
		return
	}

	payments, err := h.store.PaymentsByEmail(r.Context(), email)
	if err != nil {
		log.Printf("Failed to fetch payments for %s: %v", email, err)
		respondError(w, http.StatusInternalServerError, "failed to fetch payments")
		return
	}

	respondJSON(w, http.StatusOK, payments)
}

// RecordPayment persists a purchase and reports the three sub-results. A
// sold-out class yields 409 and leaves no payment record behind.
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payment.Email == "" {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}
	if _, err := primitive.ObjectIDFromHex(payment.ClassID); err != nil {
		respondError(w, http.StatusBadRequest, "invalid classId")
		return
	}
	if _, err := primitive.ObjectIDFromHex(payment.CartItems); err != nil {
		respondError(w, http.StatusBadRequest, "invalid cartItems")
		return
	}

	ack, err := h.store.Record(r.Context(), &payment)
	if errors.Is(err, services.ErrNoSeats) {
		respondError(w, http.StatusConflict, "no seats available")
		return
	}
	if err != nil {
		log.Printf("Failed to record payment: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to record payment")
		return
	}

	respondJSON(w, http.StatusOK, ack)
}

// GetEnrolled lists the classes the caller has paid for.
func (h *PaymentHandler) GetEnrolled(w http.ResponseWriter, r *http.Request) {
	email, ok := ownEmail(w, r)
	if !ok {
		return
	}

	classes, err := h.store.EnrolledClasses(r.Context(), email)
	if err != nil {
		log.Printf("Failed to fetch enrolled classes for %s: %v", email, err)
		respondError(w, http.StatusInternalServerError, "failed to fetch enrolled classes")
		return
	}

	respondJSON(w, http.StatusOK, classes)
}
