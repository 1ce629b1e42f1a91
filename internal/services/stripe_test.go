package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripeService_CreatePaymentIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "5000", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, []string{"card"}, r.PostForm["payment_method_types[]"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_456"}`))
	}))
	defer srv.Close()

	t.Setenv("PAYMENT_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_BASE_URL", srv.URL)

	secret, err := NewStripeService().CreatePaymentIntent(context.Background(), 5000)
	assert.NoError(t, err)
	assert.Equal(t, "pi_123_secret_456", secret)
}

func TestStripeService_CreatePaymentIntentError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid API Key provided"}}`))
	}))
	defer srv.Close()

	t.Setenv("PAYMENT_SECRET_KEY", "sk_bad")
	t.Setenv("STRIPE_BASE_URL", srv.URL)

	_, err := NewStripeService().CreatePaymentIntent(context.Background(), 5000)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API Key")
}
