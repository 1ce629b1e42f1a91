package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultStripeBaseURL = "https://api.stripe.com"

// StripeService creates PaymentIntents against Stripe's REST API.
type StripeService struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

func NewStripeService() *StripeService {
	baseURL := os.Getenv("STRIPE_BASE_URL")
	if baseURL == "" {
		baseURL = defaultStripeBaseURL
	}
	return &StripeService{
		secretKey: os.Getenv("PAYMENT_SECRET_KEY"),
		baseURL:   baseURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// CreatePaymentIntent requests a card PaymentIntent for an amount in cents
// and returns the client secret for the frontend to confirm.
func (s *StripeService) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", "usd")
	form.Add("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+s.secretKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", errors.New("stripe error: " + string(body))
	}

	var result struct {
		ClientSecret string `json:"client_secret"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	return result.ClientSecret, nil
}
