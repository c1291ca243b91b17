package infra

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// PaystackInitRequest initializes a charge. Amount is sent in the smallest
// currency unit (kobo), per the gateway's API.
type PaystackInitRequest struct {
	Email    string `json:"email"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// PaystackInitData is the useful payload of a successful initialization.
type PaystackInitData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// PaystackVerifyData is the useful payload of a verification response.
type PaystackVerifyData struct {
	Reference string `json:"reference"`
	Status    string `json:"status"` // "success" | "failed" | "abandoned"
	Amount    int64  `json:"amount"`
	PaidAt    string `json:"paid_at"`
}

type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// PaystackClient is a thin HTTP client for the payment gateway. All gateway
// failures surface as errors here; retry/fast-fail policy lives in the
// circuit breaker wrapping the calls.
type PaystackClient struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewPaystackClient(baseURL, secretKey string) *PaystackClient {
	return &PaystackClient{
		baseURL:    baseURL,
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// InitializeTransaction starts a charge and returns the authorization URL the
// frontend redirects the customer to.
func (c *PaystackClient) InitializeTransaction(ctx context.Context, email string, amount decimal.Decimal) (*PaystackInitData, error) {
	payload := PaystackInitRequest{
		Email:    email,
		Amount:   amount.Mul(decimal.NewFromInt(100)).IntPart(),
		Currency: "NGN",
	}
	var data PaystackInitData
	if err := c.post(ctx, "/transaction/initialize", payload, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// VerifyTransaction fetches the authoritative status for a reference.
func (c *PaystackClient) VerifyTransaction(ctx context.Context, reference string) (*PaystackVerifyData, error) {
	var data PaystackVerifyData
	if err := c.get(ctx, "/transaction/verify/"+reference, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *PaystackClient) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("paystack: marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("paystack: create request: %w", err)
	}
	return c.do(req, out)
}

func (c *PaystackClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("paystack: create request: %w", err)
	}
	return c.do(req, out)
}

func (c *PaystackClient) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("paystack: gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	var envelope paystackEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("paystack: decode response: %w", err)
	}
	if resp.StatusCode >= 300 || !envelope.Status {
		return fmt.Errorf("paystack: %s (HTTP %d)", envelope.Message, resp.StatusCode)
	}
	return json.Unmarshal(envelope.Data, out)
}

// VerifyWebhookSignature checks the x-paystack-signature header: an
// HMAC-SHA512 of the raw request body keyed with the shared secret.
// Comparison is constant-time.
func VerifyWebhookSignature(secretKey string, body []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(secretKey))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
