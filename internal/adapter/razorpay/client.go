package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	domainErrors "github.com/inkandimagination/artstore/internal/domain/errors"
)

// ChargeHandle is the remote charge created for an order. The customer
// completes payment against it on the gateway side.
type ChargeHandle struct {
	ID       string
	Amount   int64
	Currency string
	Status   string
}

// Client exposes operations against the payment gateway.
type Client interface {
	// CreateOrder creates a remote charge handle. Amount is in minor
	// currency units; receipt carries the local order id.
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*ChargeHandle, error)
	// VerifySignature is a pure predicate over a payment callback. It never
	// errs and grants no authority to mutate state on its own.
	VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool
	// KeyID returns the public key identifier the frontend checkout needs.
	KeyID() string
}

// HTTPClient implements Client via the gateway REST API.
type HTTPClient struct {
	baseURL    *url.URL
	keyID      string
	keySecret  string
	httpClient *http.Client
	logger     *slog.Logger
}

type orderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// NewHTTPClient creates gateway client with the given call timeout.
func NewHTTPClient(baseURL, keyID, keySecret string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse razorpay url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("razorpay url must be absolute")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL:   parsed,
		keyID:     keyID,
		keySecret: keySecret,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// KeyID implements Client.
func (c *HTTPClient) KeyID() string {
	return c.keyID
}

// CreateOrder creates a remote charge handle for an order.
func (c *HTTPClient) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*ChargeHandle, error) {
	endpoint := *c.baseURL
	endpoint.Path = "/v1/orders"

	payload, err := json.Marshal(orderRequest{Amount: amount, Currency: currency, Receipt: receipt})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network failure and timeout alike: the order stays pending and the
		// client may retry charge creation.
		return nil, fmt.Errorf("%w: %w", domainErrors.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", domainErrors.ErrGatewayUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		c.logger.Error("razorpay order creation failed",
			slog.Int("status", resp.StatusCode),
			slog.String("receipt", receipt),
			slog.String("body", string(body)),
		)
		return nil, fmt.Errorf("%w: status %s", domainErrors.ErrGatewayUnavailable, resp.Status)
	}

	var data orderResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", domainErrors.ErrGatewayUnavailable, err)
	}
	if data.ID == "" {
		return nil, fmt.Errorf("%w: empty order id in response", domainErrors.ErrGatewayUnavailable)
	}

	return &ChargeHandle{ID: data.ID, Amount: data.Amount, Currency: data.Currency, Status: data.Status}, nil
}

// VerifySignature recomputes the callback HMAC over
// "{gatewayOrderID}|{gatewayPaymentID}" keyed by the key secret and compares
// it against the provided hex signature in constant time.
func (c *HTTPClient) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	if gatewayOrderID == "" || gatewayPaymentID == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	expectedRaw, _ := hex.DecodeString(expected)
	return hmac.Equal(expectedRaw, provided)
}
