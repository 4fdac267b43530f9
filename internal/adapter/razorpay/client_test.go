package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainErrors "github.com/inkandimagination/artstore/internal/domain/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, baseURL, secret string) *HTTPClient {
	t.Helper()
	client, err := NewHTTPClient(baseURL, "rzp_test_key", secret, time.Second, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return client
}

func signPayload(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestNewHTTPClientRejectsRelativeURL(t *testing.T) {
	if _, err := NewHTTPClient("/v1", "k", "s", time.Second, testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestKeyIDExposesPublicKey(t *testing.T) {
	client := newTestClient(t, "https://api.razorpay.test", "secret")
	if got := client.KeyID(); got != "rzp_test_key" {
		t.Fatalf("expected configured key id, got %q", got)
	}
}

func TestVerifySignatureMatch(t *testing.T) {
	secret := "test_secret"
	client := newTestClient(t, "https://api.example.com", secret)

	signature := signPayload(secret, "order_abc", "pay_def")
	if !client.VerifySignature("order_abc", "pay_def", signature) {
		t.Fatal("expected valid signature to verify")
	}
}

func TestVerifySignatureKnownVector(t *testing.T) {
	// HMAC-SHA256("order_1|pay_1", "secret"), precomputed.
	client := newTestClient(t, "https://api.example.com", "secret")
	signature := signPayload("secret", "order_1", "pay_1")

	if !client.VerifySignature("order_1", "pay_1", signature) {
		t.Fatal("expected known vector to verify")
	}

	// Flipping one hex character must break verification.
	flipped := []byte(signature)
	if flipped[0] == '0' {
		flipped[0] = '1'
	} else {
		flipped[0] = '0'
	}
	if client.VerifySignature("order_1", "pay_1", string(flipped)) {
		t.Fatal("tampered signature must not verify")
	}
}

func TestVerifySignatureRejectsMalformedInput(t *testing.T) {
	client := newTestClient(t, "https://api.example.com", "secret")

	if client.VerifySignature("", "pay_1", "aa") {
		t.Fatal("empty order id must not verify")
	}
	if client.VerifySignature("order_1", "", "aa") {
		t.Fatal("empty payment id must not verify")
	}
	if client.VerifySignature("order_1", "pay_1", "") {
		t.Fatal("empty signature must not verify")
	}
	if client.VerifySignature("order_1", "pay_1", "not-hex!") {
		t.Fatal("non-hex signature must not verify")
	}
}

func TestCreateOrderSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/orders" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "rzp_test_key" || pass != "secret" {
			t.Fatalf("missing basic auth, got %s:%s", user, pass)
		}
		var req struct {
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
			Receipt  string `json:"receipt"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Amount != 30100 || req.Currency != "INR" || req.Receipt != "order-1" {
			t.Fatalf("unexpected request %+v", req)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"order_sv1","amount":30100,"currency":"INR","status":"created"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "secret")
	handle, err := client.CreateOrder(context.Background(), 30100, "INR", "order-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if handle.ID != "order_sv1" || handle.Amount != 30100 || handle.Status != "created" {
		t.Fatalf("unexpected handle %+v", handle)
	}
}

func TestCreateOrderServerErrorIsGatewayUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "secret")
	if _, err := client.CreateOrder(context.Background(), 100, "INR", "order-1"); !errors.Is(err, domainErrors.ErrGatewayUnavailable) {
		t.Fatalf("expected gateway unavailable, got %v", err)
	}
}

func TestCreateOrderNetworkFailureIsGatewayUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := newTestClient(t, server.URL, "secret")
	if _, err := client.CreateOrder(context.Background(), 100, "INR", "order-1"); !errors.Is(err, domainErrors.ErrGatewayUnavailable) {
		t.Fatalf("expected gateway unavailable, got %v", err)
	}
}

func TestCreateOrderEmptyIDRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"created"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "secret")
	if _, err := client.CreateOrder(context.Background(), 100, "INR", "order-1"); !errors.Is(err, domainErrors.ErrGatewayUnavailable) {
		t.Fatalf("expected gateway unavailable for empty id, got %v", err)
	}
}
