package shiprocket

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	domainErrors "github.com/inkandimagination/artstore/internal/domain/errors"
	"github.com/inkandimagination/artstore/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestComputePackage(t *testing.T) {
	items := []model.OrderItem{
		{ArtworkID: 1, Quantity: 2},
		{ArtworkID: 2, Quantity: 1},
		{ArtworkID: 99, Quantity: 5},
	}
	artworks := map[int64]*model.Artwork{
		1: {ID: 1, WeightGrams: 800, Dimensions: model.Dimensions{Length: 50, Breadth: 40, Height: 3}},
		2: {ID: 2, WeightGrams: 400, Dimensions: model.Dimensions{Length: 70, Breadth: 30, Height: 2}},
	}

	pkg := ComputePackage(items, artworks)
	if pkg.WeightKG != 2.0 {
		t.Fatalf("expected 2.0 kg, got %v", pkg.WeightKG)
	}
	if pkg.Length != 70 || pkg.Breadth != 40 {
		t.Fatalf("expected bounding 70x40, got %vx%v", pkg.Length, pkg.Breadth)
	}
	if pkg.Height != 8 {
		t.Fatalf("expected stacked height 8, got %v", pkg.Height)
	}
}

func TestComputePackageEmpty(t *testing.T) {
	pkg := ComputePackage(nil, nil)
	if pkg.WeightKG != 0 || pkg.Length != 0 || pkg.Breadth != 0 || pkg.Height != 0 {
		t.Fatalf("expected zero package, got %+v", pkg)
	}
}

func TestSplitName(t *testing.T) {
	cases := []struct {
		full  string
		first string
		last  string
	}{
		{"Jane Buyer", "Jane", "Buyer"},
		{"Jane Q Buyer", "Jane", "Q Buyer"},
		{"Prince", "Prince", "Prince"},
		{"", "", ""},
	}
	for _, c := range cases {
		first, last := SplitName(c.full)
		if first != c.first || last != c.last {
			t.Fatalf("SplitName(%q) = %q, %q, want %q, %q", c.full, first, last, c.first, c.last)
		}
	}
}

func testOrder() *model.Order {
	return &model.Order{
		ID:            "order-1",
		CustomerName:  "Jane Buyer",
		CustomerEmail: "jane@example.com",
		Phone:         "+1 555 010 2030",
		Address: model.Address{
			Street:  "12 Gallery Row",
			City:    "Portland",
			State:   "OR",
			ZipCode: "97201",
			Country: "USA",
		},
		TotalAmount: 301,
		Items: []model.OrderItem{
			{ArtworkID: 1, Title: "Harbor Dusk", Quantity: 2, Price: 150.50},
		},
		CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestCreateShipmentBooksAndCachesToken(t *testing.T) {
	var logins int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			atomic.AddInt32(&logins, 1)
			var req struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode login: %v", err)
			}
			if req.Email != "ship@example.com" || req.Password != "pw" {
				t.Fatalf("unexpected credentials %+v", req)
			}
			_, _ = w.Write([]byte(`{"token":"tok-1"}`))
		case "/orders/create/adhoc":
			if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
				t.Fatalf("unexpected auth header %q", got)
			}
			var req map[string]any
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode shipment: %v", err)
			}
			if req["billing_customer_name"] != "Jane" || req["billing_last_name"] != "Buyer" {
				t.Fatalf("unexpected name split %v %v", req["billing_customer_name"], req["billing_last_name"])
			}
			if req["payment_method"] != "Prepaid" {
				t.Fatalf("expected Prepaid, got %v", req["payment_method"])
			}
			if req["weight"] != 1.6 {
				t.Fatalf("expected 1.6 kg, got %v", req["weight"])
			}
			_, _ = w.Write([]byte(`{"order_id":12345,"shipment_id":67890}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "ship@example.com", "pw", "Studio", time.Second, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	artworks := map[int64]*model.Artwork{1: {ID: 1, WeightGrams: 800}}

	booking, err := client.CreateShipment(context.Background(), testOrder(), artworks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.OrderID != "12345" || booking.ShipmentID != "67890" {
		t.Fatalf("unexpected booking %+v", booking)
	}

	// Second call reuses the cached token.
	if _, err := client.CreateShipment(context.Background(), testOrder(), artworks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := atomic.LoadInt32(&logins); got != 1 {
		t.Fatalf("expected one login, got %d", got)
	}
}

func TestCreateShipmentAuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "ship@example.com", "pw", "Studio", time.Second, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := client.CreateShipment(context.Background(), testOrder(), nil); !errors.Is(err, domainErrors.ErrShipmentFailed) {
		t.Fatalf("expected shipment failed, got %v", err)
	}
}

func TestCreateShipmentBookingFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/login" {
			_, _ = w.Write([]byte(`{"token":"tok-1"}`))
			return
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "ship@example.com", "pw", "Studio", time.Second, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := client.CreateShipment(context.Background(), testOrder(), nil); !errors.Is(err, domainErrors.ErrShipmentFailed) {
		t.Fatalf("expected shipment failed, got %v", err)
	}
}
