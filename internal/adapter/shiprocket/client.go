package shiprocket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	domainErrors "github.com/inkandimagination/artstore/internal/domain/errors"
	"github.com/inkandimagination/artstore/internal/domain/model"
)

// Booking is the result of a successful shipment creation.
type Booking struct {
	OrderID    string
	ShipmentID string
}

// Client exposes operations against the logistics gateway.
type Client interface {
	CreateShipment(ctx context.Context, order *model.Order, artworks map[int64]*model.Artwork) (*Booking, error)
}

// HTTPClient implements Client via the Shiprocket external API.
type HTTPClient struct {
	baseURL        *url.URL
	email          string
	password       string
	pickupLocation string
	httpClient     *http.Client
	logger         *slog.Logger

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// Issued tokens are valid for ten days; re-authenticate ahead of expiry.
const tokenLifetime = 9 * 24 * time.Hour

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type shipmentItem struct {
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Units        int     `json:"units"`
	SellingPrice float64 `json:"selling_price"`
	HSN          string  `json:"hsn"`
}

type shipmentRequest struct {
	OrderID             string         `json:"order_id"`
	OrderDate           string         `json:"order_date"`
	PickupLocation      string         `json:"pickup_location"`
	BillingCustomerName string         `json:"billing_customer_name"`
	BillingLastName     string         `json:"billing_last_name"`
	BillingAddress      string         `json:"billing_address"`
	BillingCity         string         `json:"billing_city"`
	BillingPincode      string         `json:"billing_pincode"`
	BillingState        string         `json:"billing_state"`
	BillingCountry      string         `json:"billing_country"`
	BillingEmail        string         `json:"billing_email"`
	BillingPhone        string         `json:"billing_phone"`
	ShippingIsBilling   bool           `json:"shipping_is_billing"`
	OrderItems          []shipmentItem `json:"order_items"`
	PaymentMethod       string         `json:"payment_method"`
	SubTotal            float64        `json:"sub_total"`
	Length              float64        `json:"length"`
	Breadth             float64        `json:"breadth"`
	Height              float64        `json:"height"`
	Weight              float64        `json:"weight"`
}

type shipmentResponse struct {
	OrderID    json.Number `json:"order_id"`
	ShipmentID json.Number `json:"shipment_id"`
}

// NewHTTPClient creates logistics client with the given call timeout.
func NewHTTPClient(baseURL, email, password, pickupLocation string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse shiprocket url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("shiprocket url must be absolute")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL:        parsed,
		email:          email,
		password:       password,
		pickupLocation: pickupLocation,
		logger:         logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func (c *HTTPClient) authenticate(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	payload, err := json.Marshal(loginRequest{Email: c.email, Password: c.password})
	if err != nil {
		return "", err
	}

	endpoint := *c.baseURL
	endpoint.Path = endpoint.Path + "/auth/login"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: auth: %w", domainErrors.ErrShipmentFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("shiprocket auth failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return "", fmt.Errorf("%w: auth status %s", domainErrors.ErrShipmentFailed, resp.Status)
	}

	var data loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("%w: decode auth response: %w", domainErrors.ErrShipmentFailed, err)
	}
	if data.Token == "" {
		return "", fmt.Errorf("%w: empty auth token", domainErrors.ErrShipmentFailed)
	}

	c.token = data.Token
	c.tokenExpiry = time.Now().Add(tokenLifetime)
	return c.token, nil
}

// Package aggregates the physical package characteristics of an order.
// Weight is summed per item in grams; length and breadth are the bounding
// maximums across items; heights stack.
type Package struct {
	WeightKG float64
	Length   float64
	Breadth  float64
	Height   float64
}

// ComputePackage derives package weight and dimensions from order items and
// their artwork records. Unknown artworks contribute nothing.
func ComputePackage(items []model.OrderItem, artworks map[int64]*model.Artwork) Package {
	var pkg Package
	var grams float64
	for _, item := range items {
		artwork, ok := artworks[item.ArtworkID]
		if !ok {
			continue
		}
		grams += artwork.WeightGrams * float64(item.Quantity)
		if artwork.Dimensions.Length > pkg.Length {
			pkg.Length = artwork.Dimensions.Length
		}
		if artwork.Dimensions.Breadth > pkg.Breadth {
			pkg.Breadth = artwork.Dimensions.Breadth
		}
		pkg.Height += artwork.Dimensions.Height * float64(item.Quantity)
	}
	pkg.WeightKG = grams / 1000
	return pkg
}

// SplitName separates a full customer name into first and last parts. A
// single-word name is used for both.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	first = parts[0]
	last = strings.Join(parts[1:], " ")
	if last == "" {
		last = first
	}
	return first, last
}

// CreateShipment books a shipment for a paid order.
func (c *HTTPClient) CreateShipment(ctx context.Context, order *model.Order, artworks map[int64]*model.Artwork) (*Booking, error) {
	token, err := c.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	pkg := ComputePackage(order.Items, artworks)
	first, last := SplitName(order.CustomerName)

	items := make([]shipmentItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, shipmentItem{
			Name:         item.Title,
			SKU:          fmt.Sprintf("%d", item.ArtworkID),
			Units:        item.Quantity,
			SellingPrice: item.Price,
		})
	}

	payload, err := json.Marshal(shipmentRequest{
		OrderID:             order.ID,
		OrderDate:           order.CreatedAt.Format("2006-01-02"),
		PickupLocation:      c.pickupLocation,
		BillingCustomerName: first,
		BillingLastName:     last,
		BillingAddress:      order.Address.Street,
		BillingCity:         order.Address.City,
		BillingPincode:      order.Address.ZipCode,
		BillingState:        order.Address.State,
		BillingCountry:      order.Address.Country,
		BillingEmail:        order.CustomerEmail,
		BillingPhone:        order.Phone,
		ShippingIsBilling:   true,
		OrderItems:          items,
		PaymentMethod:       "Prepaid",
		SubTotal:            order.TotalAmount,
		Length:              pkg.Length,
		Breadth:             pkg.Breadth,
		Height:              pkg.Height,
		Weight:              pkg.WeightKG,
	})
	if err != nil {
		return nil, err
	}

	endpoint := *c.baseURL
	endpoint.Path = endpoint.Path + "/orders/create/adhoc"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domainErrors.ErrShipmentFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", domainErrors.ErrShipmentFailed, err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		c.logger.Error("shiprocket booking failed",
			slog.Int("status", resp.StatusCode),
			slog.String("order_id", order.ID),
			slog.String("body", string(body)),
		)
		return nil, fmt.Errorf("%w: status %s", domainErrors.ErrShipmentFailed, resp.Status)
	}

	var data shipmentResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", domainErrors.ErrShipmentFailed, err)
	}

	return &Booking{OrderID: data.OrderID.String(), ShipmentID: data.ShipmentID.String()}, nil
}
