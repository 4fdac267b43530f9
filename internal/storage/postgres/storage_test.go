package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/inkandimagination/artstore/internal/domain/errors"
	"github.com/inkandimagination/artstore/internal/domain/model"
)

func newMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

// anyArgs returns n pgxmock.AnyArg matchers; pgxmock v3 compares argument
// counts even when no expected args are set, so parameterized expectations
// need one matcher per bound value.
func anyArgs(n int) []interface{} {
	args := make([]interface{}, n)
	for i := range args {
		args[i] = pgxmockv3.AnyArg()
	}
	return args
}

func expectSchema(mock pgxmockv3.PgxPoolIface) {
	tableStatements := []string{
		"CREATE TABLE IF NOT EXISTS artworks",
		"CREATE TABLE IF NOT EXISTS orders",
		"CREATE TABLE IF NOT EXISTS order_items",
		"CREATE TABLE IF NOT EXISTS contacts",
		"CREATE TABLE IF NOT EXISTS admins",
	}
	for _, stmt := range tableStatements {
		mock.ExpectExec(stmt).WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	}
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_artworks_category ON artworks").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_orders_status ON orders").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
}

func TestInitSchema(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	expectSchema(mock)
	if err := storage.initSchema(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInitSchemaExecError(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS artworks").WillReturnError(errors.New("boom"))
	if err := storage.initSchema(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

var orderColumnNames = []string{
	"id", "customer_name", "customer_email", "phone", "street", "city", "state", "zip_code", "country",
	"total_amount", "payment_status", "payment_method", "payment_reference", "gateway_order_id",
	"order_status", "shipping_status", "shipment_id", "tracking_number", "notes", "created_at", "updated_at",
}

func orderRow(id string, paymentStatus model.PaymentStatus, reference string) *pgxmockv3.Rows {
	now := time.Now()
	return pgxmockv3.NewRows(orderColumnNames).AddRow(
		id, "Jane Buyer", "jane@example.com", "+1 555 010 2030", "12 Gallery Row", "Portland", "OR", "97201", "USA",
		301.0, paymentStatus, model.PaymentMethodRazorpay, reference, "order_gw",
		model.OrderStatusProcessing, model.ShippingStatus(""), "", "", "", now, now,
	)
}

func itemRows(orderID string) *pgxmockv3.Rows {
	return pgxmockv3.NewRows([]string{"order_id", "artwork_id", "title", "quantity", "price"}).
		AddRow(orderID, int64(1), "Harbor Dusk", 2, 150.50)
}

func TestDecrementStockAppliesAllLines(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE artworks SET stock = stock -").WithArgs(int64(1), 2).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE artworks SET stock = stock -").WithArgs(int64(2), 1).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))

	err := storage.Artworks().DecrementStock(context.Background(), []model.OrderLine{
		{ArtworkID: 1, Quantity: 2},
		{ArtworkID: 2, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDecrementStockShortfallStopsAndReports(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE artworks SET stock = stock -").WithArgs(int64(1), 2).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	// The guard stock >= quantity refuses the second line.
	mock.ExpectExec("UPDATE artworks SET stock = stock -").WithArgs(int64(2), 5).WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))

	err := storage.Artworks().DecrementStock(context.Background(), []model.OrderLine{
		{ArtworkID: 1, Quantity: 2},
		{ArtworkID: 2, Quantity: 5},
	})
	if !errors.Is(err, domainErrors.ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock, got %v", err)
	}

	var shortfall domainErrors.InsufficientStockError
	if !errors.As(err, &shortfall) || shortfall.ArtworkID != 2 {
		t.Fatalf("expected artwork 2 in error, got %v", err)
	}
}

func TestCheckAvailabilityShortfall(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT stock FROM artworks WHERE id=").WithArgs(int64(1)).
		WillReturnRows(pgxmockv3.NewRows([]string{"stock"}).AddRow(1))

	err := storage.Artworks().CheckAvailability(context.Background(), []model.OrderLine{{ArtworkID: 1, Quantity: 3}})
	if !errors.Is(err, domainErrors.ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock, got %v", err)
	}
}

func TestCheckAvailabilityUnknownArtwork(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT stock FROM artworks WHERE id=").WithArgs(int64(9)).WillReturnError(pgx.ErrNoRows)

	err := storage.Artworks().CheckAvailability(context.Background(), []model.OrderLine{{ArtworkID: 9, Quantity: 1}})
	if !errors.Is(err, domainErrors.ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock, got %v", err)
	}
}

func TestOrderCreateInsertsItemsInTransaction(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").WithArgs(anyArgs(14)...).WillReturnRows(
		pgxmockv3.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectExec("INSERT INTO order_items").WithArgs(anyArgs(5)...).WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectCommit()

	order := &model.Order{
		ID:            "o-1",
		CustomerName:  "Jane Buyer",
		CustomerEmail: "jane@example.com",
		Phone:         "+1 555 010 2030",
		Address:       model.Address{Street: "12 Gallery Row", City: "Portland", State: "OR", ZipCode: "97201", Country: "USA"},
		TotalAmount:   301,
		PaymentStatus: model.PaymentStatusPending,
		PaymentMethod: model.PaymentMethodRazorpay,
		OrderStatus:   model.OrderStatusProcessing,
		Items:         []model.OrderItem{{ArtworkID: 1, Title: "Harbor Dusk", Quantity: 2, Price: 150.50}},
	}

	created, err := storage.Orders().Create(context.Background(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be populated")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderCreateRollsBackOnItemFailure(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").WithArgs(anyArgs(14)...).WillReturnRows(
		pgxmockv3.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectExec("INSERT INTO order_items").WithArgs(anyArgs(5)...).WillReturnError(errors.New("constraint"))
	mock.ExpectRollback()

	order := &model.Order{
		ID:    "o-1",
		Items: []model.OrderItem{{ArtworkID: 1, Title: "Harbor Dusk", Quantity: 2, Price: 150.50}},
	}
	if _, err := storage.Orders().Create(context.Background(), order); err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdatePaymentOutcomeFlipsPendingOrder(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("UPDATE orders SET payment_status=").
		WithArgs("o-1", model.PaymentStatusPaid, "pay_1").
		WillReturnRows(orderRow("o-1", model.PaymentStatusPaid, "pay_1"))
	mock.ExpectQuery("SELECT order_id, artwork_id, title, quantity, price").WithArgs(anyArgs(1)...).WillReturnRows(itemRows("o-1"))

	order, err := storage.Orders().UpdatePaymentOutcome(context.Background(), "o-1", model.PaymentStatusPaid, "pay_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.PaymentStatus != model.PaymentStatusPaid || order.PaymentReference != "pay_1" {
		t.Fatalf("unexpected order %+v", order)
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected items loaded, got %d", len(order.Items))
	}
}

func TestUpdatePaymentOutcomeNonPendingIsInvalidTransition(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	// The conditional update matches no row, so the current record is
	// re-fetched for the caller to inspect.
	mock.ExpectQuery("UPDATE orders SET payment_status=").
		WithArgs("o-1", model.PaymentStatusPaid, "pay_2").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("SELECT id, customer_name, customer_email").
		WithArgs("o-1").
		WillReturnRows(orderRow("o-1", model.PaymentStatusPaid, "pay_1"))
	mock.ExpectQuery("SELECT order_id, artwork_id, title, quantity, price").WithArgs(anyArgs(1)...).WillReturnRows(itemRows("o-1"))

	order, err := storage.Orders().UpdatePaymentOutcome(context.Background(), "o-1", model.PaymentStatusPaid, "pay_2")
	if !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
	if order == nil || order.PaymentReference != "pay_1" {
		t.Fatalf("expected current record alongside error, got %+v", order)
	}
}

func TestSetChargeHandleRequiresPendingOrder(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE orders SET gateway_order_id=").
		WithArgs("o-1", "order_gw").
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))

	if err := storage.Orders().SetChargeHandle(context.Background(), "o-1", "order_gw"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateStatusEnforcesTransitionWhitelist(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT payment_status FROM orders WHERE id=").
		WithArgs("o-1").
		WillReturnRows(pgxmockv3.NewRows([]string{"payment_status"}).AddRow(model.PaymentStatusFailed))
	mock.ExpectRollback()

	_, err := storage.Orders().UpdateStatus(context.Background(), "o-1", "", model.PaymentStatusPaid, "")
	if !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
}

func TestUpdateStatusAppliesEdits(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT payment_status FROM orders WHERE id=").
		WithArgs("o-1").
		WillReturnRows(pgxmockv3.NewRows([]string{"payment_status"}).AddRow(model.PaymentStatusPaid))
	mock.ExpectExec("UPDATE orders SET order_status=").WithArgs(anyArgs(2)...).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE orders SET tracking_number=").WithArgs(anyArgs(2)...).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectQuery("SELECT id, customer_name, customer_email").
		WithArgs(anyArgs(1)...).
		WillReturnRows(orderRow("o-1", model.PaymentStatusPaid, "pay_1"))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT order_id, artwork_id, title, quantity, price").WithArgs(anyArgs(1)...).WillReturnRows(itemRows("o-1"))

	order, err := storage.Orders().UpdateStatus(context.Background(), "o-1", model.OrderStatusShipped, "", "TRACK-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order == nil || len(order.Items) != 1 {
		t.Fatalf("expected order with items, got %+v", order)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSelectShipmentRetriesClaimsBatch(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	row := orderRow("o-1", model.PaymentStatusPaid, "pay_1")
	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE SKIP LOCKED").WithArgs(5).WillReturnRows(row)
	mock.ExpectExec("UPDATE orders SET shipping_attempts = shipping_attempts").
		WithArgs("o-1").
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT order_id, artwork_id, title, quantity, price").WithArgs(anyArgs(1)...).WillReturnRows(itemRows("o-1"))

	orders, err := storage.Orders().SelectShipmentRetries(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != "o-1" {
		t.Fatalf("unexpected batch %+v", orders)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAdminCreateDuplicateEmail(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO admins").
		WithArgs("Ari", "ari@example.com", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	if _, err := storage.Admins().Create(context.Background(), "Ari", "ari@example.com", "hash"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestAdminGetByEmailNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, name, email, password_hash, created_at FROM admins WHERE email=").
		WithArgs("ghost@example.com").
		WillReturnError(pgx.ErrNoRows)

	if _, err := storage.Admins().GetByEmail(context.Background(), "ghost@example.com"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestArtworkDeleteNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM artworks WHERE id=").
		WithArgs(int64(7)).
		WillReturnResult(pgxmockv3.NewResult("DELETE", 0))

	if err := storage.Artworks().Delete(context.Background(), 7); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestContactCreateDefaultsStatusNew(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO contacts").
		WithArgs("A Visitor", "visitor@example.com", "Hello", model.ContactStatusNew).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(1), time.Now()))

	contact, err := storage.Contacts().Create(context.Background(), &model.Contact{
		Name: "A Visitor", Email: "visitor@example.com", Message: "Hello",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contact.Status != model.ContactStatusNew {
		t.Fatalf("expected status new, got %s", contact.Status)
	}
}

func TestPaidRevenue(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(pgxmockv3.NewRows([]string{"sum"}).AddRow(451.5))

	revenue, err := storage.Orders().PaidRevenue(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if revenue != 451.5 {
		t.Fatalf("unexpected revenue %v", revenue)
	}
}
