package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/inkandimagination/artstore/internal/domain/errors"
	"github.com/inkandimagination/artstore/internal/domain/model"
	"github.com/inkandimagination/artstore/internal/domain/repository"
)

// Pool is the subset of pgxpool.Pool the storage layer depends on. Narrowed
// so tests can substitute a pgxmock pool.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type artworkRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type contactRepository struct {
	storage *Storage
}

type adminRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Artworks() repository.ArtworkRepository {
	return &artworkRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Contacts() repository.ContactRepository {
	return &contactRepository{storage: s}
}

func (s *Storage) Admins() repository.AdminRepository {
	return &adminRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS artworks (
            id SERIAL PRIMARY KEY,
            title TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            category TEXT NOT NULL DEFAULT '',
            price DOUBLE PRECISION NOT NULL CHECK (price >= 0),
            image_url TEXT NOT NULL DEFAULT '',
            stock INT NOT NULL DEFAULT 1 CHECK (stock >= 0),
            dim_length DOUBLE PRECISION NOT NULL DEFAULT 0,
            dim_breadth DOUBLE PRECISION NOT NULL DEFAULT 0,
            dim_height DOUBLE PRECISION NOT NULL DEFAULT 0,
            dim_unit TEXT NOT NULL DEFAULT 'cm',
            weight_grams DOUBLE PRECISION NOT NULL DEFAULT 0,
            medium TEXT NOT NULL DEFAULT '',
            featured BOOLEAN NOT NULL DEFAULT FALSE,
            sold BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            customer_name TEXT NOT NULL,
            customer_email TEXT NOT NULL,
            phone TEXT NOT NULL,
            street TEXT NOT NULL,
            city TEXT NOT NULL,
            state TEXT NOT NULL,
            zip_code TEXT NOT NULL,
            country TEXT NOT NULL DEFAULT 'USA',
            total_amount DOUBLE PRECISION NOT NULL CHECK (total_amount >= 0),
            payment_status TEXT NOT NULL DEFAULT 'pending',
            payment_method TEXT NOT NULL DEFAULT 'razorpay',
            payment_reference TEXT NOT NULL DEFAULT '',
            gateway_order_id TEXT NOT NULL DEFAULT '',
            order_status TEXT NOT NULL DEFAULT 'processing',
            shipping_status TEXT NOT NULL DEFAULT '',
            shipment_id TEXT NOT NULL DEFAULT '',
            tracking_number TEXT NOT NULL DEFAULT '',
            notes TEXT NOT NULL DEFAULT '',
            shipping_attempts INT NOT NULL DEFAULT 0,
            shipping_next_retry_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id TEXT NOT NULL REFERENCES orders(id),
            artwork_id BIGINT NOT NULL,
            title TEXT NOT NULL,
            quantity INT NOT NULL CHECK (quantity >= 1),
            price DOUBLE PRECISION NOT NULL CHECK (price >= 0)
        )`,
		`CREATE TABLE IF NOT EXISTS contacts (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL,
            message TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'new',
            replied BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS admins (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_artworks_category ON artworks(category, price)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(order_status, payment_status)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- ArtworkRepository implementation ---

const artworkColumns = `id, title, description, category, price, image_url, stock,
    dim_length, dim_breadth, dim_height, dim_unit, weight_grams, medium, featured, sold,
    created_at, updated_at`

func scanArtwork(row pgx.Row) (*model.Artwork, error) {
	var a model.Artwork
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Category, &a.Price, &a.ImageURL, &a.Stock,
		&a.Dimensions.Length, &a.Dimensions.Breadth, &a.Dimensions.Height, &a.Dimensions.Unit,
		&a.WeightGrams, &a.Medium, &a.Featured, &a.Sold, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *artworkRepository) Create(ctx context.Context, artwork *model.Artwork) (*model.Artwork, error) {
	const query = `INSERT INTO artworks
        (title, description, category, price, image_url, stock,
         dim_length, dim_breadth, dim_height, dim_unit, weight_grams, medium, featured, sold)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
        RETURNING id, created_at, updated_at`
	a := *artwork
	err := r.storage.pool.QueryRow(ctx, query,
		a.Title, a.Description, a.Category, a.Price, a.ImageURL, a.Stock,
		a.Dimensions.Length, a.Dimensions.Breadth, a.Dimensions.Height, a.Dimensions.Unit,
		a.WeightGrams, a.Medium, a.Featured, a.Sold,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *artworkRepository) GetByID(ctx context.Context, id int64) (*model.Artwork, error) {
	query := `SELECT ` + artworkColumns + ` FROM artworks WHERE id=$1`
	return scanArtwork(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *artworkRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*model.Artwork, error) {
	query := `SELECT ` + artworkColumns + ` FROM artworks WHERE id = ANY($1)`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64]*model.Artwork, len(ids))
	for rows.Next() {
		a, err := scanArtwork(rows)
		if err != nil {
			return nil, err
		}
		result[a.ID] = a
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

var artworkSortColumns = map[string]string{
	"createdAt":  "created_at ASC",
	"-createdAt": "created_at DESC",
	"price":      "price ASC",
	"-price":     "price DESC",
	"stock":      "stock ASC",
	"-stock":     "stock DESC",
	"title":      "title ASC",
	"-title":     "title DESC",
}

func (r *artworkRepository) List(ctx context.Context, filter model.ArtworkFilter) ([]model.Artwork, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category=$%d", len(args)))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conditions = append(conditions, fmt.Sprintf("price>=$%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conditions = append(conditions, fmt.Sprintf("price<=$%d", len(args)))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		conditions = append(conditions, fmt.Sprintf("featured=$%d", len(args)))
	}

	query := `SELECT ` + artworkColumns + ` FROM artworks`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	orderBy, ok := artworkSortColumns[filter.Sort]
	if !ok {
		orderBy = "created_at DESC"
	}
	query += " ORDER BY " + orderBy

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Artwork
	for rows.Next() {
		a, err := scanArtwork(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *artworkRepository) Update(ctx context.Context, artwork *model.Artwork) (*model.Artwork, error) {
	const query = `UPDATE artworks SET
        title=$2, description=$3, category=$4, price=$5, image_url=$6, stock=$7,
        dim_length=$8, dim_breadth=$9, dim_height=$10, dim_unit=$11,
        weight_grams=$12, medium=$13, featured=$14, sold=$15, updated_at=NOW()
        WHERE id=$1
        RETURNING created_at, updated_at`
	a := *artwork
	err := r.storage.pool.QueryRow(ctx, query, a.ID,
		a.Title, a.Description, a.Category, a.Price, a.ImageURL, a.Stock,
		a.Dimensions.Length, a.Dimensions.Breadth, a.Dimensions.Height, a.Dimensions.Unit,
		a.WeightGrams, a.Medium, a.Featured, a.Sold,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *artworkRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM artworks WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *artworkRepository) LowStock(ctx context.Context, threshold, limit int) ([]model.Artwork, error) {
	query := `SELECT ` + artworkColumns + ` FROM artworks WHERE stock <= $1 ORDER BY stock LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, threshold, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Artwork
	for rows.Next() {
		a, err := scanArtwork(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *artworkRepository) CategoryCounts(ctx context.Context) ([]model.CategoryCount, error) {
	const query = `SELECT category, COUNT(*) FROM artworks GROUP BY category ORDER BY COUNT(*) DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CategoryCount
	for rows.Next() {
		var c model.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *artworkRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM artworks`).Scan(&count)
	return count, err
}

func (r *artworkRepository) CheckAvailability(ctx context.Context, lines []model.OrderLine) error {
	const query = `SELECT stock FROM artworks WHERE id=$1`
	for _, line := range lines {
		var stock int
		err := r.storage.pool.QueryRow(ctx, query, line.ArtworkID).Scan(&stock)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.InsufficientStockError{ArtworkID: line.ArtworkID}
			}
			return err
		}
		if stock < line.Quantity {
			return domainErrors.InsufficientStockError{ArtworkID: line.ArtworkID}
		}
	}
	return nil
}

func (r *artworkRepository) DecrementStock(ctx context.Context, lines []model.OrderLine) error {
	// One conditional statement per item: the stock >= quantity guard makes
	// each decrement atomic under concurrent orders for the same artwork.
	const query = `UPDATE artworks SET stock = stock - $2, updated_at=NOW()
                   WHERE id=$1 AND stock >= $2`
	applied := 0
	for _, line := range lines {
		tag, err := r.storage.pool.Exec(ctx, query, line.ArtworkID, line.Quantity)
		if err != nil {
			return fmt.Errorf("decrement stock (applied %d of %d lines): %w", applied, len(lines), err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("decrement stock (applied %d of %d lines): %w",
				applied, len(lines), domainErrors.InsufficientStockError{ArtworkID: line.ArtworkID})
		}
		applied++
	}
	return nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, customer_name, customer_email, phone, street, city, state, zip_code, country,
    total_amount, payment_status, payment_method, payment_reference, gateway_order_id,
    order_status, shipping_status, shipment_id, tracking_number, notes, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.CustomerName, &o.CustomerEmail, &o.Phone,
		&o.Address.Street, &o.Address.City, &o.Address.State, &o.Address.ZipCode, &o.Address.Country,
		&o.TotalAmount, &o.PaymentStatus, &o.PaymentMethod, &o.PaymentReference, &o.GatewayOrderID,
		&o.OrderStatus, &o.ShippingStatus, &o.ShipmentID, &o.TrackingNumber, &o.Notes,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	created := *order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders
            (id, customer_name, customer_email, phone, street, city, state, zip_code, country,
             total_amount, payment_status, payment_method, order_status, notes)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
            RETURNING created_at, updated_at`
		err := tx.QueryRow(ctx, insertOrder,
			order.ID, order.CustomerName, order.CustomerEmail, order.Phone,
			order.Address.Street, order.Address.City, order.Address.State, order.Address.ZipCode, order.Address.Country,
			order.TotalAmount, order.PaymentStatus, order.PaymentMethod, order.OrderStatus, order.Notes,
		).Scan(&created.CreatedAt, &created.UpdatedAt)
		if err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, artwork_id, title, quantity, price)
                            VALUES ($1,$2,$3,$4,$5)`
		for _, item := range order.Items {
			if _, err := tx.Exec(ctx, insertItem, order.ID, item.ArtworkID, item.Title, item.Quantity, item.Price); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderIDs []string) (map[string][]model.OrderItem, error) {
	const query = `SELECT order_id, artwork_id, title, quantity, price
                   FROM order_items WHERE order_id = ANY($1) ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string][]model.OrderItem, len(orderIDs))
	for rows.Next() {
		var (
			orderID string
			item    model.OrderItem
		)
		if err := rows.Scan(&orderID, &item.ArtworkID, &item.Title, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		result[orderID] = append(result[orderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	items, err := r.loadItems(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	order.Items = items[id]
	return order, nil
}

func (r *orderRepository) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.OrderStatus != "" {
		args = append(args, filter.OrderStatus)
		conditions = append(conditions, fmt.Sprintf("order_status=$%d", len(args)))
	}
	if filter.PaymentStatus != "" {
		args = append(args, filter.PaymentStatus)
		conditions = append(conditions, fmt.Sprintf("payment_status=$%d", len(args)))
	}

	query := `SELECT ` + orderColumns + ` FROM orders`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		result []model.Order
		ids    []string
	)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		items, err := r.loadItems(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range result {
			result[i].Items = items[result[i].ID]
		}
	}
	return result, nil
}

func (r *orderRepository) SetChargeHandle(ctx context.Context, id, gatewayOrderID string) error {
	const query = `UPDATE orders SET gateway_order_id=$2, updated_at=NOW()
                   WHERE id=$1 AND payment_status='pending'`
	tag, err := r.storage.pool.Exec(ctx, query, id, gatewayOrderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) UpdatePaymentOutcome(ctx context.Context, id string, status model.PaymentStatus, reference string) (*model.Order, error) {
	// The payment_status='pending' guard is the arbiter between concurrent
	// verification callbacks: exactly one caller wins the transition.
	query := `UPDATE orders SET payment_status=$2, payment_reference=$3, updated_at=NOW()
              WHERE id=$1 AND payment_status='pending'
              RETURNING ` + orderColumns
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id, status, reference))
	if err != nil {
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return nil, err
		}
		existing, getErr := r.GetByID(ctx, id)
		if getErr != nil {
			return nil, getErr
		}
		return existing, domainErrors.ErrInvalidTransition
	}

	items, err := r.loadItems(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	order.Items = items[id]
	return order, nil
}

func (r *orderRepository) UpdateShippingOutcome(ctx context.Context, id string, status model.ShippingStatus, shipmentID, trackingNumber string) (*model.Order, error) {
	query := `UPDATE orders SET shipping_status=$2, shipment_id=$3, tracking_number=$4, updated_at=NOW()
              WHERE id=$1
              RETURNING ` + orderColumns
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id, status, shipmentID, trackingNumber))
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, orderStatus model.OrderStatus, paymentStatus model.PaymentStatus, trackingNumber string) (*model.Order, error) {
	var updated *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var current model.PaymentStatus
		err := tx.QueryRow(ctx, `SELECT payment_status FROM orders WHERE id=$1 FOR UPDATE`, id).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if paymentStatus != "" && paymentStatus != current {
			if !current.CanTransitionTo(paymentStatus) {
				return domainErrors.ErrInvalidTransition
			}
			if _, err := tx.Exec(ctx, `UPDATE orders SET payment_status=$2, updated_at=NOW() WHERE id=$1`, id, paymentStatus); err != nil {
				return err
			}
		}
		if orderStatus != "" {
			if _, err := tx.Exec(ctx, `UPDATE orders SET order_status=$2, updated_at=NOW() WHERE id=$1`, id, orderStatus); err != nil {
				return err
			}
		}
		if trackingNumber != "" {
			if _, err := tx.Exec(ctx, `UPDATE orders SET tracking_number=$2, updated_at=NOW() WHERE id=$1`, id, trackingNumber); err != nil {
				return err
			}
		}

		query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
		updated, err = scanOrder(tx.QueryRow(ctx, query, id))
		return err
	})
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	updated.Items = items[id]
	return updated, nil
}

func (r *orderRepository) SelectShipmentRetries(ctx context.Context, limit int) ([]model.Order, error) {
	selectQuery := `SELECT ` + orderColumns + `
                    FROM orders
                    WHERE payment_status='paid' AND shipping_status='failed'
                      AND shipping_next_retry_at <= NOW()
                    ORDER BY updated_at
                    LIMIT $1
                    FOR UPDATE SKIP LOCKED`

	var orders []model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			o, err := scanOrder(rows)
			if err != nil {
				return err
			}
			orders = append(orders, *o)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		// Push the retry window forward so other pollers skip these orders
		// while the booking attempt is in flight.
		const claim = `UPDATE orders SET shipping_attempts = shipping_attempts + 1,
                           shipping_next_retry_at = NOW() + make_interval(mins => 5 * (shipping_attempts + 1))
                       WHERE id=$1`
		for i := range orders {
			if _, err := tx.Exec(ctx, claim, orders[i].ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(orders) > 0 {
		ids := make([]string, 0, len(orders))
		for _, o := range orders {
			ids = append(ids, o.ID)
		}
		items, err := r.loadItems(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range orders {
			orders[i].Items = items[orders[i].ID]
		}
	}
	return orders, nil
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	return count, err
}

func (r *orderRepository) CountByOrderStatus(ctx context.Context, status model.OrderStatus) (int64, error) {
	var count int64
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE order_status=$1`, status).Scan(&count)
	return count, err
}

func (r *orderRepository) PaidRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.storage.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE payment_status='paid'`).Scan(&revenue)
	return revenue, err
}

func (r *orderRepository) Recent(ctx context.Context, limit int) ([]model.Order, error) {
	return r.List(ctx, model.OrderFilter{Limit: limit})
}

// --- ContactRepository implementation ---

const contactColumns = `id, name, email, message, status, replied, created_at`

func scanContact(row pgx.Row) (*model.Contact, error) {
	var c model.Contact
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.Status, &c.Replied, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	const query = `INSERT INTO contacts (name, email, message, status)
                   VALUES ($1,$2,$3,$4) RETURNING id, created_at`
	c := *contact
	c.Status = model.ContactStatusNew
	err := r.storage.pool.QueryRow(ctx, query, c.Name, c.Email, c.Message, c.Status).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contactRepository) GetByID(ctx context.Context, id int64) (*model.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id=$1`
	return scanContact(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *contactRepository) List(ctx context.Context, status model.ContactStatus) ([]model.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts`
	var args []any
	if status != "" {
		query += ` WHERE status=$1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id int64, status model.ContactStatus, replied *bool) (*model.Contact, error) {
	query := `UPDATE contacts SET
                  status = COALESCE(NULLIF($2, ''), status),
                  replied = COALESCE($3, replied)
              WHERE id=$1
              RETURNING ` + contactColumns
	return scanContact(r.storage.pool.QueryRow(ctx, query, id, string(status), replied))
}

func (r *contactRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&count)
	return count, err
}

func (r *contactRepository) CountByStatus(ctx context.Context, status model.ContactStatus) (int64, error) {
	var count int64
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contacts WHERE status=$1`, status).Scan(&count)
	return count, err
}

func (r *contactRepository) Recent(ctx context.Context, limit int) ([]model.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts ORDER BY created_at DESC LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- AdminRepository implementation ---

func (r *adminRepository) Create(ctx context.Context, name, email, passwordHash string) (*model.Admin, error) {
	const query = `INSERT INTO admins (name, email, password_hash) VALUES ($1,$2,$3) RETURNING id, created_at`
	var a model.Admin
	err := r.storage.pool.QueryRow(ctx, query, name, email, passwordHash).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	a.Name = name
	a.Email = email
	a.PasswordHash = passwordHash
	return &a, nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	const query = `SELECT id, name, email, password_hash, created_at FROM admins WHERE email=$1`
	var a model.Admin
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *adminRepository) GetByID(ctx context.Context, id int64) (*model.Admin, error) {
	const query = `SELECT id, name, email, password_hash, created_at FROM admins WHERE id=$1`
	var a model.Admin
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
