package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/avolkou/crmdesk/internal/domain/errors"
	"github.com/avolkou/crmdesk/internal/domain/model"
	"github.com/avolkou/crmdesk/internal/domain/repository"
)

const (
	pgForeignKeyViolation = "23503"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on; pgxmock
// satisfies it in tests.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type clientRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
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
func (s *Storage) Clients() repository.ClientRepository {
	return &clientRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS clients (
            id SERIAL PRIMARY KEY,
            first_name VARCHAR(255),
            last_name VARCHAR(255),
            phone VARCHAR(50),
            email VARCHAR(255),
            address VARCHAR(255),
            city VARCHAR(255),
            zip VARCHAR(50),
            company VARCHAR(255)
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            amount NUMERIC,
            status VARCHAR(50),
            client_id INTEGER NOT NULL REFERENCES clients(id),
            description TEXT,
            picture_urls TEXT[] NOT NULL DEFAULT '{}'
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_client ON orders(client_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- ClientRepository implementation ---

const clientColumns = `id, first_name, last_name, phone, email, address, city, zip, company`

func scanClient(row pgx.Row) (*model.Client, error) {
	var c model.Client
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Phone, &c.Email, &c.Address, &c.City, &c.Zip, &c.Company)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *clientRepository) Create(ctx context.Context, draft model.ClientDraft) (*model.Client, error) {
	const query = `INSERT INTO clients (first_name, last_name, phone, email, address, city, zip, company)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING ` + clientColumns
	return scanClient(r.storage.pool.QueryRow(ctx, query,
		draft.FirstName, draft.LastName, draft.Phone, draft.Email,
		draft.Address, draft.City, draft.Zip, draft.Company))
}

func (r *clientRepository) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	const query = `SELECT ` + clientColumns + ` FROM clients WHERE id=$1`
	return scanClient(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *clientRepository) List(ctx context.Context) ([]model.Client, error) {
	const query = `SELECT ` + clientColumns + ` FROM clients ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Client, 0)
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Phone, &c.Email, &c.Address, &c.City, &c.Zip, &c.Company); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *clientRepository) Update(ctx context.Context, id int64, draft model.ClientDraft) (*model.Client, error) {
	const query = `UPDATE clients
                   SET first_name=$1, last_name=$2, phone=$3, email=$4, address=$5, city=$6, zip=$7, company=$8
                   WHERE id=$9
                   RETURNING ` + clientColumns
	return scanClient(r.storage.pool.QueryRow(ctx, query,
		draft.FirstName, draft.LastName, draft.Phone, draft.Email,
		draft.Address, draft.City, draft.Zip, draft.Company, id))
}

func (r *clientRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM clients WHERE id=$1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domainErrors.ErrClientInUse
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *clientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM clients WHERE email=$1)`
	var exists bool
	if err := r.storage.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, amount::text, status, client_id, description, picture_urls`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.Amount, &o.Status, &o.ClientID, &o.Description, &o.PictureURLs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// Create inserts the order row and, when attach is given, runs it inside
// the same transaction to write the promoted picture paths. An attach
// failure rolls the insert back, so no picture-less row survives a broken
// promotion.
func (r *orderRepository) Create(ctx context.Context, draft model.OrderDraft, attach repository.AttachFunc) (*model.Order, error) {
	const insertQuery = `INSERT INTO orders (amount, status, client_id, description)
                         VALUES ($1::numeric, $2, $3, $4)
                         RETURNING ` + orderColumns

	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		order, err = scanOrder(tx.QueryRow(ctx, insertQuery, draft.Amount, draft.Status, draft.ClientID, draft.Description))
		if err != nil {
			return mapOrderWriteError(err)
		}

		if attach == nil {
			return nil
		}

		paths, err := attach(ctx, order.ID, nil)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return nil
		}

		if _, err := tx.Exec(ctx, `UPDATE orders SET picture_urls=$1 WHERE id=$2`, paths, order.ID); err != nil {
			return err
		}
		order.PictureURLs = paths
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) List(ctx context.Context) ([]model.OrderListing, error) {
	const query = `SELECT o.id, o.amount::text, o.status, o.client_id, o.description, o.picture_urls,
                          c.first_name || ' ' || c.last_name AS name
                   FROM orders o
                   JOIN clients c ON o.client_id = c.id
                   ORDER BY o.id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.OrderListing, 0)
	for rows.Next() {
		var (
			l    model.OrderListing
			name *string
		)
		if err := rows.Scan(&l.ID, &l.Amount, &l.Status, &l.ClientID, &l.Description, &l.PictureURLs, &name); err != nil {
			return nil, err
		}
		if name != nil {
			l.ClientName = *name
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update replaces the scalar fields in one statement and, when attach is
// given, replaces picture_urls with the list attach returns, both inside
// one transaction.
func (r *orderRepository) Update(ctx context.Context, id int64, draft model.OrderDraft, attach repository.AttachFunc) (*model.Order, error) {
	const updateQuery = `UPDATE orders
                         SET amount=$1::numeric, status=$2, client_id=$3, description=$4
                         WHERE id=$5
                         RETURNING ` + orderColumns

	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		order, err = scanOrder(tx.QueryRow(ctx, updateQuery, draft.Amount, draft.Status, draft.ClientID, draft.Description, id))
		if err != nil {
			return mapOrderWriteError(err)
		}

		if attach == nil {
			return nil
		}

		paths, err := attach(ctx, order.ID, order.PictureURLs)
		if err != nil {
			return err
		}
		if paths == nil {
			return nil
		}

		if _, err := tx.Exec(ctx, `UPDATE orders SET picture_urls=$1 WHERE id=$2`, paths, order.ID); err != nil {
			return err
		}
		order.PictureURLs = paths
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Delete removes the row and hands back its picture list in one statement.
func (r *orderRepository) Delete(ctx context.Context, id int64) ([]string, error) {
	const query = `DELETE FROM orders WHERE id=$1 RETURNING picture_urls`
	var pictures []string
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&pictures)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return pictures, nil
}

// mapOrderWriteError turns a broken client reference into the domain's
// client-not-found outcome.
func mapOrderWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return domainErrors.ErrClientNotFound
	}
	return err
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
