package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/polkiloo/flowerbot/internal/domain/model"
	"github.com/polkiloo/flowerbot/internal/domain/repository"
)

// pgxPool is the subset of *pgxpool.Pool used by the storage.
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

// Storage acts as repository facade backed by the Supabase Postgres database.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

type statusRepository struct {
	storage *Storage
}

type adminRepository struct {
	storage *Storage
}

// New connects to the store and makes sure the schema exists. The key is used
// as the database password when the URL does not carry one.
func New(ctx context.Context, url, key string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse supabase url: %w", err)
	}
	if cfg.ConnConfig.Password == "" {
		cfg.ConnConfig.Password = key
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
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Statuses() repository.StatusRepository {
	return &statusRepository{storage: s}
}

func (s *Storage) Admins() repository.AdminRepository {
	return &adminRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS order_statuses (
            id BIGINT PRIMARY KEY,
            name TEXT NOT NULL,
            color TEXT NOT NULL DEFAULT '#9E9E9E'
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            user_id TEXT NOT NULL,
            user_name TEXT NOT NULL DEFAULT '',
            user_username TEXT NOT NULL DEFAULT '',
            phone TEXT NOT NULL DEFAULT '',
            comment TEXT NOT NULL DEFAULT '',
            items JSONB NOT NULL DEFAULT '[]',
            total_amount NUMERIC(12, 2) NOT NULL DEFAULT 0,
            final_amount NUMERIC(12, 2) NOT NULL DEFAULT 0,
            status_id BIGINT NOT NULL DEFAULT 1,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS admins (
            telegram_id BIGINT PRIMARY KEY,
            is_active BOOLEAN NOT NULL DEFAULT TRUE
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, id)`,
		`INSERT INTO order_statuses (id, name, color) VALUES (1, 'Новый', '#2196F3')
            ON CONFLICT (id) DO NOTHING`,
	}

	err := s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, user_id, user_name, user_username, phone, comment, items,
                      total_amount, final_amount, status_id, created_at`

func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	const query = `INSERT INTO orders (user_id, user_name, user_username, phone, comment, items,
                                       total_amount, final_amount, status_id)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                   RETURNING id, created_at`

	items := []byte(order.Items)
	if len(items) == 0 {
		items = []byte(model.EmptyItems)
	}
	if !json.Valid(items) {
		return nil, fmt.Errorf("encode items: invalid JSON")
	}

	created := order
	err := r.storage.pool.QueryRow(ctx, query,
		order.UserID,
		order.UserName,
		order.UserUsername,
		order.Phone,
		order.Comment,
		items,
		order.TotalAmount.String(),
		order.FinalAmount.String(),
		order.StatusID,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}

	r.storage.logger.Info("order saved", slog.Int64("order_id", created.ID), slog.String("user_id", created.UserID))
	return &created, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY id`
	return r.query(ctx, query)
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY id`
	return r.query(ctx, query, userID)
}

func (r *orderRepository) query(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Order, 0)
	for rows.Next() {
		var (
			o     model.Order
			items []byte
		)
		if err := rows.Scan(&o.ID, &o.UserID, &o.UserName, &o.UserUsername, &o.Phone, &o.Comment, &items,
			&o.TotalAmount, &o.FinalAmount, &o.StatusID, &o.CreatedAt); err != nil {
			return nil, err
		}
		if len(items) > 0 {
			if !json.Valid(items) {
				return nil, fmt.Errorf("decode items of order %d: invalid JSON", o.ID)
			}
			o.Items = json.RawMessage(items)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, statusID *int64) error {
	const query = `UPDATE orders SET status_id=$1 WHERE id=$2`
	_, err := r.storage.pool.Exec(ctx, query, statusID, orderID)
	return err
}

func (r *orderRepository) Delete(ctx context.Context, orderID int64) error {
	const query = `DELETE FROM orders WHERE id=$1`
	_, err := r.storage.pool.Exec(ctx, query, orderID)
	return err
}

// --- StatusRepository implementation ---

func (r *statusRepository) List(ctx context.Context) ([]model.OrderStatus, error) {
	const query = `SELECT id, name, color FROM order_statuses ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderStatus
	for rows.Next() {
		var s model.OrderStatus
		if err := rows.Scan(&s.ID, &s.Name, &s.Color); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- AdminRepository implementation ---

func (r *adminRepository) ListActive(ctx context.Context) ([]model.Admin, error) {
	const query = `SELECT telegram_id, is_active FROM admins WHERE is_active = TRUE ORDER BY telegram_id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Admin
	for rows.Next() {
		var a model.Admin
		if err := rows.Scan(&a.TelegramID, &a.IsActive); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
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
