package repository

import (
	"context"

	"github.com/polkiloo/flowerbot/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, statusID *int64) error
	Delete(ctx context.Context, orderID int64) error
}

// StatusRepository reads the order status lookup table.
type StatusRepository interface {
	List(ctx context.Context) ([]model.OrderStatus, error)
}

// AdminRepository reads notification recipients.
type AdminRepository interface {
	ListActive(ctx context.Context) ([]model.Admin, error)
}
