package test

import (
	"context"
	"sync"

	"github.com/polkiloo/flowerbot/internal/domain/model"
)

// OrderRepositoryStub allows tests to customize behaviour and inspect calls.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, model.Order) (*model.Order, error)
	ListFn         func(context.Context) ([]model.Order, error)
	ListByUserFn   func(context.Context, string) ([]model.Order, error)
	UpdateStatusFn func(context.Context, int64, *int64) error
	DeleteFn       func(context.Context, int64) error

	Orders      []model.Order
	Created     []model.Order
	UpdateCalls []StatusUpdateCall
	Deleted     []int64
	NextID      int64

	mu sync.Mutex
}

// StatusUpdateCall stores information about UpdateStatus invocations.
type StatusUpdateCall struct {
	OrderID  int64
	StatusID *int64
}

// Create records the order and assigns sequential identifiers.
func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.NextID++
	order.ID = s.NextID
	s.Created = append(s.Created, order)
	return &order, nil
}

// List returns configured orders.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return append([]model.Order(nil), s.Orders...), nil
}

// ListByUser filters configured orders by user identifier.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	result := make([]model.Order, 0)
	for _, o := range s.Orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

// UpdateStatus records status updates.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, statusID *int64) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, statusID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UpdateCalls = append(s.UpdateCalls, StatusUpdateCall{OrderID: orderID, StatusID: statusID})
	return nil
}

// Delete records removed identifiers.
func (s *OrderRepositoryStub) Delete(ctx context.Context, orderID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Deleted = append(s.Deleted, orderID)
	return nil
}

// StatusRepositoryStub returns a fixed status table.
type StatusRepositoryStub struct {
	Statuses []model.OrderStatus
	Err      error
}

// List returns configured statuses or error.
func (s *StatusRepositoryStub) List(context.Context) ([]model.OrderStatus, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Statuses, nil
}

// AdminRepositoryStub returns a fixed admin list.
type AdminRepositoryStub struct {
	Admins []model.Admin
	Err    error
}

// ListActive returns active admins from the configured list.
func (s *AdminRepositoryStub) ListActive(context.Context) ([]model.Admin, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var active []model.Admin
	for _, a := range s.Admins {
		if a.IsActive {
			active = append(active, a)
		}
	}
	return active, nil
}
