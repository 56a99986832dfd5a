package test

import (
	"context"

	"github.com/polkiloo/flowerbot/internal/domain/model"
)

// OrderFacadeStub implements handlers.OrderFacade with overridable behaviour.
type OrderFacadeStub struct {
	SubmitFn func(context.Context, model.OrderSubmission) (*model.Order, error)
	OrdersFn func(context.Context, string, bool) ([]model.Order, error)
	UpdateFn func(context.Context, int64, *int64) error
	DeleteFn func(context.Context, string) error
}

func (s OrderFacadeStub) SubmitOrder(ctx context.Context, submission model.OrderSubmission) (*model.Order, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, submission)
	}
	return &model.Order{ID: 1}, nil
}

func (s OrderFacadeStub) Orders(ctx context.Context, userID string, isAdmin bool) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID, isAdmin)
	}
	return []model.Order{}, nil
}

func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, orderID int64, statusID *int64) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, orderID, statusID)
	}
	return nil
}

func (s OrderFacadeStub) DeleteOrder(ctx context.Context, rawID string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, rawID)
	}
	return nil
}

// BotFacadeStub implements handlers.BotFacade.
type BotFacadeStub struct {
	HandleFn func(context.Context, model.BotUpdate) error
}

func (s BotFacadeStub) HandleUpdate(ctx context.Context, update model.BotUpdate) error {
	if s.HandleFn != nil {
		return s.HandleFn(ctx, update)
	}
	return nil
}

// HealthFacadeStub implements handlers.HealthFacade.
type HealthFacadeStub struct {
	Err error
}

func (s HealthFacadeStub) HealthCheck(context.Context) error {
	return s.Err
}

// ShopFacadeStub combines the stubs to satisfy handlers.ShopFacade.
type ShopFacadeStub struct {
	OrderFacadeStub
	BotFacadeStub
	HealthFacadeStub
}
