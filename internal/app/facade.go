package app

import (
	"context"

	"github.com/polkiloo/flowerbot/internal/domain/model"
	"github.com/polkiloo/flowerbot/internal/usecase"
)

// HealthChecker reports whether the order store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// ShopFacade is the single entry point HTTP handlers use to reach the shop logic.
type ShopFacade struct {
	orders *usecase.OrderUseCase
	bot    *usecase.BotUseCase
	health HealthChecker
}

func NewShopFacade(orders *usecase.OrderUseCase, bot *usecase.BotUseCase, health HealthChecker) *ShopFacade {
	return &ShopFacade{orders: orders, bot: bot, health: health}
}

func (f *ShopFacade) SubmitOrder(ctx context.Context, submission model.OrderSubmission) (*model.Order, error) {
	return f.orders.Submit(ctx, submission)
}

func (f *ShopFacade) Orders(ctx context.Context, userID string, isAdmin bool) ([]model.Order, error) {
	orders, err := f.orders.List(ctx, userID, isAdmin)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

func (f *ShopFacade) UpdateOrderStatus(ctx context.Context, orderID int64, statusID *int64) error {
	return f.orders.UpdateStatus(ctx, orderID, statusID)
}

func (f *ShopFacade) DeleteOrder(ctx context.Context, rawID string) error {
	return f.orders.Delete(ctx, rawID)
}

func (f *ShopFacade) HandleUpdate(ctx context.Context, update model.BotUpdate) error {
	return f.bot.HandleUpdate(ctx, update)
}

func (f *ShopFacade) HealthCheck(ctx context.Context) error {
	if f.health == nil {
		return nil
	}
	return f.health.HealthCheck(ctx)
}
