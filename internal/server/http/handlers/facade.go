package handlers

import (
	"context"

	"github.com/polkiloo/flowerbot/internal/domain/model"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	SubmitOrder(ctx context.Context, submission model.OrderSubmission) (*model.Order, error)
	Orders(ctx context.Context, userID string, isAdmin bool) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, statusID *int64) error
	DeleteOrder(ctx context.Context, rawID string) error
}

// BotFacade handles updates delivered to the webhook.
type BotFacade interface {
	HandleUpdate(ctx context.Context, update model.BotUpdate) error
}

// HealthFacade checks backing services.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	OrderFacade
	BotFacade
	HealthFacade
}
