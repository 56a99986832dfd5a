package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/flowerbot/internal/domain/errors"
	"github.com/polkiloo/flowerbot/internal/domain/model"
	testhelpers "github.com/polkiloo/flowerbot/internal/test"
	"github.com/polkiloo/flowerbot/internal/usecase"
)

type healthStub struct {
	err   error
	calls int
}

func (h *healthStub) HealthCheck(context.Context) error {
	h.calls++
	return h.err
}

type facadeDeps struct {
	orders    *testhelpers.OrderRepositoryStub
	statuses  *testhelpers.StatusRepositoryStub
	notifier  *testhelpers.NotifierStub
	messenger *testhelpers.MessengerStub
	health    *healthStub
}

func newFacade() (*ShopFacade, facadeDeps) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	deps := facadeDeps{
		orders:    &testhelpers.OrderRepositoryStub{},
		statuses:  &testhelpers.StatusRepositoryStub{Statuses: []model.OrderStatus{{ID: 1, Name: "Новый", Color: "#2196F3"}}},
		notifier:  &testhelpers.NotifierStub{},
		messenger: &testhelpers.MessengerStub{},
		health:    &healthStub{},
	}
	orderUC := usecase.NewOrderUseCase(deps.orders, deps.statuses, deps.notifier, logger)
	botUC := usecase.NewBotUseCase(deps.messenger, usecase.BotOptions{WebAppURL: "https://shop.example/"})
	return NewShopFacade(orderUC, botUC, deps.health), deps
}

func TestShopFacadeSubmitOrder(t *testing.T) {
	facade, deps := newFacade()

	order, err := facade.SubmitOrder(context.Background(), model.OrderSubmission{
		User:  model.Customer{ID: 7, FirstName: "Ivan"},
		Phone: "8 (900) 000-00-00",
		Total: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if order.ID != 1 || order.Phone != "89000000000" {
		t.Fatalf("unexpected order %+v", order)
	}
	if len(deps.orders.Created) != 1 || len(deps.notifier.Calls) != 1 {
		t.Fatalf("expected one stored order and one notification")
	}
}

func TestShopFacadeOrders(t *testing.T) {
	facade, deps := newFacade()
	deps.orders.Orders = []model.Order{{ID: 1, UserID: "7", StatusID: 1}}

	list, err := facade.Orders(context.Background(), "8", false)
	if err != nil {
		t.Fatalf("orders returned error: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", list)
	}

	list, err = facade.Orders(context.Background(), "", true)
	if err != nil {
		t.Fatalf("orders returned error: %v", err)
	}
	if len(list) != 1 || list[0].StatusName != "Новый" {
		t.Fatalf("unexpected admin list %+v", list)
	}

	deps.orders.ListFn = func(context.Context) ([]model.Order, error) { return nil, nil }
	list, err = facade.Orders(context.Background(), "", true)
	if err != nil || list == nil {
		t.Fatalf("expected empty non-nil list, got %#v, %v", list, err)
	}

	listErr := errors.New("boom")
	deps.orders.ListFn = func(context.Context) ([]model.Order, error) { return nil, listErr }
	if _, err := facade.Orders(context.Background(), "", true); !errors.Is(err, listErr) {
		t.Fatalf("expected list error, got %v", err)
	}
}

func TestShopFacadeUpdateAndDelete(t *testing.T) {
	facade, deps := newFacade()

	status := int64(3)
	if err := facade.UpdateOrderStatus(context.Background(), 0, &status); !errors.Is(err, domainErrors.ErrOrderIDRequired) {
		t.Fatalf("expected order id required, got %v", err)
	}
	if err := facade.UpdateOrderStatus(context.Background(), 4, &status); err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if len(deps.orders.UpdateCalls) != 1 {
		t.Fatalf("expected update to be forwarded")
	}

	if err := facade.DeleteOrder(context.Background(), "x1"); !errors.Is(err, domainErrors.ErrInvalidOrderID) {
		t.Fatalf("expected invalid order id, got %v", err)
	}
	if err := facade.DeleteOrder(context.Background(), "4"); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if len(deps.orders.Deleted) != 1 || deps.orders.Deleted[0] != 4 {
		t.Fatalf("unexpected deletes %v", deps.orders.Deleted)
	}
}

func TestShopFacadeHandleUpdate(t *testing.T) {
	facade, deps := newFacade()
	if err := facade.HandleUpdate(context.Background(), model.BotUpdate{Message: &model.ChatMessage{ChatID: 1, Text: "/start"}}); err != nil {
		t.Fatalf("handle update returned error: %v", err)
	}
	if len(deps.messenger.Sent) != 1 {
		t.Fatalf("expected reply to be sent")
	}
}

func TestShopFacadeHealthCheck(t *testing.T) {
	facade, deps := newFacade()
	if err := facade.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	deps.health.err = errors.New("down")
	if err := facade.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected health error")
	}
	if deps.health.calls != 2 {
		t.Fatalf("expected two health checks, got %d", deps.health.calls)
	}

	noHealth := NewShopFacade(nil, nil, nil)
	if err := noHealth.HealthCheck(context.Background()); err != nil {
		t.Fatalf("missing checker must report healthy: %v", err)
	}
}
