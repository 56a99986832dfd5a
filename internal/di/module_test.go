package di

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/flowerbot/internal/adapter/telegram"
	"github.com/polkiloo/flowerbot/internal/app"
	"github.com/polkiloo/flowerbot/internal/config"
	"github.com/polkiloo/flowerbot/internal/domain/model"
	"github.com/polkiloo/flowerbot/internal/domain/repository"
	"github.com/polkiloo/flowerbot/internal/storage/postgres"
	"github.com/polkiloo/flowerbot/internal/test"
	"github.com/polkiloo/flowerbot/internal/usecase"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		SupabaseURL:     "postgres://stub",
		SupabaseKey:     "key",
		TelegramAPIURL:  "http://localhost",
		WebAppURL:       "https://shop.example/",
		ManagerUsername: "manager",
		NotifyTimeout:   time.Second,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	orderRepo := &test.OrderRepositoryStub{Orders: []model.Order{{ID: 1, UserID: "10", StatusID: 1}}}
	statusRepo := &test.StatusRepositoryStub{}
	adminRepo := &test.AdminRepositoryStub{}
	messenger := &test.MessengerStub{}

	var (
		facade *app.ShopFacade
		bot    *usecase.BotUseCase
		engine *gin.Engine
	)
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.StatusRepository(statusRepo)),
			fx.Replace(repository.AdminRepository(adminRepo)),
			fx.Replace(telegram.Client(messenger)),
		),
		fx.Populate(&facade, &bot, &engine),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil || bot == nil || engine == nil {
		t.Fatal("expected shop facade, bot use case and router instances")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/order", nil)
	req.Header.Set("User-Id", "10")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 from wired router, got %d", resp.Code)
	}

	for _, target := range []string{"/api/order", "/api/order/"} {
		resp = httptest.NewRecorder()
		engine.ServeHTTP(resp, httptest.NewRequest(http.MethodDelete, target, nil))
		if resp.Code != http.StatusBadRequest || !strings.Contains(resp.Body.String(), `"error":"Invalid order ID"`) {
			t.Fatalf("DELETE %s: expected 400 Invalid order ID, got %d %s", target, resp.Code, resp.Body.String())
		}
	}
	if len(orderRepo.Deleted) != 0 {
		t.Fatalf("nothing must be deleted without an id, got %v", orderRepo.Deleted)
	}

	if err := facade.HandleUpdate(context.Background(), model.BotUpdate{Message: &model.ChatMessage{ChatID: 5, Text: "/start"}}); err != nil {
		t.Fatalf("handle update returned error: %v", err)
	}
	if len(messenger.Sent) != 1 {
		t.Fatalf("expected reply through replaced messenger, got %d", len(messenger.Sent))
	}
	if url := messenger.Sent[0].Keyboard[0][0].WebAppURL; url != cfg.WebAppURL {
		t.Fatalf("expected web app url from config, got %q", url)
	}
	if url := messenger.Sent[0].Keyboard[1][0].URL; url != "https://t.me/manager" {
		t.Fatalf("expected manager url from config, got %q", url)
	}
}
