package telegram

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/polkiloo/flowerbot/internal/config"
)

func TestNewClientUsesConfig(t *testing.T) {
	cfg := &config.Config{TelegramAPIURL: "https://api.telegram.org", BotToken: "123:abc", NotifyTimeout: time.Second}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	client, err := newClient(clientParams{Config: cfg, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil || !client.Enabled() {
		t.Fatal("expected enabled client instance")
	}

	cfg.BotToken = ""
	client, err = newClient(clientParams{Config: cfg, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Enabled() {
		t.Fatal("expected client without token to be disabled")
	}
}

func TestNewClientRejectsRelativeURL(t *testing.T) {
	cfg := &config.Config{TelegramAPIURL: "api.telegram.org", NotifyTimeout: time.Second}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	client, err := newClient(clientParams{Config: cfg, Logger: logger})
	if err == nil {
		t.Fatal("expected error for relative url")
	}
	if client != nil {
		t.Fatalf("expected nil client, got %T", client)
	}
}
