package telegram

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/flowerbot/internal/config"
)

// Module exposes the Bot API client to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	if p.Config.BotToken == "" {
		p.Logger.Warn("BOT_TOKEN is not set, telegram calls are disabled")
	}
	client, err := NewHTTPClient(p.Config.TelegramAPIURL, p.Config.BotToken, p.Config.NotifyTimeout, p.Logger)
	if err != nil {
		return nil, err
	}
	return client, nil
}
