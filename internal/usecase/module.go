package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/flowerbot/internal/config"
	"github.com/polkiloo/flowerbot/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewOrderUseCase,
	NewBotUseCase,
	newNotificationUseCase,
	newBotOptions,
	func(n *NotificationUseCase) OrderNotifier { return n },
)

type notificationParams struct {
	fx.In

	Admins    repository.AdminRepository
	Messenger Messenger
	Config    *config.Config
	Logger    *slog.Logger
}

func newNotificationUseCase(p notificationParams) *NotificationUseCase {
	return NewNotificationUseCase(p.Admins, p.Messenger, p.Config.NotifyTimeout, p.Logger)
}

func newBotOptions(cfg *config.Config) BotOptions {
	return BotOptions{WebAppURL: cfg.WebAppURL, ManagerURL: cfg.ManagerURL(), ManagerUsername: cfg.ManagerUsername}
}
