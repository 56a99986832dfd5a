package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/flowerbot/internal/adapter/telegram"
	"github.com/polkiloo/flowerbot/internal/app"
	"github.com/polkiloo/flowerbot/internal/config"
	"github.com/polkiloo/flowerbot/internal/logger"
	"github.com/polkiloo/flowerbot/internal/server/http/handlers"
	"github.com/polkiloo/flowerbot/internal/server/http/router"
	"github.com/polkiloo/flowerbot/internal/storage/postgres"
	"github.com/polkiloo/flowerbot/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		telegram.Module,
		usecase.Module,
		fx.Provide(
			func(client telegram.Client) usecase.Messenger { return client },
			func(storage *postgres.Storage) app.HealthChecker { return storage },
			func(facade *app.ShopFacade) handlers.ShopFacade { return facade },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
