package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/polkiloo/flowerbot/internal/server/http/handlers"
	"github.com/polkiloo/flowerbot/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	metrics := middleware.NewServerMetrics(prometheus.NewRegistry())

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(metrics.Middleware())
	engine.Use(middleware.DecompressRequest(middleware.MaxRequestBody))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	botHandler := handlers.NewBotHandler(facade, logger)
	orderHandler := handlers.NewOrderHandler(facade, logger)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := engine.Group("/api")
	api.POST("/bot", botHandler.Webhook)
	api.GET("/bot", botHandler.Status)

	order := api.Group("/order")
	order.Use(middleware.CORS())
	order.GET("", orderHandler.List)
	order.POST("", orderHandler.Submit)
	order.PUT("", orderHandler.UpdateStatus)
	order.OPTIONS("", orderHandler.Preflight)
	order.OPTIONS("/*path", orderHandler.Preflight)
	order.DELETE("", orderHandler.Delete)
	order.DELETE("/*path", orderHandler.Delete)

	return engine
}
