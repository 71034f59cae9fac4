package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/server/http/handlers"
	"github.com/polkiloo/orderdesk/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.SalesFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	stockHandler := handlers.NewStockHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/ping", healthHandler.Ping)

	orders := engine.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.GET("/:order_no", orderHandler.Get)
	orders.POST("", orderHandler.Create)

	items := engine.Group("/items")
	items.GET("", catalogHandler.List)
	items.GET("/:id", catalogHandler.Get)

	stocks := engine.Group("/stocks")
	stocks.GET("/:item_id", stockHandler.Level)
	stocks.POST("", stockHandler.Receive)

	return engine
}
