package routes

import (
	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	User    *handler.UserHandler
	Trading *handler.TradingHandler
	Request *handler.RequestHandler
	Asset   *handler.AssetHandler
	Stats   *handler.StatsHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	handlers Handlers,
	authorizer coreport.Authorizer,
	logger coreport.Logger,
) {
	router.GET("/health", handlers.Stats.Health)

	api := router.Group("/api/v1")

	// User routes
	users := api.Group("/users")
	{
		users.POST("", handlers.User.Register)
		users.GET("/:userId", handlers.User.GetUser)
		users.GET("/:userId/holdings", handlers.Trading.Portfolio)
		users.GET("/:userId/requests", handlers.Request.ListForUser)
		users.POST("/:userId/requests", handlers.Request.Create)
		users.POST("/:userId/buy", handlers.Trading.Buy)
		users.POST("/:userId/sell", handlers.Trading.Sell)
		users.GET("/:userId/quote", handlers.Trading.Quote)
	}

	// Public catalog
	assets := api.Group("/assets")
	{
		assets.GET("", handlers.Asset.List)
		assets.GET("/:assetId", handlers.Asset.Get)
		assets.GET("/:assetId/history", handlers.Asset.History)
	}

	// Administrator routes
	admin := api.Group("/admin", middleware.RequirePrivileged(authorizer, logger))
	{
		admin.GET("/assets", handlers.Asset.AdminList)
		admin.POST("/assets", handlers.Asset.Create)
		admin.PATCH("/assets/:assetId", handlers.Asset.Update)

		admin.GET("/requests/pending", handlers.Request.ListPending)
		admin.GET("/requests", handlers.Request.ListRecent)
		admin.POST("/requests/:requestId/resolve", handlers.Request.Resolve)

		admin.GET("/stats", handlers.Stats.Snapshot)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	// Apply middlewares in the correct order
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.ActorID())
}
