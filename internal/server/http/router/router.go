package router

import (
	"log/slog"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storerating/internal/config"
	"github.com/polkiloo/storerating/internal/domain/model"
	"github.com/polkiloo/storerating/internal/metrics"
	"github.com/polkiloo/storerating/internal/server/http/handlers"
	"github.com/polkiloo/storerating/internal/server/http/middleware"
)

const maxRequestBody = 1 << 20

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreRatingFacade, collector *metrics.Collector, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics(collector))
	engine.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	engine.Use(middleware.DecompressRequest(maxRequestBody))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	storeHandler := handlers.NewStoreHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/health", healthHandler.Health)
	engine.GET("/metrics", gin.WrapH(collector.Handler()))

	api := engine.Group("/api")
	authRequired := middleware.AuthRequired(facade)

	auth := api.Group("/auth")
	auth.Use(middleware.RateLimit(middleware.NewIPRateLimiter(float64(cfg.RateLimitRPS), cfg.RateLimitBurst)))
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authRequired, authHandler.Me)

	admin := api.Group("/admin", authRequired, middleware.RequireCapability(model.CapAdministerPlatform))
	admin.GET("/users", adminHandler.Users)
	admin.POST("/users", adminHandler.CreateUser)
	admin.GET("/stores", adminHandler.Stores)
	admin.POST("/stores", adminHandler.CreateStore)
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/dashboard/activity", adminHandler.Activity)

	user := api.Group("/user", authRequired, middleware.RequireCapability(model.CapRateStores))
	user.GET("/stores", userHandler.Stores)
	user.POST("/ratings", userHandler.SubmitRating)
	user.GET("/my-ratings", userHandler.MyRatings)

	store := api.Group("/store", authRequired, middleware.RequireCapability(model.CapManageOwnStores))
	store.GET("/my-stores", storeHandler.MyStores)
	store.GET("/:id/ratings", storeHandler.Ratings)

	return engine
}

func corsConfig(origins []string) cors.Config {
	conf := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Encoding", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Authorization", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		// Credentials cannot be combined with a wildcard origin.
		conf.AllowAllOrigins = true
		conf.AllowCredentials = false
		return conf
	}
	conf.AllowOrigins = origins
	return conf
}
