package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"freshmart/internal/config"
	"freshmart/internal/handlers"
	"freshmart/internal/middleware"
	"freshmart/internal/storage"
	"freshmart/internal/store"
	"freshmart/internal/suggest"
)

func main() {
	config.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	snapshots, err := openSnapshotStore(logger)
	if err != nil {
		logger.Fatal().Err(err).Str("backend", config.AppEnv.StorageBackend).Msg("snapshot store unavailable")
	}

	manager := store.New(snapshots, config.AppEnv.AdminEmail, logger)
	if err := manager.Load(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("state load failed")
	}

	suggestions := suggest.NewClient(
		config.AppEnv.GeminiAPIKey,
		config.AppEnv.GeminiModel,
		config.AppEnv.SuggestTimeout,
		logger,
	)
	if !suggestions.Enabled() {
		logger.Info().Msg("suggestion service disabled, using fallback strings")
	}

	r := gin.Default()

	r.GET("/products", handlers.GetProducts(manager))
	r.GET("/products/:id", handlers.GetProduct(manager))
	r.GET("/categories", handlers.GetCategories())

	r.POST("/auth/login", handlers.Login(manager, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))
	r.POST("/auth/logout", handlers.Logout(manager))
	r.GET("/auth/me", middleware.UserAuth(config.AppEnv.JWTSecret), handlers.GetMe(manager))

	r.GET("/cart", handlers.GetCart(manager))
	r.POST("/cart/items", handlers.AddToCart(manager))
	r.PUT("/cart/items", handlers.UpdateCartItem(manager))
	r.DELETE("/cart/items/:productId/:variantIndex", handlers.RemoveCartItem(manager))
	r.DELETE("/cart", handlers.ClearCart(manager))
	r.PUT("/cart/drawer", handlers.ToggleCartDrawer(manager))
	r.PUT("/search", handlers.SetSearchQuery(manager))

	r.POST("/orders", handlers.CreateOrder(manager))
	r.GET("/orders", handlers.GetOrders(manager))

	r.POST("/suggestions/recipe", handlers.SuggestRecipe(suggestions))
	r.GET("/suggestions/tip", handlers.SuggestTip(suggestions))

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.GET("/me", func(c *gin.Context) {
			c.JSON(200, gin.H{"ok": true})
		})

		admin.GET("/products", handlers.GetAllProducts(manager))
		admin.POST("/products", handlers.CreateProduct(manager))
		admin.PUT("/products/:id", handlers.UpdateProduct(manager))
		admin.DELETE("/products/:id", handlers.DeleteProduct(manager))
	}

	logger.Info().Str("port", config.AppEnv.Port).Msg("listening")
	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func openSnapshotStore(logger zerolog.Logger) (storage.Store, error) {
	switch config.AppEnv.StorageBackend {
	case "redis":
		logger.Info().Str("addr", config.AppEnv.RedisAddr).Msg("using redis snapshots")
		return storage.NewRedisStore(config.AppEnv.RedisAddr)
	case "mongo":
		logger.Info().Str("db", config.AppEnv.DBName).Msg("using mongo snapshots")
		return storage.NewMongoStore(config.AppEnv.MongoURI, config.AppEnv.DBName)
	default:
		logger.Info().Msg("using in-memory snapshots")
		return storage.NewMemoryStore(), nil
	}
}
