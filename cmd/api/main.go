package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"leo-furniture-api/internal/cache"
	"leo-furniture-api/internal/config"
	"leo-furniture-api/internal/handler"
	"leo-furniture-api/internal/middleware"
	"leo-furniture-api/internal/repository"
	"leo-furniture-api/internal/router"
	"leo-furniture-api/internal/service"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting Leo Furniture API...")

	cfg := config.MustLoad()
	log.Printf("Environment: %s", cfg.App.Environment)

	// Initialize the ledger store based on config
	var store *repository.SQLStore
	var err error
	switch cfg.DB.Type {
	case "postgres", "postgresql":
		store, err = repository.NewPostgresStore(cfg.DB.PostgresDSN())
	case "mysql":
		store, err = repository.NewMySQLStore(cfg.DB.MySQLDSN())
	default: // sqlite
		store, err = repository.NewSQLiteStore(cfg.DB.Path)
	}
	if err != nil {
		log.Fatalf("Failed to initialize ledger store: %v", err)
	}
	defer store.Close()

	// Token revocation store: Redis when configured, in-memory otherwise
	var revocationStore cache.Cache
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(cache.RedisCacheConfig{
			Addr:     cfg.Redis.Address(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisCache.Close()
		revocationStore = redisCache
	} else {
		memCache := cache.NewMemoryCache()
		defer memCache.Close()
		revocationStore = memCache
		log.Println("Redis disabled, using in-memory token revocation store")
	}

	// Initialize services
	authService := service.NewAuthService(store, revocationStore, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	itemService := service.NewItemService(store)
	expenseService := service.NewExpenseService(store, store)
	analyticsService := service.NewAnalyticsService(store)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(cfg.App.Version)
	authHandler := handler.NewAuthHandler(authService)
	itemHandler := handler.NewItemHandler(itemService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	// Create router
	r := router.New(router.Config{
		HealthHandler:    healthHandler,
		AuthHandler:      authHandler,
		ItemHandler:      itemHandler,
		ExpenseHandler:   expenseHandler,
		AnalyticsHandler: analyticsHandler,
		AuthMiddleware:   middleware.NewAuthMiddleware(authService),
		CORSOrigins:      cfg.Server.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
