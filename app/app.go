// File: app/app.go
package app

import (
	"book-review-api/config"
	"book-review-api/db"
	"book-review-api/handler"
	"book-review-api/logger"
	"book-review-api/repository"
	"book-review-api/router"
	"book-review-api/service"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database, "file://db/migrations"); err != nil {
		logger.Log.Fatalf("Error running database migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redisClient.Close()

	// --- Wiring All Layers Together ---
	// Repositories, services and handlers are constructed here and
	// passed down explicitly; nothing reaches for globals below this
	// point.

	userRepo := repository.NewUserRepository(database)
	bookRepo := repository.NewBookRepository(database)
	reviewRepo := repository.NewReviewRepository(database)
	tagRepo := repository.NewTagRepository(database)

	// The blocklist TTL equals the refresh token lifetime, the longest
	// a revoked jti could otherwise stay valid.
	blocklist := service.NewRedisTokenBlocklist(redisClient, config.AppConfig.RefreshTokenTTL())

	authService := service.NewAuthService(userRepo, blocklist,
		config.AppConfig.JWT.SecretKey,
		config.AppConfig.AccessTokenTTL(),
		config.AppConfig.RefreshTokenTTL())
	userService := service.NewUserService(userRepo)
	bookService := service.NewBookService(bookRepo, tagRepo)
	reviewService := service.NewReviewService(reviewRepo, bookRepo)
	tagService := service.NewTagService(tagRepo, bookRepo)
	mailer := service.NewLogMailer()

	authMW := handler.NewAuthMiddleware(authService, blocklist)

	authHandler := handler.NewAuthHandler(authService, userService, mailer)
	userHandler := handler.NewUserHandler(userService)
	bookHandler := handler.NewBookHandler(bookService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	tagHandler := handler.NewTagHandler(tagService)

	r := router.NewRouter(authHandler, userHandler, bookHandler, reviewHandler, tagHandler, authMW)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
