package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"campus-backend/config"
	"campus-backend/controllers"
	"campus-backend/routes"
	"campus-backend/services"
	"campus-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	logger := config.NewLogger(utils.EnvOrDefault("ENVIRONMENT", "development"))
	defer logger.Sync()

	// Bearer tokens from the campus auth provider are HS256-signed with
	// this shared secret; without it no request can be authenticated.
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET environment variable is not set; cannot validate bearer tokens")
	}

	if err := config.ConnectDatabase(); err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	db := config.DB
	if db == nil {
		logger.Fatal("config.DB is nil after ConnectDatabase()")
	}
	logger.Info("database connection established, migrations applied")

	grace := time.Duration(utils.EnvInt("SAFETY_GRACE_MINUTES", 0)) * time.Minute

	// Initialize services
	bookingService := services.NewBookingService(db)
	commuteService := services.NewCommuteService(db)
	safetyService := services.NewSafetyService(db, grace)
	affairsService := services.NewCurrentAffairsService(db)
	foodReviewService := services.NewFoodReviewService(db)

	// Initialize controllers
	bookingController := controllers.NewBookingController(bookingService, safetyService)
	commuteController := controllers.NewCommuteController(commuteService, safetyService)
	affairsController := controllers.NewCurrentAffairsController(affairsService)
	foodReviewController := controllers.NewFoodReviewController(foodReviewService)

	// Build router
	router := routes.SetupRouter(logger, jwtSecret,
		bookingController, commuteController, affairsController, foodReviewController)

	port := utils.EnvOrDefault("PORT", "8080")
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			zap.String("addr", addr),
			zap.Duration("safety_grace", grace))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received, stopping server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped gracefully")
}
