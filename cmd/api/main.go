package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/adityapratama/gymflow/internal/domain/bookings"
	bookingDelivery "github.com/adityapratama/gymflow/internal/domain/bookings/delivery"
	bookingRepository "github.com/adityapratama/gymflow/internal/domain/bookings/repository"
	bookingUsecase "github.com/adityapratama/gymflow/internal/domain/bookings/usecase"
	"github.com/adityapratama/gymflow/internal/domain/classes"
	classDelivery "github.com/adityapratama/gymflow/internal/domain/classes/delivery"
	classRepository "github.com/adityapratama/gymflow/internal/domain/classes/repository"
	classUsecase "github.com/adityapratama/gymflow/internal/domain/classes/usecase"
	"github.com/adityapratama/gymflow/internal/domain/users"
	"github.com/adityapratama/gymflow/internal/domain/users/delivery"
	"github.com/adityapratama/gymflow/internal/domain/users/repository"
	"github.com/adityapratama/gymflow/internal/domain/users/usecase"
	"github.com/adityapratama/gymflow/internal/platform/config"
	"github.com/adityapratama/gymflow/internal/platform/database"
	"github.com/adityapratama/gymflow/internal/platform/queue"
	"github.com/adityapratama/gymflow/pkg/jwt"
	"github.com/adityapratama/gymflow/pkg/middleware"
	customValidator "github.com/adityapratama/gymflow/pkg/validator"
)

func main() {
	// Setup zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	zlog.Info().Msg("Starting GymFlow API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := database.InitMySQL(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(&users.User{}, &classes.Class{}, &bookings.Booking{}, &bookings.BookingTrainee{}); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
	zlog.Info().Msg("Database initialized successfully")

	ctx := context.Background()

	// Initialize Redis for the notification queue
	redisClient, err := queue.InitRedis(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	zlog.Info().Msg("Redis initialized successfully")

	queueService := queue.NewRedisQueue(redisClient)

	// Initialize Echo
	e := echo.New()
	e.Use(middleware.RequestID())
	e.HideBanner = false

	// Register validator
	e.Validator = customValidator.New()

	// Initialize JWT service
	jwtService := jwt.NewService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTTL(),
		cfg.JWT.RefreshTTL(),
	)

	// Initialize repositories
	userRepo := repository.NewUser(db)
	classRepo := classRepository.NewClassRepository(db)
	bookingRepo := bookingRepository.NewBookingRepository(db)

	// Cross-domain adapters
	trainerFinder := classRepository.NewTrainerFinderAdapter(userRepo)
	classResolver := bookingRepository.NewClassResolverAdapter(classRepo)
	traineeResolver := bookingRepository.NewTraineeResolverAdapter(userRepo)

	// Initialize use cases
	userUsecase := usecase.NewUsecase(userRepo, jwtService)
	classUsecaseInstance := classUsecase.NewUsecase(classRepo, trainerFinder, cfg.Scheduling)
	bookingUsecaseInstance := bookingUsecase.NewUsecase(bookingRepo, classResolver, traineeResolver, queueService, cfg.Booking)

	// Initialize handlers
	userHandler := delivery.NewHandler(ctx, userUsecase, cfg.Server.IsProduction(), cfg.JWT.RefreshTTL())
	classHandler := classDelivery.NewHandler(ctx, classUsecaseInstance)
	bookingHandler := bookingDelivery.NewHandler(ctx, bookingUsecaseInstance)

	// Setup routes
	setupRoutes(e, userHandler, classHandler, bookingHandler, jwtService)

	// Start server in goroutine
	go func() {
		port := cfg.Server.Port
		if port == "" {
			port = "8080"
		}

		zlog.Info().Str("port", port).Msg("Starting HTTP server")
		if err := e.Start(":" + port); err != nil {
			zlog.Info().Err(err).Msg("Server stopped")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zlog.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	zlog.Info().Msg("Server exited successfully")
}
