package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	bookingDelivery "github.com/adityapratama/gymflow/internal/domain/bookings/delivery"
	classDelivery "github.com/adityapratama/gymflow/internal/domain/classes/delivery"
	userDelivery "github.com/adityapratama/gymflow/internal/domain/users/delivery"
	"github.com/adityapratama/gymflow/pkg/constant"
	"github.com/adityapratama/gymflow/pkg/jwt"
	appMiddleware "github.com/adityapratama/gymflow/pkg/middleware"
	"github.com/adityapratama/gymflow/pkg/response"
)

func setupRoutes(e *echo.Echo, userHandler *userDelivery.Handler, classHandler *classDelivery.Handler, bookingHandler *bookingDelivery.Handler, jwtService *jwt.Service) {
	// Middleware
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Gzip())
	e.Use(middleware.CORS())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Custom error handler (also shapes the 404 for unmatched routes)
	e.HTTPErrorHandler = response.CustomErrorHandler

	e.GET("/", func(c echo.Context) error {
		return c.String(200, "Welcome to the Gym Management API")
	})

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status": "ok",
		})
	})

	adminOnly := []echo.MiddlewareFunc{jwtService.Middleware(), appMiddleware.RequireRole(constant.RoleAdmin)}

	api := e.Group("/api")

	// Auth + trainer management
	auth := api.Group("/auth")
	{
		auth.POST("/signup", userHandler.RegisterAdmin)
		auth.POST("/signin", userHandler.SignIn)
		auth.POST("/refresh-token", userHandler.RefreshToken)

		// Admin-only trainer management
		auth.POST("/create-trainer", userHandler.CreateTrainer, adminOnly...)
		auth.GET("/all-trainer", userHandler.ListTrainers, adminOnly...)
		auth.PUT("/update-trainer", userHandler.UpdateTrainer, adminOnly...)
		auth.DELETE("/delete-trainer", userHandler.DeleteTrainer, adminOnly...)
	}

	// Class schedule routes
	api.POST("/schedule-class", classHandler.ScheduleClass, adminOnly...)
	api.GET("/schedule-class", classHandler.ListClasses)
	api.GET("/schedule-class/:trainerId", classHandler.ClassesForTrainer)

	// Trainee routes
	api.POST("/create-trainee", userHandler.CreateTrainee)
	api.POST("/trainee-booking", bookingHandler.BookClass)
	api.PUT("/update-trainee", userHandler.UpdateTrainee)
	api.GET("/get-trainee-booking", bookingHandler.ListBookings)
}
