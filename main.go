package main

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"coursehub/config"
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/routers"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config.LoadConfig()
	db := database.Connect()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok && e.Code != fiber.StatusInternalServerError {
				return middleware.ErrorJSON(c, e.Code, e.Message)
			}
			log.Error().Err(err).Str("path", c.Path()).Msg("Unhandled error")
			return middleware.ErrorJSON(c, fiber.StatusInternalServerError, "Internal server error")
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	routers.SetupCourseRoutes(app, db)
	routers.SetupAnalyticsRoutes(app, db)
	routers.SetupTransferRoutes(app, db)
	routers.SetupAIRoutes(app)

	// Unmatched routes
	app.Use(func(c *fiber.Ctx) error {
		return middleware.ErrorJSON(c, fiber.StatusNotFound, "Endpoint not found")
	})

	log.Info().Msgf("Server is running on port %s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
