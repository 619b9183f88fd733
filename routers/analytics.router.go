package routers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsController "coursehub/controllers/analytics"
)

// SetupAnalyticsRoutes registers the dashboard endpoint.
func SetupAnalyticsRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := analyticsController.NewDashboardController(db)
	app.Group("/api").Get("/analytics/dashboard", ctrl.GetDashboard)
}
