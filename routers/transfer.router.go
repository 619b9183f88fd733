package routers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	transferController "coursehub/controllers/transfer"
)

// SetupTransferRoutes registers export and import endpoints.
func SetupTransferRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := transferController.NewTransferController(db)

	api := app.Group("/api")
	api.Get("/export/courses", ctrl.ExportCourses)
	api.Post("/import/courses", ctrl.ImportCourses)
}
