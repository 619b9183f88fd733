package routers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controllers "coursehub/controllers/course"
	courseValidator "coursehub/validators/course"
)

// SetupCourseRoutes registers the catalog, enrollment and rating
// endpoints.
func SetupCourseRoutes(app *fiber.App, db *gorm.DB) {
	courseCtrl := controllers.NewCourseController(db)
	enrollCtrl := controllers.NewEnrollmentController(db)
	ratingCtrl := controllers.NewRatingController(db)

	api := app.Group("/api")

	api.Get("/courses", courseCtrl.GetCourses)
	api.Post("/courses", courseValidator.CreateCourse(), courseCtrl.CreateCourse)
	api.Put("/courses/:id", courseCtrl.UpdateCourse)
	api.Delete("/courses/:id", courseCtrl.DeleteCourse)

	api.Post("/courses/:id/enroll", courseValidator.Enroll(), enrollCtrl.EnrollStudent)
	api.Post("/courses/:id/rate", courseValidator.Rate(), ratingCtrl.RateCourse)

	api.Put("/bulk/update-status", courseValidator.BulkStatus(), courseCtrl.BulkUpdateStatus)
	api.Get("/search/suggestions", courseCtrl.GetSearchSuggestions)
}
