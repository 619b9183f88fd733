package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub/middleware"
	"coursehub/services"
	courseValidator "coursehub/validators/course"
)

// EnrollmentController exposes student enrollment over HTTP.
type EnrollmentController struct {
	enrollment *services.EnrollmentService
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{enrollment: services.NewEnrollmentService(db)}
}

// EnrollStudent enrolls a (possibly new) student into a course.
func (ctrl *EnrollmentController) EnrollStudent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEnrollment").(*courseValidator.EnrollRequest)
	if !ok {
		return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request data")
	}

	result, err := ctrl.enrollment.Enroll(c.Params("id"), reqData.StudentName, reqData.StudentEmail)
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":       "Student enrolled successfully",
		"enrollment_id": result.EnrollmentID,
		"student_id":    result.StudentID,
	})
}
