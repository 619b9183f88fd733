package courseValidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"coursehub/middleware"
)

var validate = validator.New()

// validationMessage turns the first field error into the response
// message, keeping struct field order for determinism.
func validationMessage(err error) string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return "Validation failed"
	}
	fieldErr := validationErrs[0]
	field := strings.ToLower(fieldErr.Field())
	switch fieldErr.Tag() {
	case "required":
		return "Missing required field: " + field
	case "min", "max":
		return "Value out of range for field: " + field
	case "oneof":
		return "Invalid value for field: " + field
	case "email":
		return "Invalid email address"
	default:
		return "Invalid value for field: " + field
	}
}

// CreateCourseRequest is the accepted course-creation body.
type CreateCourseRequest struct {
	Title            string  `json:"title" validate:"required"`
	Description      string  `json:"description" validate:"required"`
	Duration         string  `json:"duration" validate:"required"`
	Instructor       string  `json:"instructor" validate:"required"`
	Category         string  `json:"category"`
	Price            float64 `json:"price" validate:"gte=0"`
	Capacity         int     `json:"capacity" validate:"gte=0"`
	Status           string  `json:"status" validate:"omitempty,oneof=draft active completed archived"`
	Prerequisites    string  `json:"prerequisites"`
	LearningOutcomes string  `json:"learning_outcomes"`
	DifficultyLevel  string  `json:"difficulty_level" validate:"omitempty,oneof=beginner intermediate advanced"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorJSON(c, fiber.StatusBadRequest, validationMessage(err))
		}
		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// EnrollRequest is the accepted enrollment body. Both fields are
// optional; blanks get service-side defaults.
type EnrollRequest struct {
	StudentName  string `json:"student_name"`
	StudentEmail string `json:"student_email" validate:"omitempty,email"`
}

func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorJSON(c, fiber.StatusBadRequest, validationMessage(err))
		}
		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}

// RateRequest is the accepted rating body.
type RateRequest struct {
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Review    string `json:"review"`
	StudentID string `json:"student_id"`
}

func Rate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if reqData.Rating < 1 || reqData.Rating > 5 {
			return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Rating must be between 1 and 5")
		}
		c.Locals("validatedRating", reqData)
		return c.Next()
	}
}

// BulkStatusRequest is the accepted bulk status-update body.
type BulkStatusRequest struct {
	CourseIDs []string `json:"course_ids" validate:"required,min=1"`
	Status    string   `json:"status" validate:"required,oneof=draft active completed archived"`
}

func BulkStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(BulkStatusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Course IDs and status are required")
		}
		c.Locals("validatedBulkStatus", reqData)
		return c.Next()
	}
}
