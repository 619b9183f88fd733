package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub/middleware"
	"coursehub/services"
	courseValidator "coursehub/validators/course"
)

// RatingController exposes course rating over HTTP.
type RatingController struct {
	rating *services.RatingService
}

func NewRatingController(db *gorm.DB) *RatingController {
	return &RatingController{rating: services.NewRatingService(db)}
}

// RateCourse records a rating and returns the recomputed aggregate.
func (ctrl *RatingController) RateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRating").(*courseValidator.RateRequest)
	if !ok {
		return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request data")
	}

	result, err := ctrl.rating.Rate(c.Params("id"), reqData.Rating, reqData.Review, reqData.StudentID)
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":            "Course rated successfully",
		"new_average_rating": result.AverageRating,
		"total_ratings":      result.TotalRatings,
	})
}
