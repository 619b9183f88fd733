package controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub/middleware"
	"coursehub/services"
	courseValidator "coursehub/validators/course"
)

// CourseController exposes the catalog service over HTTP.
type CourseController struct {
	catalog *services.CatalogService
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{catalog: services.NewCatalogService(db)}
}

// GetCourses lists courses with search/filter/sort/pagination.
func (ctrl *CourseController) GetCourses(c *fiber.Ctx) error {
	filter := services.CourseFilter{
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		Status:    c.Query("status"),
		SortBy:    c.Query("sort_by", "created_at"),
		SortOrder: c.Query("sort_order", "DESC"),
		Limit:     c.QueryInt("limit", 100),
		Offset:    c.QueryInt("offset", 0),
	}

	courses, total, err := ctrl.catalog.List(filter)
	if err != nil {
		return middleware.ServiceError(c, err)
	}

	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	return c.JSON(fiber.Map{
		"courses":     courses,
		"total_count": total,
		"page_info": fiber.Map{
			"limit":    filter.Limit,
			"offset":   offset,
			"has_more": int64(offset+len(courses)) < total,
		},
	})
}

// CreateCourse inserts a new course; 201 on success.
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request data")
	}

	course, err := ctrl.catalog.Create(services.CreateCourseInput{
		Title:            reqData.Title,
		Description:      reqData.Description,
		Duration:         reqData.Duration,
		Instructor:       reqData.Instructor,
		Category:         reqData.Category,
		Price:            reqData.Price,
		Capacity:         reqData.Capacity,
		Status:           reqData.Status,
		Prerequisites:    reqData.Prerequisites,
		LearningOutcomes: reqData.LearningOutcomes,
		DifficultyLevel:  reqData.DifficultyLevel,
	})
	if err != nil {
		return middleware.ServiceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, fiber.Map{
		"message":   "Course created successfully",
		"course_id": course.ID,
	})
}

// UpdateCourse applies a partial field set to one course.
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Params("id")

	var fields map[string]interface{}
	if err := json.Unmarshal(c.Body(), &fields); err != nil {
		return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := ctrl.catalog.Update(courseID, fields); err != nil {
		return middleware.ServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Course updated successfully"})
}

// DeleteCourse removes a course and its enrollments and ratings.
func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	if err := ctrl.catalog.Delete(c.Params("id")); err != nil {
		return middleware.ServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Course deleted successfully"})
}

// BulkUpdateStatus applies one status to a set of course ids.
func (ctrl *CourseController) BulkUpdateStatus(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBulkStatus").(*courseValidator.BulkStatusRequest)
	if !ok {
		return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request data")
	}

	updated, err := ctrl.catalog.BulkUpdateStatus(reqData.CourseIDs, reqData.Status)
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":       "Status update applied",
		"updated_count": updated,
	})
}

// GetSearchSuggestions returns up to 10 {text, type} pairs.
func (ctrl *CourseController) GetSearchSuggestions(c *fiber.Ctx) error {
	suggestions, err := ctrl.catalog.Suggestions(c.Query("q"))
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return c.JSON(fiber.Map{"suggestions": suggestions})
}
