package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"coursehub/models"
)

// sortableColumns is the whitelist of sort keys a caller may pick.
// Anything else falls back to created_at.
var sortableColumns = map[string]bool{
	"title":            true,
	"instructor":       true,
	"category":         true,
	"price":            true,
	"capacity":         true,
	"enrolled":         true,
	"status":           true,
	"rating":           true,
	"total_ratings":    true,
	"difficulty_level": true,
	"created_at":       true,
	"updated_at":       true,
}

// updatableColumns is the enumerated set of mutable course fields.
// Caller-provided names outside this set are ignored.
var updatableColumns = map[string]bool{
	"title":             true,
	"description":       true,
	"duration":          true,
	"instructor":        true,
	"category":          true,
	"price":             true,
	"capacity":          true,
	"status":            true,
	"prerequisites":     true,
	"learning_outcomes": true,
	"difficulty_level":  true,
}

// CatalogService owns course CRUD and search.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// CourseFilter carries the list query parameters.
type CourseFilter struct {
	Search    string
	Category  string
	Status    string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// List returns the matching page of courses and the total match count
// (ignoring limit/offset).
func (s *CatalogService) List(f CourseFilter) ([]models.Course, int64, error) {
	query := s.DB.Model(&models.Course{})

	if search := strings.TrimSpace(f.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(instructor) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := f.SortBy
	if !sortableColumns[sortBy] {
		sortBy = "created_at"
	}
	order := "DESC"
	if strings.EqualFold(f.SortOrder, "asc") {
		order = "ASC"
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	var courses []models.Course
	err := query.Order(sortBy + " " + order).Limit(limit).Offset(offset).Find(&courses).Error
	if err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

// CreateCourseInput holds the fields accepted on course creation.
type CreateCourseInput struct {
	Title            string
	Description      string
	Duration         string
	Instructor       string
	Category         string
	Price            float64
	Capacity         int
	Status           string
	Prerequisites    string
	LearningOutcomes string
	DifficultyLevel  string
}

// Create inserts a new course with defaults applied and logs a
// course_created event.
func (s *CatalogService) Create(in CreateCourseInput) (*models.Course, error) {
	required := []struct{ name, value string }{
		{"title", in.Title},
		{"description", in.Description},
		{"duration", in.Duration},
		{"instructor", in.Instructor},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return nil, &ValidationError{Message: "Missing required field: " + field.name}
		}
	}

	course := models.Course{
		Title:            in.Title,
		Description:      in.Description,
		Duration:         in.Duration,
		Instructor:       in.Instructor,
		Category:         in.Category,
		Price:            in.Price,
		Capacity:         in.Capacity,
		Status:           in.Status,
		Prerequisites:    in.Prerequisites,
		LearningOutcomes: in.LearningOutcomes,
		DifficultyLevel:  in.DifficultyLevel,
	}
	if course.Category == "" {
		course.Category = "General"
	}
	if course.Capacity <= 0 {
		course.Capacity = 30
	}
	if course.Status == "" {
		course.Status = models.StatusDraft
	}
	if course.DifficultyLevel == "" {
		course.DifficultyLevel = "intermediate"
	}
	if course.Price < 0 {
		return nil, &ValidationError{Message: "Price must not be negative"}
	}
	if !models.IsValidStatus(course.Status) {
		return nil, &ValidationError{Message: "Invalid status: " + course.Status}
	}

	if err := s.DB.Create(&course).Error; err != nil {
		return nil, err
	}

	LogEvent(s.DB, "course_created", course.ID, map[string]interface{}{
		"title":    course.Title,
		"category": course.Category,
	})
	return &course, nil
}

// Update applies a partial field set restricted to the enumerated
// mutable columns and refreshes updated_at.
func (s *CatalogService) Update(courseID string, fields map[string]interface{}) error {
	updates := make(map[string]interface{})
	for name, value := range fields {
		if updatableColumns[name] {
			updates[name] = value
		}
	}
	if len(updates) == 0 {
		return &ValidationError{Message: "No fields to update"}
	}
	if status, ok := updates["status"].(string); ok && !models.IsValidStatus(status) {
		return &ValidationError{Message: "Invalid status: " + status}
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.First(&course, "id = ?", courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "Course"}
			}
			return err
		}
		// Updates via map always refreshes UpdatedAt through gorm.
		return tx.Model(&course).Updates(updates).Error
	})
	if err != nil {
		return err
	}

	LogEvent(s.DB, "course_updated", courseID, updates)
	return nil
}

// Delete removes a course and cascades to its enrollments and ratings
// in one transaction.
func (s *CatalogService) Delete(courseID string) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Course{}, "id = ?", courseID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return &NotFoundError{Resource: "Course"}
		}
		if err := tx.Delete(&models.Enrollment{}, "course_id = ?", courseID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.CourseRating{}, "course_id = ?", courseID).Error
	})
	if err != nil {
		return err
	}

	LogEvent(s.DB, "course_deleted", courseID, map[string]interface{}{})
	return nil
}

// BulkUpdateStatus sets one status on every matching course id and
// reports how many rows changed.
func (s *CatalogService) BulkUpdateStatus(courseIDs []string, status string) (int64, error) {
	if len(courseIDs) == 0 || status == "" {
		return 0, &ValidationError{Message: "Course IDs and status are required"}
	}
	if !models.IsValidStatus(status) {
		return 0, &ValidationError{Message: "Invalid status: " + status}
	}

	result := s.DB.Model(&models.Course{}).
		Where("id IN ?", courseIDs).
		Updates(map[string]interface{}{"status": status})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Suggestion is one search-suggestion entry.
type Suggestion struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// Suggestions returns up to 10 matches over titles, instructors and
// categories. Queries shorter than 2 characters yield an empty list.
func (s *CatalogService) Suggestions(q string) ([]Suggestion, error) {
	q = strings.ToLower(strings.TrimSpace(q))
	suggestions := []Suggestion{}
	if len(q) < 2 {
		return suggestions, nil
	}
	pattern := "%" + q + "%"

	sources := []struct {
		column string
		kind   string
	}{
		{"title", "course"},
		{"instructor", "instructor"},
		{"category", "category"},
	}
	for _, src := range sources {
		var values []string
		err := s.DB.Model(&models.Course{}).
			Distinct().
			Where("LOWER("+src.column+") LIKE ?", pattern).
			Pluck(src.column, &values).Error
		if err != nil {
			return nil, err
		}
		for _, v := range values {
			if len(suggestions) >= 10 {
				return suggestions, nil
			}
			suggestions = append(suggestions, Suggestion{Text: v, Type: src.kind})
		}
	}
	return suggestions, nil
}
