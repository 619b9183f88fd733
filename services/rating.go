package services

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"coursehub/models"
)

// RatingService records ratings and maintains the course's running
// average and count.
type RatingService struct {
	DB *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{DB: db}
}

// RatingResult carries the recomputed aggregate after a rating write.
type RatingResult struct {
	AverageRating float64 `json:"new_average_rating"`
	TotalRatings  int     `json:"total_ratings"`
}

// Rate upserts a rating keyed on (course, student) and recomputes the
// course mean and count in the same transaction. A blank studentID is
// minted a fresh identity, so anonymous ratings never collide.
func (s *RatingService) Rate(courseID string, rating int, review, studentID string) (*RatingResult, error) {
	if rating < 1 || rating > 5 {
		return nil, &ValidationError{Message: "Rating must be between 1 and 5"}
	}
	if studentID == "" {
		studentID = uuid.NewString()
	}

	var result RatingResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.First(&course, "id = ?", courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "Course"}
			}
			return err
		}

		entry := models.CourseRating{
			CourseID:  courseID,
			StudentID: studentID,
			Rating:    rating,
			Review:    review,
			CreatedAt: time.Now(),
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "course_id"}, {Name: "student_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "review", "created_at"}),
		}).Create(&entry).Error
		if err != nil {
			return err
		}

		var agg struct {
			Avg   float64
			Total int
		}
		err = tx.Model(&models.CourseRating{}).
			Where("course_id = ?", courseID).
			Select("AVG(rating) AS avg, COUNT(*) AS total").
			Scan(&agg).Error
		if err != nil {
			return err
		}

		avg := math.Round(agg.Avg*10) / 10
		err = tx.Model(&models.Course{}).
			Where("id = ?", courseID).
			UpdateColumns(map[string]interface{}{
				"rating":        avg,
				"total_ratings": agg.Total,
			}).Error
		if err != nil {
			return err
		}

		result = RatingResult{AverageRating: avg, TotalRatings: agg.Total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
